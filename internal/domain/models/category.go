package models

import "strings"

// CategoryKey is the normalized form used to match budgets with expenses.
func CategoryKey(category string) string {
	return strings.ToLower(strings.TrimSpace(category))
}
