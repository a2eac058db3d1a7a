package calculations

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
)

var ErrInvalidAmount = errors.New("valid contribution amount is required")

// ParseContributionAmount accepts a JSON number or a numeric string and only
// lets finite positive values through.
func ParseContributionAmount(raw json.RawMessage) (float64, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return 0, ErrInvalidAmount
	}

	var amount float64
	if err := json.Unmarshal([]byte(trimmed), &amount); err != nil {
		var text string
		if json.Unmarshal([]byte(trimmed), &text) != nil {
			return 0, ErrInvalidAmount
		}
		parsed, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
		if err != nil {
			return 0, ErrInvalidAmount
		}
		amount = parsed
	}

	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return 0, ErrInvalidAmount
	}

	return amount, nil
}
