package models

type ExportFormat string

const (
	ExportXLSX ExportFormat = "xlsx"
	ExportCSV  ExportFormat = "csv"
)

func (f ExportFormat) ContentType() string {
	if f == ExportCSV {
		return "text/csv; charset=utf-8"
	}
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// ExportTicket is handed back to the client to download a staged export.
type ExportTicket struct {
	Key       string       `json:"key"`
	Format    ExportFormat `json:"format"`
	ExpiresIn int          `json:"expiresIn"` // seconds
}
