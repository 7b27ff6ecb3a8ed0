package model

// ReportRequest is the dashboard's report-generation payload.
type ReportRequest struct {
	Year       int    `json:"year" binding:"required"`
	Month      int    `json:"month" binding:"required"`
	ReportType string `json:"reportType"` // "" | "monthly" | "daily"
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
