package models

import "time"

// ReportInput is the body of a citizen report submission.
type ReportInput struct {
	Title       string `json:"title" binding:"required,min=5,max=100"`
	Category    string `json:"category" binding:"required,oneof=road garbage water electricity safety"`
	Description string `json:"description" binding:"required,min=20,max=500"`
	Location    string `json:"location" binding:"required,min=5,max=200"`
}

// ReportAcknowledgement is returned once a report has been accepted. Nothing
// is stored; the acknowledgement is the whole contract.
type ReportAcknowledgement struct {
	ReportID    string        `json:"reportId"`
	Category    IssueCategory `json:"category"`
	Status      IssueStatus   `json:"status"`
	Message     string        `json:"message"`
	SubmittedAt time.Time     `json:"submittedAt"`
}
