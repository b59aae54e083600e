package models

import "errors"

var (
	ErrUnknownCategory = errors.New("unknown category")
	ErrUnknownStatus   = errors.New("unknown status")
	ErrInvalidIssue    = errors.New("invalid issue")
	ErrIssueNotFound   = errors.New("issue not found")
)
