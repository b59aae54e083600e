package utils

import (
	"strings"

	"github.com/google/uuid"
)

// ReportIDPrefix marks acknowledgement references handed back to citizens.
const ReportIDPrefix = "UPY-"

// NewReportID returns a reference such as "UPY-3F9A1C2B".
func NewReportID() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return ReportIDPrefix + strings.ToUpper(raw[:8])
}
