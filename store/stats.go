package store

import "upaya-be/models"

// Stats holds aggregate counts over a set of issues.
type Stats struct {
	Total      int                          `json:"total"`
	Pending    int                          `json:"pending"`
	InReview   int                          `json:"inReview"`
	Resolved   int                          `json:"resolved"`
	ByCategory map[models.IssueCategory]int `json:"byCategory"`
}

// ComputeStats counts issues by status and by category. Every category is
// present in ByCategory, with zero when nothing matches.
func ComputeStats(issues []models.Issue) Stats {
	stats := Stats{
		Total:      len(issues),
		ByCategory: make(map[models.IssueCategory]int, len(models.Categories())),
	}
	for _, c := range models.Categories() {
		stats.ByCategory[c] = 0
	}

	for _, issue := range issues {
		switch issue.Status {
		case models.Pending:
			stats.Pending++
		case models.Review:
			stats.InReview++
		case models.Resolved:
			stats.Resolved++
		}
		stats.ByCategory[issue.Category]++
	}
	return stats
}
