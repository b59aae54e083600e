package store

import (
	"strings"

	"upaya-be/models"
)

// FilterAll disables a status or category restriction.
const FilterAll = "all"

// Filter returns the issues whose status equals statusFilter (or any status
// for "all") and whose title or location contains query, ignoring case.
// Input order is kept and the input slice is left untouched.
func Filter(issues []models.Issue, statusFilter, query string) ([]models.Issue, error) {
	matchStatus, err := statusPredicate(statusFilter)
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(query)

	out := make([]models.Issue, 0, len(issues))
	for _, issue := range issues {
		if !matchStatus(issue) {
			continue
		}
		if !matchesQuery(issue, needle) {
			continue
		}
		out = append(out, issue.Clone())
	}
	return out, nil
}

// FilterByCategory keeps issues of one category, or all of them for "all".
func FilterByCategory(issues []models.Issue, categoryFilter string) ([]models.Issue, error) {
	if categoryFilter == "" || categoryFilter == FilterAll {
		return cloneAll(issues), nil
	}
	category, err := models.ParseCategory(categoryFilter)
	if err != nil {
		return nil, err
	}

	out := make([]models.Issue, 0, len(issues))
	for _, issue := range issues {
		if issue.Category == category {
			out = append(out, issue.Clone())
		}
	}
	return out, nil
}

// Recent returns at most n issues from the head of the feed.
func Recent(issues []models.Issue, n int) []models.Issue {
	if n < 0 {
		n = 0
	}
	if n > len(issues) {
		n = len(issues)
	}
	return cloneAll(issues[:n])
}

func statusPredicate(statusFilter string) (func(models.Issue) bool, error) {
	if statusFilter == "" || statusFilter == FilterAll {
		return func(models.Issue) bool { return true }, nil
	}
	status, err := models.ParseStatus(statusFilter)
	if err != nil {
		return nil, err
	}
	return func(issue models.Issue) bool { return issue.Status == status }, nil
}

func matchesQuery(issue models.Issue, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(issue.Title), needle) ||
		strings.Contains(strings.ToLower(issue.Location), needle)
}
