package store

import (
	"fmt"

	"upaya-be/models"
)

// IssueStore is the read-only collection of issues served by the API.
// It is never mutated after New returns, so it is safe for concurrent use.
type IssueStore struct {
	issues []models.Issue
	byID   map[string]int
}

// New validates issues and builds a store that keeps their order.
func New(issues []models.Issue) (*IssueStore, error) {
	s := &IssueStore{
		issues: make([]models.Issue, 0, len(issues)),
		byID:   make(map[string]int, len(issues)),
	}
	for _, issue := range issues {
		if err := issue.Validate(); err != nil {
			return nil, err
		}
		if _, dup := s.byID[issue.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %q", models.ErrInvalidIssue, issue.ID)
		}
		s.byID[issue.ID] = len(s.issues)
		s.issues = append(s.issues, issue.Clone())
	}
	return s, nil
}

// All returns every issue in insertion order.
func (s *IssueStore) All() []models.Issue {
	return cloneAll(s.issues)
}

// Len returns the number of stored issues.
func (s *IssueStore) Len() int {
	return len(s.issues)
}

// Get returns the issue with the given id.
func (s *IssueStore) Get(id string) (models.Issue, error) {
	idx, ok := s.byID[id]
	if !ok {
		return models.Issue{}, fmt.Errorf("%w: %q", models.ErrIssueNotFound, id)
	}
	return s.issues[idx].Clone(), nil
}

// CategoryMeta looks up display metadata for a raw category value.
func (s *IssueStore) CategoryMeta(category string) (models.CategoryMetadata, error) {
	return models.CategoryMeta(models.IssueCategory(category))
}

// StatusMeta looks up display metadata for a raw status value.
func (s *IssueStore) StatusMeta(status string) (models.StatusMetadata, error) {
	return models.StatusMeta(models.IssueStatus(status))
}

// Stats computes the derived statistics over the store.
func (s *IssueStore) Stats() Stats {
	return ComputeStats(s.issues)
}

// Filter applies the status and text filters over the store.
func (s *IssueStore) Filter(statusFilter, query string) ([]models.Issue, error) {
	return Filter(s.issues, statusFilter, query)
}

func cloneAll(issues []models.Issue) []models.Issue {
	out := make([]models.Issue, len(issues))
	for i, issue := range issues {
		out[i] = issue.Clone()
	}
	return out
}
