package models

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// IssueCategory enum
type IssueCategory string

const (
	Road        IssueCategory = "road"
	Garbage     IssueCategory = "garbage"
	Water       IssueCategory = "water"
	Electricity IssueCategory = "electricity"
	Safety      IssueCategory = "safety"
)

var categories = []IssueCategory{Road, Garbage, Water, Electricity, Safety}

// Categories returns every category in display order.
func Categories() []IssueCategory {
	out := make([]IssueCategory, len(categories))
	copy(out, categories)
	return out
}

// IsValid reports whether c is one of the five known categories.
func (c IssueCategory) IsValid() bool {
	switch c {
	case Road, Garbage, Water, Electricity, Safety:
		return true
	}
	return false
}

// ParseCategory converts a raw value into an IssueCategory.
func ParseCategory(value string) (IssueCategory, error) {
	c := IssueCategory(value)
	if !c.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, value)
	}
	return c, nil
}

// IssueStatus enum
type IssueStatus string

const (
	Pending  IssueStatus = "pending"
	Review   IssueStatus = "review"
	Resolved IssueStatus = "resolved"
)

var statuses = []IssueStatus{Pending, Review, Resolved}

// Statuses returns every status in lifecycle order.
func Statuses() []IssueStatus {
	out := make([]IssueStatus, len(statuses))
	copy(out, statuses)
	return out
}

func (s IssueStatus) IsValid() bool {
	switch s {
	case Pending, Review, Resolved:
		return true
	}
	return false
}

// ParseStatus converts a raw value into an IssueStatus.
func ParseStatus(value string) (IssueStatus, error) {
	s := IssueStatus(value)
	if !s.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, value)
	}
	return s, nil
}

// Coordinates is a [lat, lng] pair in decimal degrees.
type Coordinates struct {
	Latitude  float64 `bson:"latitude" json:"latitude" yaml:"latitude"`
	Longitude float64 `bson:"longitude" json:"longitude" yaml:"longitude"`
}

func (c Coordinates) validate() error {
	if math.IsNaN(c.Latitude) || math.IsInf(c.Latitude, 0) || c.Latitude < -90 || c.Latitude > 90 {
		return fmt.Errorf("%w: latitude %v out of range", ErrInvalidIssue, c.Latitude)
	}
	if math.IsNaN(c.Longitude) || math.IsInf(c.Longitude, 0) || c.Longitude < -180 || c.Longitude > 180 {
		return fmt.Errorf("%w: longitude %v out of range", ErrInvalidIssue, c.Longitude)
	}
	return nil
}

// Issue represents a civic issue reported by a citizen
type Issue struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Category    IssueCategory `json:"category"`
	Description string        `json:"description"`
	Location    string        `json:"location"`
	Coordinates Coordinates   `json:"coordinates"`
	Status      IssueStatus   `json:"status"`
	ImageURL    *string       `json:"imageUrl,omitempty"`
	ReportedBy  string        `json:"reportedBy"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// IssueInput is the unvalidated shape an Issue is built from. Seed files and
// database documents decode into it.
type IssueInput struct {
	ID          string      `bson:"_id" json:"id" yaml:"id"`
	Title       string      `bson:"title" json:"title" yaml:"title"`
	Category    string      `bson:"category" json:"category" yaml:"category"`
	Description string      `bson:"description" json:"description" yaml:"description"`
	Location    string      `bson:"location" json:"location" yaml:"location"`
	Coordinates Coordinates `bson:"coordinates" json:"coordinates" yaml:"coordinates"`
	Status      string      `bson:"status" json:"status" yaml:"status"`
	ImageURL    *string     `bson:"imageUrl,omitempty" json:"imageUrl,omitempty" yaml:"imageUrl,omitempty"`
	ReportedBy  string      `bson:"reportedBy" json:"reportedBy" yaml:"reportedBy"`
	CreatedAt   time.Time   `bson:"createdAt" json:"createdAt" yaml:"createdAt"`
	UpdatedAt   time.Time   `bson:"updatedAt" json:"updatedAt" yaml:"updatedAt"`
}

// NewIssue validates input and returns the corresponding Issue.
func NewIssue(in IssueInput) (Issue, error) {
	if strings.TrimSpace(in.ID) == "" {
		return Issue{}, fmt.Errorf("%w: id is required", ErrInvalidIssue)
	}
	if strings.TrimSpace(in.Title) == "" {
		return Issue{}, fmt.Errorf("%w: issue %s: title is required", ErrInvalidIssue, in.ID)
	}

	category, err := ParseCategory(in.Category)
	if err != nil {
		return Issue{}, fmt.Errorf("issue %s: %w", in.ID, err)
	}
	status, err := ParseStatus(in.Status)
	if err != nil {
		return Issue{}, fmt.Errorf("issue %s: %w", in.ID, err)
	}

	if err := in.Coordinates.validate(); err != nil {
		return Issue{}, fmt.Errorf("issue %s: %w", in.ID, err)
	}
	if in.CreatedAt.IsZero() || in.UpdatedAt.IsZero() {
		return Issue{}, fmt.Errorf("%w: issue %s: timestamps are required", ErrInvalidIssue, in.ID)
	}
	if in.UpdatedAt.Before(in.CreatedAt) {
		return Issue{}, fmt.Errorf("%w: issue %s: updatedAt precedes createdAt", ErrInvalidIssue, in.ID)
	}

	var imageURL *string
	if in.ImageURL != nil {
		u := *in.ImageURL
		imageURL = &u
	}

	return Issue{
		ID:          in.ID,
		Title:       in.Title,
		Category:    category,
		Description: in.Description,
		Location:    in.Location,
		Coordinates: in.Coordinates,
		Status:      status,
		ImageURL:    imageURL,
		ReportedBy:  in.ReportedBy,
		CreatedAt:   in.CreatedAt,
		UpdatedAt:   in.UpdatedAt,
	}, nil
}

// Validate re-checks an already built Issue.
func (i Issue) Validate() error {
	_, err := NewIssue(i.input())
	return err
}

func (i Issue) input() IssueInput {
	return IssueInput{
		ID:          i.ID,
		Title:       i.Title,
		Category:    string(i.Category),
		Description: i.Description,
		Location:    i.Location,
		Coordinates: i.Coordinates,
		Status:      string(i.Status),
		ImageURL:    i.ImageURL,
		ReportedBy:  i.ReportedBy,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}

// Clone returns a copy that shares no pointers with i.
func (i Issue) Clone() Issue {
	if i.ImageURL != nil {
		u := *i.ImageURL
		i.ImageURL = &u
	}
	return i
}
