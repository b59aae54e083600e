package models

import "fmt"

// CategoryMetadata holds display information for a category
type CategoryMetadata struct {
	Category IssueCategory `json:"category"`
	Label    string        `json:"label"`
	LabelNp  string        `json:"labelNp"`
	Icon     string        `json:"icon"`
	Color    string        `json:"color"`
}

// StatusMetadata holds display information for a status
type StatusMetadata struct {
	Status  IssueStatus `json:"status"`
	Label   string      `json:"label"`
	LabelNp string      `json:"labelNp"`
}

var categoryConfig = map[IssueCategory]CategoryMetadata{
	Road:        {Category: Road, Label: "Road", LabelNp: "सडक", Icon: "🛣️", Color: "orange"},
	Garbage:     {Category: Garbage, Label: "Garbage", LabelNp: "फोहोर", Icon: "🗑️", Color: "emerald"},
	Water:       {Category: Water, Label: "Water", LabelNp: "पानी", Icon: "💧", Color: "blue"},
	Electricity: {Category: Electricity, Label: "Electricity", LabelNp: "बिजुली", Icon: "⚡", Color: "yellow"},
	Safety:      {Category: Safety, Label: "Safety", LabelNp: "सुरक्षा", Icon: "🚨", Color: "red"},
}

var statusConfig = map[IssueStatus]StatusMetadata{
	Pending:  {Status: Pending, Label: "Pending", LabelNp: "विचाराधीन"},
	Review:   {Status: Review, Label: "In Review", LabelNp: "समीक्षामा"},
	Resolved: {Status: Resolved, Label: "Resolved", LabelNp: "समाधान भयो"},
}

// CategoryMeta returns the metadata for c.
func CategoryMeta(c IssueCategory) (CategoryMetadata, error) {
	meta, ok := categoryConfig[c]
	if !ok {
		return CategoryMetadata{}, fmt.Errorf("%w: %q", ErrUnknownCategory, string(c))
	}
	return meta, nil
}

// StatusMeta returns the metadata for s.
func StatusMeta(s IssueStatus) (StatusMetadata, error) {
	meta, ok := statusConfig[s]
	if !ok {
		return StatusMetadata{}, fmt.Errorf("%w: %q", ErrUnknownStatus, string(s))
	}
	return meta, nil
}

// AllCategoryMeta lists category metadata in display order.
func AllCategoryMeta() []CategoryMetadata {
	out := make([]CategoryMetadata, 0, len(categories))
	for _, c := range categories {
		out = append(out, categoryConfig[c])
	}
	return out
}

// AllStatusMeta lists status metadata in lifecycle order.
func AllStatusMeta() []StatusMetadata {
	out := make([]StatusMetadata, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, statusConfig[s])
	}
	return out
}
