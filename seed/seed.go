package seed

import (
	"context"
	"fmt"
	"time"

	"upaya-be/models"
)

// Source loads the issues the store is initialised with.
type Source interface {
	Load(ctx context.Context) ([]models.Issue, error)
	Name() string
}

// Static serves the compiled-in dataset.
type Static struct{}

func (Static) Name() string { return "static" }

func (Static) Load(context.Context) ([]models.Issue, error) {
	return Issues()
}

// Issues returns the compiled-in issues centered around Kathmandu.
func Issues() ([]models.Issue, error) {
	return build(seedIssues)
}

func build(inputs []models.IssueInput) ([]models.Issue, error) {
	issues := make([]models.Issue, 0, len(inputs))
	for i, in := range inputs {
		issue, err := models.NewIssue(in)
		if err != nil {
			return nil, fmt.Errorf("seed entry %d: %w", i, err)
		}
		issues = append(issues, issue)
	}
	return issues, nil
}

func day(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

var seedIssues = []models.IssueInput{
	{
		ID:          "1",
		Title:       "Large pothole on Ring Road",
		Category:    "road",
		Description: "Dangerous pothole near Balkhu bridge causing accidents. Needs immediate attention.",
		Location:    "Balkhu, Ring Road, Kathmandu",
		Coordinates: models.Coordinates{Latitude: 27.6858, Longitude: 85.3021},
		Status:      "pending",
		ReportedBy:  "Anonymous Citizen",
		CreatedAt:   day("2024-01-10"),
		UpdatedAt:   day("2024-01-10"),
	},
	{
		ID:          "2",
		Title:       "Garbage pile at Thamel junction",
		Category:    "garbage",
		Description: "Uncollected garbage for over a week. Strong odor and health hazard.",
		Location:    "Thamel, Kathmandu",
		Coordinates: models.Coordinates{Latitude: 27.7159, Longitude: 85.3131},
		Status:      "review",
		ReportedBy:  "Local Shopkeeper",
		CreatedAt:   day("2024-01-08"),
		UpdatedAt:   day("2024-01-11"),
	},
	{
		ID:          "3",
		Title:       "Water pipeline leakage",
		Category:    "water",
		Description: "Major water leakage flooding the street. Wasting precious water resources.",
		Location:    "New Baneshwor, Kathmandu",
		Coordinates: models.Coordinates{Latitude: 27.6933, Longitude: 85.3424},
		Status:      "resolved",
		ReportedBy:  "Resident Association",
		CreatedAt:   day("2024-01-05"),
		UpdatedAt:   day("2024-01-12"),
	},
	{
		ID:          "4",
		Title:       "Broken streetlight",
		Category:    "electricity",
		Description: "Streetlight not working for 2 weeks. Safety concern at night.",
		Location:    "Koteshwor, Kathmandu",
		Coordinates: models.Coordinates{Latitude: 27.6766, Longitude: 85.3495},
		Status:      "pending",
		ReportedBy:  "Night Watchman",
		CreatedAt:   day("2024-01-12"),
		UpdatedAt:   day("2024-01-12"),
	},
	{
		ID:          "5",
		Title:       "Missing manhole cover",
		Category:    "safety",
		Description: "Open manhole without cover near school. Extremely dangerous for children.",
		Location:    "Patan Dhoka, Lalitpur",
		Coordinates: models.Coordinates{Latitude: 27.6727, Longitude: 85.3239},
		Status:      "review",
		ReportedBy:  "School Principal",
		CreatedAt:   day("2024-01-09"),
		UpdatedAt:   day("2024-01-11"),
	},
	{
		ID:          "6",
		Title:       "Damaged road after monsoon",
		Category:    "road",
		Description: "Road completely washed away. Vehicles cannot pass.",
		Location:    "Budhanilkantha, Kathmandu",
		Coordinates: models.Coordinates{Latitude: 27.7634, Longitude: 85.3640},
		Status:      "pending",
		ReportedBy:  "Local Driver",
		CreatedAt:   day("2024-01-11"),
		UpdatedAt:   day("2024-01-11"),
	},
	{
		ID:          "7",
		Title:       "Clogged drainage system",
		Category:    "water",
		Description: "Blocked drainage causing water logging during rain.",
		Location:    "Kalanki, Kathmandu",
		Coordinates: models.Coordinates{Latitude: 27.6933, Longitude: 85.2821},
		Status:      "resolved",
		ReportedBy:  "Shop Owner",
		CreatedAt:   day("2024-01-03"),
		UpdatedAt:   day("2024-01-10"),
	},
	{
		ID:          "8",
		Title:       "Illegal garbage dumping",
		Category:    "garbage",
		Description: "People dumping garbage in the river. Environmental hazard.",
		Location:    "Bagmati River Bank, Thapathali",
		Coordinates: models.Coordinates{Latitude: 27.6939, Longitude: 85.3179},
		Status:      "pending",
		ReportedBy:  "Environmental Activist",
		CreatedAt:   day("2024-01-13"),
		UpdatedAt:   day("2024-01-13"),
	},
}
