package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"upaya-be/models"
)

func TestStatic_LoadsEightIssues(t *testing.T) {
	issues, err := Static{}.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, issues, 8)

	want := []models.IssueStatus{
		models.Pending, models.Review, models.Resolved, models.Pending,
		models.Review, models.Pending, models.Resolved, models.Pending,
	}
	for i, issue := range issues {
		assert.Equal(t, want[i], issue.Status, "issue %s", issue.ID)
		assert.False(t, issue.UpdatedAt.Before(issue.CreatedAt))
	}
	assert.Equal(t, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), issues[0].CreatedAt)
}

const validDoc = `
issues:
  - id: "a"
    title: Overflowing bin
    category: garbage
    description: Bin has not been emptied.
    location: Jawalakhel, Lalitpur
    coordinates:
      latitude: 27.6727
      longitude: 85.3143
    status: review
    reportedBy: Resident
    createdAt: 2024-02-01T00:00:00Z
    updatedAt: 2024-02-03T00:00:00Z
`

func TestDecode_Valid(t *testing.T) {
	issues, err := Decode([]byte(validDoc))
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, models.Garbage, issues[0].Category)
	assert.Equal(t, models.Review, issues[0].Status)
	assert.InDelta(t, 85.3143, issues[0].Coordinates.Longitude, 1e-9)
}

func TestDecode_RejectsUnknownCategory(t *testing.T) {
	doc := `
issues:
  - id: "a"
    title: Noise
    category: noise
    location: Thamel
    status: pending
    createdAt: 2024-02-01T00:00:00Z
    updatedAt: 2024-02-01T00:00:00Z
`
	_, err := Decode([]byte(doc))
	assert.ErrorIs(t, err, models.ErrUnknownCategory)
}

func TestDecode_RejectsUnknownField(t *testing.T) {
	_, err := Decode([]byte("issues:\n  - id: \"a\"\n    colour: red\n"))
	assert.Error(t, err)
}

func TestFile_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "issues.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validDoc), 0o600))

	src := File{Path: path}
	issues, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, issues, 1)
	assert.Equal(t, "file:"+path, src.Name())

	_, err = File{Path: filepath.Join(t.TempDir(), "missing.yaml")}.Load(context.Background())
	assert.Error(t, err)
}

func TestMongo_NoCollection(t *testing.T) {
	_, err := Mongo{}.Load(context.Background())
	assert.Error(t, err)
	assert.Equal(t, "mongo", Mongo{}.Name())
}
