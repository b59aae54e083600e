package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryMeta(t *testing.T) {
	meta, err := CategoryMeta(Road)
	require.NoError(t, err)
	assert.Equal(t, "Road", meta.Label)
	assert.Equal(t, "orange", meta.Color)

	_, err = CategoryMeta("unknown")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestStatusMeta(t *testing.T) {
	meta, err := StatusMeta(Review)
	require.NoError(t, err)
	assert.Equal(t, "In Review", meta.Label)

	_, err = StatusMeta("closed")
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestMetadataTablesAreClosed(t *testing.T) {
	cats := AllCategoryMeta()
	require.Len(t, cats, 5)
	for i, c := range Categories() {
		assert.Equal(t, c, cats[i].Category)
		assert.NotEmpty(t, cats[i].LabelNp)
		assert.NotEmpty(t, cats[i].Icon)
	}

	sts := AllStatusMeta()
	require.Len(t, sts, 3)
	for i, s := range Statuses() {
		assert.Equal(t, s, sts[i].Status)
	}
}

func TestCategoriesReturnsCopy(t *testing.T) {
	got := Categories()
	got[0] = "mutated"
	assert.Equal(t, Road, Categories()[0])
}
