package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewReportID(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := NewReportID()
		assert.Regexp(t, `^UPY-[0-9A-F]{8}$`, id)
		seen[id] = true
	}
	assert.Greater(t, len(seen), 95)
}
