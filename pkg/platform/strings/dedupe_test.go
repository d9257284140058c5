package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupeAndTrim(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "nil slice",
			input:    nil,
			expected: nil,
		},
		{
			name:     "empty slice",
			input:    []string{},
			expected: []string{},
		},
		{
			name:     "keeps first occurrence order",
			input:    []string{"male", "female", "male"},
			expected: []string{"male", "female"},
		},
		{
			name:     "trims and drops blanks",
			input:    []string{"  female ", "", "   ", "female"},
			expected: []string{"female"},
		},
		{
			name:     "case sensitive",
			input:    []string{"Male", "male"},
			expected: []string{"Male", "male"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DedupeAndTrim(tt.input))
		})
	}
}

func TestSortedUnique(t *testing.T) {
	assert.Equal(t, []string{"female", "male"}, SortedUnique([]string{"male", " female", "male"}))
	assert.Empty(t, SortedUnique(nil))
}
