package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseComplexity(t *testing.T) {
	tests := []struct {
		input string
		want  Complexity
		ok    bool
	}{
		{"easy", ComplexityEasy, true},
		{"medium", ComplexityMedium, true},
		{"hard", ComplexityHard, true},
		{"MEDIUM", ComplexityMedium, true},
		{" hard ", ComplexityHard, true},
		{"", "", false},
		{"extreme", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseComplexity(tt.input)
		assert.Equal(t, tt.ok, ok, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestQuestionHasCorrectOption(t *testing.T) {
	q := &Question{
		Options: []*Option{
			{Statement: "A", IsCorrect: false},
			{Statement: "B", IsCorrect: true},
		},
	}
	assert.True(t, q.HasCorrectOption())

	q.Options[1].IsCorrect = false
	assert.False(t, q.HasCorrectOption())

	empty := &Question{}
	assert.False(t, empty.HasCorrectOption())
}

func TestNewCategoryTrimsName(t *testing.T) {
	c := NewCategory("  History  ")
	assert.Equal(t, "History", c.Name)
	assert.False(t, c.CreatedAt.IsZero())
}
