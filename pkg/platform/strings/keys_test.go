package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty", input: "", expected: ""},
		{name: "whitespace only", input: "   ", expected: ""},
		{name: "lowercases", input: "Wheat", expected: "wheat"},
		{name: "joins words", input: "Basmati Rice", expected: "basmati_rice"},
		{name: "trims and collapses", input: "  pigeon   pea ", expected: "pigeon_pea"},
		{name: "keeps underscores", input: "Pearl_Millet", expected: "pearl_millet"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeKey(tt.input))
		})
	}
}

func TestDedupeKeys(t *testing.T) {
	assert.Nil(t, DedupeKeys(nil))
	assert.Equal(t,
		[]string{"rice", "maize", "wheat"},
		DedupeKeys([]string{"rice", "maize", "", "rice", "wheat", "maize"}),
	)
}

func TestBestOverlap(t *testing.T) {
	table := []string{"rice", "pea", "chickpea", "pigeon_pea"}

	t.Run("exact match wins", func(t *testing.T) {
		assert.Equal(t, 1, BestOverlap("pea", table))
	})

	t.Run("longest overlap wins over earlier shorter one", func(t *testing.T) {
		assert.Equal(t, 3, BestOverlap("red_pigeon_pea", table))
	})

	t.Run("key contained in candidate", func(t *testing.T) {
		assert.Equal(t, 2, BestOverlap("chick", table))
	})

	t.Run("substring of key", func(t *testing.T) {
		assert.Equal(t, 0, BestOverlap("basmati_rice", table))
	})

	t.Run("empty key never matches", func(t *testing.T) {
		assert.Equal(t, -1, BestOverlap("", table))
	})

	t.Run("no overlap", func(t *testing.T) {
		assert.Equal(t, -1, BestOverlap("tomato", table))
	})
}

func TestTitleWords(t *testing.T) {
	assert.Equal(t, "Pigeon Pea", TitleWords("pigeon_pea"))
	assert.Equal(t, "Wheat", TitleWords("wheat"))
	assert.Equal(t, "", TitleWords(""))
}
