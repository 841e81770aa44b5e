package cultivation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSteps_AlwaysEight(t *testing.T) {
	for _, key := range []string{"", "rice", "wheat", "potato", "dragonfruit", "  Potato  "} {
		steps := Steps(key)
		require.Len(t, steps, StepCount, "crop %q", key)
		for i, s := range steps {
			assert.Equal(t, i+1, s.Step, "crop %q", key)
		}
	}
}

func TestSteps_Potato(t *testing.T) {
	steps := Steps("potato")

	assert.Equal(t, "Seed Tuber", steps[1].Title)
	assert.Equal(t, "Use disease-free cut tubers; treat with fungicide.", steps[1].Description)
	assert.Equal(t, "1-2 days", steps[1].Duration, "unmodified fields keep generic values")
	assert.Equal(t, "seeds", steps[1].ImageHint)

	for i, s := range steps {
		if i == 1 {
			continue
		}
		assert.Equal(t, generic[i], s)
	}
}

func TestSteps_OverridesByCrop(t *testing.T) {
	assert.Equal(t, "Puddling", Steps("Rice")[0].Title)
	assert.Equal(t, "land_preparation", Steps("rice")[0].ImageHint)
	assert.Equal(t, "Seed Bed", Steps("wheat")[0].Title)
	assert.Equal(t, generic[:], Steps("maize"))
	assert.True(t, HasOverrides(" RICE "))
	assert.False(t, HasOverrides("maize"))
}

func TestSteps_DoesNotMutateGeneric(t *testing.T) {
	steps := Steps("wheat")
	steps[3].Title = "changed"

	assert.Equal(t, "Land Preparation", generic[0].Title)
	assert.Equal(t, "Irrigation", Steps("wheat")[3].Title)
}

func TestApply_IgnoresOutOfRange(t *testing.T) {
	steps := apply(generic, []override{
		{Step: 0, Title: "zero"},
		{Step: 9, Title: "nine"},
		{Step: -1, Title: "negative"},
		{Step: 8, Duration: "Months"},
	})
	require.Len(t, steps, StepCount)
	assert.Equal(t, generic[0], steps[0])
	assert.Equal(t, "Post-Harvest & Storage", steps[7].Title)
	assert.Equal(t, "Months", steps[7].Duration)
}
