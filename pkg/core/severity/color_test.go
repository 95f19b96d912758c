package severity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rosterboard/shiftboard/pkg/core/model"
)

func TestShiftColor(t *testing.T) {
	colorizer := NewColorizer(nil)

	tests := []struct {
		name     string
		score    model.HardMediumSoftScore
		expected Class
	}{
		{"hard violation", model.HardMediumSoftScore{Hard: -10}, HardViolation},
		{"medium violation", model.HardMediumSoftScore{Medium: -1}, MediumViolation},
		{"soft violation", model.HardMediumSoftScore{Soft: -3}, SoftViolation},
		{"positive", model.HardMediumSoftScore{Soft: 5}, Positive},
		{"neutral", model.HardMediumSoftScore{}, Neutral},
		{"hard beats soft reward", model.HardMediumSoftScore{Hard: -1, Soft: 100}, HardViolation},
		{"medium beats soft penalty", model.HardMediumSoftScore{Medium: -1, Soft: -100}, MediumViolation},
		{"soft penalty beats medium reward", model.HardMediumSoftScore{Medium: 2, Soft: -1}, SoftViolation},
		{"positive medium", model.HardMediumSoftScore{Medium: 5}, Positive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			color := colorizer.ShiftColor(tt.score)
			assert.Equal(t, tt.expected, color.Class)
			assert.Equal(t, DefaultPalette()[tt.expected], color.Value)
		})
	}
}

func TestShiftColor_MagnitudeDoesNotMatter(t *testing.T) {
	colorizer := NewColorizer(nil)

	assert.Equal(t,
		colorizer.ShiftColor(model.HardMediumSoftScore{Hard: -1}),
		colorizer.ShiftColor(model.HardMediumSoftScore{Hard: -1000000}))
}

func TestNewColorizer_PaletteOverrides(t *testing.T) {
	colorizer := NewColorizer(Palette{HardViolation: "darkred", Neutral: ""})

	assert.Equal(t, "darkred", colorizer.ShiftColor(model.HardMediumSoftScore{Hard: -1}).Value)
	// Empty values keep the default
	assert.Equal(t, "#2b9af3", colorizer.ShiftColor(model.HardMediumSoftScore{}).Value)

	palette := colorizer.Palette()
	palette[Positive] = "changed"
	assert.Equal(t, "#3e8635", colorizer.ShiftColor(model.HardMediumSoftScore{Soft: 1}).Value)
}
