// Package severity maps a shift's three-tier indictment score to a display color
package severity

import "github.com/rosterboard/shiftboard/pkg/core/model"

// Class is the severity of a score
type Class string

const (
	HardViolation   Class = "hard-violation"
	MediumViolation Class = "medium-violation"
	SoftViolation   Class = "soft-violation"
	Positive        Class = "positive"
	Neutral         Class = "neutral"
)

// Classes lists every class from most to least severe
var Classes = []Class{HardViolation, MediumViolation, SoftViolation, Positive, Neutral}

// Color is a severity class and the CSS color it is shown with
type Color struct {
	Class Class  `json:"class"`
	Value string `json:"value"`
}

// Palette maps each class to a CSS color value
type Palette map[Class]string

// DefaultPalette returns the built-in palette
func DefaultPalette() Palette {
	return Palette{
		HardViolation:   "#c9190b",
		MediumViolation: "#f0ab00",
		SoftViolation:   "#ec7a08",
		Positive:        "#3e8635",
		Neutral:         "#2b9af3",
	}
}

// Colorizer classifies scores using a palette
type Colorizer struct {
	palette Palette
}

// NewColorizer creates a colorizer. Classes missing from the palette use the default value.
func NewColorizer(palette Palette) *Colorizer {
	merged := DefaultPalette()
	for class, value := range palette {
		if value != "" {
			merged[class] = value
		}
	}
	return &Colorizer{palette: merged}
}

// Classify returns the severity class of a score.
// The most severe negative tier wins; any positive tier with no negative one is positive.
func Classify(score model.HardMediumSoftScore) Class {
	switch {
	case score.Hard < 0:
		return HardViolation
	case score.Medium < 0:
		return MediumViolation
	case score.Soft < 0:
		return SoftViolation
	case score.Hard > 0 || score.Medium > 0 || score.Soft > 0:
		return Positive
	default:
		return Neutral
	}
}

// ShiftColor returns the color a shift with the given indictment score is shown in
func (c *Colorizer) ShiftColor(score model.HardMediumSoftScore) Color {
	class := Classify(score)
	return Color{Class: class, Value: c.palette[class]}
}

// Palette returns a copy of the colorizer's palette
func (c *Colorizer) Palette() Palette {
	palette := make(Palette, len(c.palette))
	for class, value := range c.palette {
		palette[class] = value
	}
	return palette
}
