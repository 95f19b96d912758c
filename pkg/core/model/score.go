package model

import (
	"fmt"
	"strconv"
	"strings"
)

// HardMediumSoftScore is a three-tier score. Hard dominates medium, which dominates soft;
// each tier is signed independently and zero means no issue at that tier.
type HardMediumSoftScore struct {
	Hard   int `json:"hardScore" yaml:"hardScore"`
	Medium int `json:"mediumScore" yaml:"mediumScore"`
	Soft   int `json:"softScore" yaml:"softScore"`
}

// Add returns the tier-wise sum of two scores
func (s HardMediumSoftScore) Add(other HardMediumSoftScore) HardMediumSoftScore {
	return HardMediumSoftScore{
		Hard:   s.Hard + other.Hard,
		Medium: s.Medium + other.Medium,
		Soft:   s.Soft + other.Soft,
	}
}

// IsZero returns true if every tier is zero
func (s HardMediumSoftScore) IsZero() bool {
	return s.Hard == 0 && s.Medium == 0 && s.Soft == 0
}

// IsFeasible returns true if the hard tier is not negative
func (s HardMediumSoftScore) IsFeasible() bool {
	return s.Hard >= 0
}

// String formats the score as "-1hard/0medium/-5soft"
func (s HardMediumSoftScore) String() string {
	return fmt.Sprintf("%dhard/%dmedium/%dsoft", s.Hard, s.Medium, s.Soft)
}

// ParseScore parses a score in the "-1hard/0medium/-5soft" format
func ParseScore(text string) (HardMediumSoftScore, error) {
	parts := strings.Split(strings.TrimSpace(text), "/")
	if len(parts) != 3 {
		return HardMediumSoftScore{}, fmt.Errorf("invalid score %q: expected <n>hard/<n>medium/<n>soft", text)
	}

	suffixes := []string{"hard", "medium", "soft"}
	values := make([]int, 3)
	for i, part := range parts {
		numeric, ok := strings.CutSuffix(part, suffixes[i])
		if !ok {
			return HardMediumSoftScore{}, fmt.Errorf("invalid score %q: part %q must end with %q", text, part, suffixes[i])
		}
		value, err := strconv.Atoi(numeric)
		if err != nil {
			return HardMediumSoftScore{}, fmt.Errorf("invalid score %q: %w", text, err)
		}
		values[i] = value
	}

	return HardMediumSoftScore{Hard: values[0], Medium: values[1], Soft: values[2]}, nil
}
