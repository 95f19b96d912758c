package indictment

import "github.com/rosterboard/shiftboard/pkg/core/model"

// Tier is the score level a category is reported at
type Tier string

const (
	TierHard   Tier = "hard"
	TierMedium Tier = "medium"
	TierSoft   Tier = "soft"
)

func (t Tier) IsValid() bool {
	return t == TierHard || t == TierMedium || t == TierSoft
}

// Category names, in the order blocks are produced
const (
	RequiredSkillViolation              = "requiredSkillViolation"
	ContractMinutesViolation            = "contractMinutesViolation"
	UnavailableEmployeeViolation        = "unavailableEmployeeViolation"
	ShiftEmployeeConflict               = "shiftEmployeeConflict"
	RotationViolationPenalty            = "rotationViolationPenalty"
	UnassignedShiftPenalty              = "unassignedShiftPenalty"
	UndesiredTimeslotForEmployeePenalty = "undesiredTimeslotForEmployeePenalty"
	DesiredTimeslotForEmployeeReward    = "desiredTimeslotForEmployeeReward"
)

// Field is a labelled value shown for an entry
type Field struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Entry is one rendered violation, penalty or reward
type Entry struct {
	Description string                    `json:"description"`
	Fields      []Field                   `json:"fields"`
	Score       model.HardMediumSoftScore `json:"score"`
}

// Block summarizes every entry of one category for a shift
type Block struct {
	Category string  `json:"category"`
	Title    string  `json:"title"`
	Tier     Tier    `json:"tier"`
	Entries  []Entry `json:"entries"`
}

// Score returns the sum of the block's entry scores
func (b Block) Score() model.HardMediumSoftScore {
	var total model.HardMediumSoftScore
	for _, entry := range b.Entries {
		total = total.Add(entry.Score)
	}
	return total
}

// Category reads one of a shift's indictment lists.
// Indict must return one entry per list element, in list order, and nothing for an empty list.
type Category interface {
	// Name is the stable tag of the category (used in config and JSON output)
	Name() string

	// Title is the heading shown above the category's entries
	Title() string

	// DefaultTier is the tier the category is reported at unless configured otherwise
	DefaultTier() Tier

	// Indict summarizes the category's list for the given shift
	Indict(shift *model.Shift) []Entry
}
