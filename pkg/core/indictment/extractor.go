package indictment

import (
	"fmt"
	"iter"
	"time"

	"github.com/rosterboard/shiftboard/pkg/core/model"
)

// Extractor turns a shift's indictment lists into display blocks, one per non-empty category
type Extractor struct {
	categories []Category
	weekStart  time.Weekday
	tiers      map[string]Tier
}

type Option func(*Extractor)

// WithWeekStart sets the first day of contract weeks (Monday by default)
func WithWeekStart(day time.Weekday) Option {
	return func(e *Extractor) {
		e.weekStart = day
	}
}

// WithTiers overrides the tier of the named categories
func WithTiers(tiers map[string]Tier) Option {
	return func(e *Extractor) {
		for name, tier := range tiers {
			e.tiers[name] = tier
		}
	}
}

// WithCategories replaces the built-in category list
func WithCategories(categories ...Category) Option {
	return func(e *Extractor) {
		e.categories = categories
	}
}

// NewExtractor creates an extractor over the built-in categories
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		weekStart: time.Monday,
		tiers:     make(map[string]Tier),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.categories == nil {
		e.categories = DefaultCategories(e.weekStart)
	}
	return e
}

// ValidateTiers checks that every override names a known category and a valid tier
func (e *Extractor) ValidateTiers() error {
	for name, tier := range e.tiers {
		if _, ok := e.category(name); !ok {
			return fmt.Errorf("unknown indictment category: %q", name)
		}
		if !tier.IsValid() {
			return fmt.Errorf("invalid tier %q for category %s", tier, name)
		}
	}
	return nil
}

// Categories returns the registered categories in block order
func (e *Extractor) Categories() []Category {
	return append([]Category(nil), e.categories...)
}

// TierOf returns the tier the named category is reported at
func (e *Extractor) TierOf(name string) Tier {
	if tier, ok := e.tiers[name]; ok {
		return tier
	}
	if c, ok := e.category(name); ok {
		return c.DefaultTier()
	}
	return TierSoft
}

func (e *Extractor) category(name string) (Category, bool) {
	for _, c := range e.categories {
		if c.Name() == name {
			return c, true
		}
	}
	return nil, false
}

func (e *Extractor) block(c Category, entries []Entry) Block {
	return Block{
		Category: c.Name(),
		Title:    c.Title(),
		Tier:     e.TierOf(c.Name()),
		Entries:  entries,
	}
}

// Blocks yields one block per category with at least one entry, in category order.
// A nil shift yields nothing.
func (e *Extractor) Blocks(shift *model.Shift) iter.Seq[Block] {
	return func(yield func(Block) bool) {
		if shift == nil {
			return
		}
		for _, c := range e.categories {
			entries := c.Indict(shift)
			if len(entries) == 0 {
				continue
			}
			if !yield(e.block(c, entries)) {
				return
			}
		}
	}
}

// Indictments collects every block for the shift. The result is empty, never nil, for a shift with no indictments.
func (e *Extractor) Indictments(shift *model.Shift) []Block {
	blocks := []Block{}
	for block := range e.Blocks(shift) {
		blocks = append(blocks, block)
	}
	return blocks
}

// Block returns the named category's block, or false if the category has no entries for the shift
func (e *Extractor) Block(shift *model.Shift, name string) (Block, bool) {
	c, ok := e.category(name)
	if !ok || shift == nil {
		return Block{}, false
	}
	entries := c.Indict(shift)
	if len(entries) == 0 {
		return Block{}, false
	}
	return e.block(c, entries), true
}

func (e *Extractor) RequiredSkillViolations(shift *model.Shift) (Block, bool) {
	return e.Block(shift, RequiredSkillViolation)
}

func (e *Extractor) ContractMinutesViolations(shift *model.Shift) (Block, bool) {
	return e.Block(shift, ContractMinutesViolation)
}

func (e *Extractor) UnavailableEmployeeViolations(shift *model.Shift) (Block, bool) {
	return e.Block(shift, UnavailableEmployeeViolation)
}

func (e *Extractor) ShiftEmployeeConflicts(shift *model.Shift) (Block, bool) {
	return e.Block(shift, ShiftEmployeeConflict)
}

func (e *Extractor) RotationViolationPenalties(shift *model.Shift) (Block, bool) {
	return e.Block(shift, RotationViolationPenalty)
}

func (e *Extractor) UnassignedShiftPenalties(shift *model.Shift) (Block, bool) {
	return e.Block(shift, UnassignedShiftPenalty)
}

func (e *Extractor) UndesiredTimeslotPenalties(shift *model.Shift) (Block, bool) {
	return e.Block(shift, UndesiredTimeslotForEmployeePenalty)
}

func (e *Extractor) DesiredTimeslotRewards(shift *model.Shift) (Block, bool) {
	return e.Block(shift, DesiredTimeslotForEmployeeReward)
}
