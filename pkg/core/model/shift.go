package model

import (
	"encoding/json"
	"time"
)

// Shift is a scheduled work period at a spot, together with the solver's explanation of its score.
// The eight indictment lists are never nil once a shift has been decoded or normalized.
type Shift struct {
	TenantID         int64               `json:"tenantId" yaml:"tenantId"`
	ID               int64               `json:"id" yaml:"id"`
	Version          int64               `json:"version" yaml:"version"`
	StartDateTime    time.Time           `json:"startDateTime" yaml:"startDateTime" validate:"required"`
	EndDateTime      time.Time           `json:"endDateTime" yaml:"endDateTime" validate:"required,gtfield=StartDateTime"`
	Spot             *Spot               `json:"spot" yaml:"spot" validate:"required"`
	Employee         *Employee           `json:"employee,omitempty" yaml:"employee,omitempty"`
	RotationEmployee *Employee           `json:"rotationEmployee,omitempty" yaml:"rotationEmployee,omitempty"`
	PinnedByUser     bool                `json:"pinnedByUser" yaml:"pinnedByUser"`
	IndictmentScore  HardMediumSoftScore `json:"indictmentScore" yaml:"indictmentScore"`

	RequiredSkillViolationList              []ShiftIndictment          `json:"requiredSkillViolationList" yaml:"requiredSkillViolationList"`
	ContractMinutesViolationPenaltyList     []ContractMinutesViolation `json:"contractMinutesViolationPenaltyList" yaml:"contractMinutesViolationPenaltyList"`
	UnavailableEmployeeViolationList        []AvailabilityIndictment   `json:"unavailableEmployeeViolationList" yaml:"unavailableEmployeeViolationList"`
	ShiftEmployeeConflictList               []ShiftEmployeeConflict    `json:"shiftEmployeeConflictList" yaml:"shiftEmployeeConflictList"`
	RotationViolationPenaltyList            []ShiftIndictment          `json:"rotationViolationPenaltyList" yaml:"rotationViolationPenaltyList"`
	UnassignedShiftPenaltyList              []ShiftIndictment          `json:"unassignedShiftPenaltyList" yaml:"unassignedShiftPenaltyList"`
	UndesiredTimeslotForEmployeePenaltyList []AvailabilityIndictment   `json:"undesiredTimeslotForEmployeePenaltyList" yaml:"undesiredTimeslotForEmployeePenaltyList"`
	DesiredTimeslotForEmployeeRewardList    []AvailabilityIndictment   `json:"desiredTimeslotForEmployeeRewardList" yaml:"desiredTimeslotForEmployeeRewardList"`
}

// ShiftIndictment is a score attached to a shift with no further context
// (required skill violations, rotation violation penalties, unassigned shift penalties)
type ShiftIndictment struct {
	Score HardMediumSoftScore `json:"score" yaml:"score"`
	Shift *Shift              `json:"shift,omitempty" yaml:"shift,omitempty"`
}

// ContractMinutesViolation records an employee working more minutes than their contract allows
type ContractMinutesViolation struct {
	Score         HardMediumSoftScore `json:"score" yaml:"score"`
	Employee      *Employee           `json:"employee,omitempty" yaml:"employee,omitempty"`
	Type          PeriodType          `json:"type" yaml:"type"`
	MinutesWorked int                 `json:"minutesWorked" yaml:"minutesWorked"`
}

// AvailabilityIndictment is a score caused by the shift overlapping an employee availability window
// (unavailable violations, undesired timeslot penalties, desired timeslot rewards)
type AvailabilityIndictment struct {
	Score                HardMediumSoftScore   `json:"score" yaml:"score"`
	Shift                *Shift                `json:"shift,omitempty" yaml:"shift,omitempty"`
	EmployeeAvailability *EmployeeAvailability `json:"employeeAvailability,omitempty" yaml:"employeeAvailability,omitempty"`
}

// ShiftEmployeeConflict pairs two shifts assigned to the same employee that cannot both be worked.
// The shift owning the entry can be on either side.
type ShiftEmployeeConflict struct {
	Score      HardMediumSoftScore `json:"score" yaml:"score"`
	LeftShift  *Shift              `json:"leftShift,omitempty" yaml:"leftShift,omitempty"`
	RightShift *Shift              `json:"rightShift,omitempty" yaml:"rightShift,omitempty"`
}

// Other returns the side of the conflict that is not the given shift
func (c ShiftEmployeeConflict) Other(current *Shift) *Shift {
	if c.LeftShift.SameAs(current) {
		return c.RightShift
	}
	return c.LeftShift
}

// SameAs reports whether both shifts have the same identity (tenant and id)
func (s *Shift) SameAs(other *Shift) bool {
	if s == nil || other == nil {
		return false
	}
	return s.TenantID == other.TenantID && s.ID == other.ID
}

// Normalize replaces missing indictment lists with empty ones
func (s *Shift) Normalize() {
	if s.RequiredSkillViolationList == nil {
		s.RequiredSkillViolationList = []ShiftIndictment{}
	}
	if s.ContractMinutesViolationPenaltyList == nil {
		s.ContractMinutesViolationPenaltyList = []ContractMinutesViolation{}
	}
	if s.UnavailableEmployeeViolationList == nil {
		s.UnavailableEmployeeViolationList = []AvailabilityIndictment{}
	}
	if s.ShiftEmployeeConflictList == nil {
		s.ShiftEmployeeConflictList = []ShiftEmployeeConflict{}
	}
	if s.RotationViolationPenaltyList == nil {
		s.RotationViolationPenaltyList = []ShiftIndictment{}
	}
	if s.UnassignedShiftPenaltyList == nil {
		s.UnassignedShiftPenaltyList = []ShiftIndictment{}
	}
	if s.UndesiredTimeslotForEmployeePenaltyList == nil {
		s.UndesiredTimeslotForEmployeePenaltyList = []AvailabilityIndictment{}
	}
	if s.DesiredTimeslotForEmployeeRewardList == nil {
		s.DesiredTimeslotForEmployeeRewardList = []AvailabilityIndictment{}
	}
}

// EmployeeName returns the assigned employee's name, or "Unassigned"
func (s *Shift) EmployeeName() string {
	if s.Employee == nil {
		return "Unassigned"
	}
	return s.Employee.Name
}

// SpotName returns the spot's name, or "-" when the shift has no spot
func (s *Shift) SpotName() string {
	if s.Spot == nil {
		return "-"
	}
	return s.Spot.Name
}

// MarshalJSON encodes missing indictment lists as empty arrays
func (s Shift) MarshalJSON() ([]byte, error) {
	type shiftJSON Shift
	s.Normalize()
	return json.Marshal(shiftJSON(s))
}

// UnmarshalJSON decodes a shift and normalizes its indictment lists
func (s *Shift) UnmarshalJSON(data []byte) error {
	type shiftJSON Shift
	var raw shiftJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = Shift(raw)
	s.Normalize()
	return nil
}

// Normalize normalizes every shift in the roster
func (r *Roster) Normalize() {
	for i := range r.Shifts {
		r.Shifts[i].Normalize()
	}
}
