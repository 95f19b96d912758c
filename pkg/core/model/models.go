package model

import "time"

// Skill is a named capability required by spots and held by employees
type Skill struct {
	TenantID int64  `json:"tenantId" yaml:"tenantId"`
	ID       int64  `json:"id" yaml:"id"`
	Version  int64  `json:"version" yaml:"version"`
	Name     string `json:"name" yaml:"name" validate:"required"`
}

// Contract holds the working-time limits of an employee.
// A nil maximum means the contract has no limit for that period.
type Contract struct {
	TenantID               int64  `json:"tenantId" yaml:"tenantId"`
	ID                     int64  `json:"id" yaml:"id"`
	Version                int64  `json:"version" yaml:"version"`
	Name                   string `json:"name" yaml:"name"`
	MaximumMinutesPerDay   *int   `json:"maximumMinutesPerDay,omitempty" yaml:"maximumMinutesPerDay,omitempty"`
	MaximumMinutesPerWeek  *int   `json:"maximumMinutesPerWeek,omitempty" yaml:"maximumMinutesPerWeek,omitempty"`
	MaximumMinutesPerMonth *int   `json:"maximumMinutesPerMonth,omitempty" yaml:"maximumMinutesPerMonth,omitempty"`
	MaximumMinutesPerYear  *int   `json:"maximumMinutesPerYear,omitempty" yaml:"maximumMinutesPerYear,omitempty"`
}

// MaximumMinutes returns the contract limit for the given period type
func (c *Contract) MaximumMinutes(period PeriodType) (int, bool) {
	if c == nil {
		return 0, false
	}

	var limit *int
	switch period {
	case PeriodDay:
		limit = c.MaximumMinutesPerDay
	case PeriodWeek:
		limit = c.MaximumMinutesPerWeek
	case PeriodMonth:
		limit = c.MaximumMinutesPerMonth
	case PeriodYear:
		limit = c.MaximumMinutesPerYear
	}

	if limit == nil {
		return 0, false
	}
	return *limit, true
}

// Employee is a person who can be assigned to shifts
type Employee struct {
	TenantID            int64     `json:"tenantId" yaml:"tenantId"`
	ID                  int64     `json:"id" yaml:"id"`
	Version             int64     `json:"version" yaml:"version"`
	Name                string    `json:"name" yaml:"name" validate:"required"`
	Contract            *Contract `json:"contract,omitempty" yaml:"contract,omitempty"`
	SkillProficiencySet []Skill   `json:"skillProficiencySet" yaml:"skillProficiencySet"`
}

// Spot is the location or position a shift is worked at
type Spot struct {
	TenantID         int64   `json:"tenantId" yaml:"tenantId"`
	ID               int64   `json:"id" yaml:"id"`
	Version          int64   `json:"version" yaml:"version"`
	Name             string  `json:"name" yaml:"name" validate:"required"`
	RequiredSkillSet []Skill `json:"requiredSkillSet" yaml:"requiredSkillSet"`
}

// AvailabilityState describes how an employee feels about a time window
type AvailabilityState string

const (
	AvailabilityUnavailable AvailabilityState = "UNAVAILABLE"
	AvailabilityDesired     AvailabilityState = "DESIRED"
	AvailabilityUndesired   AvailabilityState = "UNDESIRED"
)

func (s AvailabilityState) IsValid() bool {
	return s == AvailabilityUnavailable || s == AvailabilityDesired || s == AvailabilityUndesired
}

// EmployeeAvailability is a window in which an employee is unavailable, or would (not) like to work
type EmployeeAvailability struct {
	TenantID      int64             `json:"tenantId" yaml:"tenantId"`
	ID            int64             `json:"id" yaml:"id"`
	Version       int64             `json:"version" yaml:"version"`
	StartDateTime time.Time         `json:"startDateTime" yaml:"startDateTime"`
	EndDateTime   time.Time         `json:"endDateTime" yaml:"endDateTime"`
	Employee      *Employee         `json:"employee,omitempty" yaml:"employee,omitempty"`
	State         AvailabilityState `json:"state" yaml:"state"`
}

// PeriodType is the contract period a minutes limit applies to
type PeriodType string

const (
	PeriodDay   PeriodType = "DAY"
	PeriodWeek  PeriodType = "WEEK"
	PeriodMonth PeriodType = "MONTH"
	PeriodYear  PeriodType = "YEAR"
)

func (p PeriodType) IsValid() bool {
	return p == PeriodDay || p == PeriodWeek || p == PeriodMonth || p == PeriodYear
}

// Roster is a solved snapshot as exported by the rostering backend
type Roster struct {
	TenantID int64   `json:"tenantId" yaml:"tenantId"`
	Shifts   []Shift `json:"shifts" yaml:"shifts" validate:"dive"`
}
