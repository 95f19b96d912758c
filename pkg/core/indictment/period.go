package indictment

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/rosterboard/shiftboard/pkg/core/model"
)

var rruleWeekdays = []rrule.Weekday{rrule.SU, rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR, rrule.SA}

// PeriodWindow returns the contract period [start, end) of the given type that contains t.
// Weeks begin on weekStart; months and years begin on their first day. All boundaries are
// midnight in t's location.
func PeriodWindow(period model.PeriodType, t time.Time, weekStart time.Weekday) (time.Time, time.Time, error) {
	dayStart := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())

	var opt rrule.ROption
	switch period {
	case model.PeriodDay:
		return dayStart, dayStart.AddDate(0, 0, 1), nil
	case model.PeriodWeek:
		opt = rrule.ROption{
			Freq:      rrule.WEEKLY,
			Byweekday: []rrule.Weekday{rruleWeekdays[weekStart]},
			Dtstart:   dayStart.AddDate(0, 0, -7),
		}
	case model.PeriodMonth:
		opt = rrule.ROption{
			Freq:       rrule.MONTHLY,
			Bymonthday: []int{1},
			Dtstart:    time.Date(t.Year(), t.Month()-1, 1, 0, 0, 0, 0, t.Location()),
		}
	case model.PeriodYear:
		opt = rrule.ROption{
			Freq:    rrule.YEARLY,
			Dtstart: time.Date(t.Year()-1, time.January, 1, 0, 0, 0, 0, t.Location()),
		}
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("unknown period type: %q", period)
	}

	rule, err := rrule.NewRRule(opt)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("failed to build %s period rule: %w", period, err)
	}

	start := rule.Before(t, true)
	if start.IsZero() {
		return time.Time{}, time.Time{}, fmt.Errorf("no %s period found containing %s", period, t.Format(time.RFC3339))
	}
	end := rule.After(start, false)

	return start, end, nil
}
