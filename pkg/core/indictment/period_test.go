package indictment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rosterboard/shiftboard/pkg/core/model"
)

func TestPeriodWindow(t *testing.T) {
	// Sunday
	at := time.Date(2018, 7, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		period    model.PeriodType
		weekStart time.Weekday
		start     time.Time
		end       time.Time
	}{
		{"day", model.PeriodDay, time.Monday,
			time.Date(2018, 7, 1, 0, 0, 0, 0, time.UTC), time.Date(2018, 7, 2, 0, 0, 0, 0, time.UTC)},
		{"week starting monday", model.PeriodWeek, time.Monday,
			time.Date(2018, 6, 25, 0, 0, 0, 0, time.UTC), time.Date(2018, 7, 2, 0, 0, 0, 0, time.UTC)},
		{"week starting sunday", model.PeriodWeek, time.Sunday,
			time.Date(2018, 7, 1, 0, 0, 0, 0, time.UTC), time.Date(2018, 7, 8, 0, 0, 0, 0, time.UTC)},
		{"month", model.PeriodMonth, time.Monday,
			time.Date(2018, 7, 1, 0, 0, 0, 0, time.UTC), time.Date(2018, 8, 1, 0, 0, 0, 0, time.UTC)},
		{"year", model.PeriodYear, time.Monday,
			time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := PeriodWindow(tt.period, at, tt.weekStart)
			require.NoError(t, err)
			assert.True(t, tt.start.Equal(start), "start: expected %s, got %s", tt.start, start)
			assert.True(t, tt.end.Equal(end), "end: expected %s, got %s", tt.end, end)
		})
	}
}

func TestPeriodWindow_UnknownType(t *testing.T) {
	_, _, err := PeriodWindow(model.PeriodType("FORTNIGHT"), time.Now(), time.Monday)
	assert.Error(t, err)
}
