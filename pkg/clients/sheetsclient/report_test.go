package sheetsclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportValues(t *testing.T) {
	report := &Report{
		Title: "Indictments Sun Jul 01 2018",
		Rows: []ReportRow{
			{
				Date: "Sun Jul 01 2018", Time: "09:00 - 17:00", Spot: "Ambulance", Employee: "Amy",
				Score: "-1hard/0medium/0soft", Severity: "hard-violation", Color: "#c9190b",
				Category: "Required Skill Violations", Tier: "hard",
				Description: "Employee lacks a skill required by the spot", Details: "Missing skills: First Aid",
			},
			{Date: "Mon Jul 02 2018", Time: "09:00 - 17:00", Spot: "Reception", Employee: "Beth", Score: "0hard/0medium/0soft", Severity: "neutral"},
		},
	}

	values := reportValues(report)
	require.Len(t, values, 3)
	assert.Equal(t, reportHeader, values[0])
	assert.Equal(t, []interface{}{
		"Sun Jul 01 2018", "09:00 - 17:00", "Ambulance", "Amy", "-1hard/0medium/0soft", "hard-violation",
		"Required Skill Violations", "hard", "Employee lacks a skill required by the spot", "Missing skills: First Aid",
	}, values[1])
	assert.Len(t, values[2], len(reportHeader))
	assert.Equal(t, "", values[2][6])
}

func TestParseHexColor(t *testing.T) {
	color := parseHexColor("#ff8000")
	require.NotNil(t, color)
	assert.InDelta(t, 1.0, color.Red, 0.001)
	assert.InDelta(t, 128.0/255, color.Green, 0.001)
	assert.InDelta(t, 0.0, color.Blue, 0.001)

	assert.Nil(t, parseHexColor("darkred"))
	assert.Nil(t, parseHexColor("#fff"))
	assert.Nil(t, parseHexColor("#gggggg"))
	assert.Nil(t, parseHexColor(""))
}

func TestQuoteSheetTitle(t *testing.T) {
	assert.Equal(t, "'Indictments'", quoteSheetTitle("Indictments"))
	assert.Equal(t, "'Amy''s shifts'", quoteSheetTitle("Amy's shifts"))
}
