package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/rosterboard/shiftboard/internal/config"
	"github.com/rosterboard/shiftboard/pkg/clients/sheetsclient"
	"github.com/rosterboard/shiftboard/pkg/core/shiftevent"
)

const defaultReportTabPrefix = "Indictments"

// ReportPublisher writes a report to a spreadsheet
type ReportPublisher interface {
	PublishReport(ctx context.Context, spreadsheetID string, report *sheetsclient.Report) error
}

// reportTitle names the report tab after the prefix and the dates the shifts span
func reportTitle(prefix string, views []ShiftView) string {
	if prefix == "" {
		prefix = defaultReportTabPrefix
	}
	if len(views) == 0 {
		return prefix
	}

	first, last := views[0].Start, views[0].Start
	for _, view := range views[1:] {
		if view.Start.Before(first) {
			first = view.Start
		}
		if view.Start.After(last) {
			last = view.Start
		}
	}
	return fmt.Sprintf("%s %s - %s", prefix, first.Format("Mon Jan 02 2006"), last.Format("Mon Jan 02 2006"))
}

// BuildReport lays shift views out as report rows: one row per indictment entry,
// or a single row for a shift without indictments
func BuildReport(title string, views []ShiftView) *sheetsclient.Report {
	report := &sheetsclient.Report{Title: title, Rows: []sheetsclient.ReportRow{}}

	for _, view := range views {
		base := sheetsclient.ReportRow{
			Date:     view.Start.Format("Mon Jan 02 2006"),
			Time:     view.TimeRange,
			Spot:     view.Spot,
			Employee: view.Title,
			Score:    view.Score,
			Severity: string(view.Color.Class),
			Color:    view.Color.Value,
		}

		if len(view.Indictments) == 0 {
			report.Rows = append(report.Rows, base)
			continue
		}

		for _, block := range view.Indictments {
			for _, entry := range block.Entries {
				row := base
				row.Category = block.Title
				row.Tier = string(block.Tier)
				row.Description = fmt.Sprintf("%s (%s)", entry.Description, entry.Score)

				details := make([]string, 0, len(entry.Fields))
				for _, field := range entry.Fields {
					details = append(details, field.Label+": "+field.Value)
				}
				row.Details = strings.Join(details, "; ")

				report.Rows = append(report.Rows, row)
			}
		}
	}

	return report
}

// PublishReport builds the indictment report for every stored shift and publishes it to the configured spreadsheet.
// tab overrides the generated tab title.
func PublishReport(
	ctx context.Context,
	store ViewShiftsStore,
	publisher ReportPublisher,
	renderer *shiftevent.Renderer,
	cfg *config.Config,
	logger *zap.Logger,
	tab string,
) (*sheetsclient.Report, error) {
	if cfg.ReportSheetID == "" {
		return nil, fmt.Errorf("reportSheetID is not configured")
	}

	views, err := ViewShifts(ctx, store, renderer, logger, ViewShiftsFilter{}, ShiftActions{})
	if err != nil {
		return nil, err
	}

	title := tab
	if title == "" {
		title = reportTitle(cfg.ReportTabPrefix, views)
	}

	report := BuildReport(title, views)
	logger.Debug("Report built", zap.String("title", report.Title), zap.Int("rows", len(report.Rows)))

	if err := publisher.PublishReport(ctx, cfg.ReportSheetID, report); err != nil {
		return nil, fmt.Errorf("failed to publish report: %w", err)
	}

	return report, nil
}
