// Package shiftevent renders a shift as a calendar event card: title, time range, severity color
// and the indictments explaining its score.
package shiftevent

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/rosterboard/shiftboard/pkg/core/indictment"
	"github.com/rosterboard/shiftboard/pkg/core/model"
	"github.com/rosterboard/shiftboard/pkg/core/severity"
)

//go:embed templates/*.html.tmpl
var templateFS embed.FS

var eventTemplate = template.Must(template.ParseFS(templateFS, "templates/event.html.tmpl"))

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorOrange = "\033[38;5;208m"
	colorGreen  = "\033[32m"
	colorBlue   = "\033[34m"
	colorDim    = "\033[2m"
)

var ansiColors = map[severity.Class]string{
	severity.HardViolation:   colorRed,
	severity.MediumViolation: colorYellow,
	severity.SoftViolation:   colorOrange,
	severity.Positive:        colorGreen,
	severity.Neutral:         colorBlue,
}

// Props are the inputs of an event card. OnEdit and OnDelete are owned by the caller and invoked unchanged.
type Props struct {
	Shift    *model.Shift
	Title    string
	OnEdit   func(shift *model.Shift)
	OnDelete func(shift *model.Shift)
}

// Renderer builds events with a shared extractor and colorizer
type Renderer struct {
	extractor *indictment.Extractor
	colorizer *severity.Colorizer
}

func NewRenderer(extractor *indictment.Extractor, colorizer *severity.Colorizer) *Renderer {
	return &Renderer{extractor: extractor, colorizer: colorizer}
}

var defaultRenderer = NewRenderer(indictment.NewExtractor(), severity.NewColorizer(nil))

// New builds an event using the default categories and palette
func New(props Props) *Event {
	return defaultRenderer.Event(props)
}

// Event builds the card for the given props
func (r *Renderer) Event(props Props) *Event {
	title := props.Title
	if title == "" && props.Shift != nil {
		title = props.Shift.EmployeeName()
	}

	var score model.HardMediumSoftScore
	if props.Shift != nil {
		score = props.Shift.IndictmentScore
	}

	return &Event{
		props:       props,
		title:       title,
		color:       r.colorizer.ShiftColor(score),
		indictments: r.extractor.Indictments(props.Shift),
	}
}

// Event is a rendered shift card
type Event struct {
	props       Props
	title       string
	color       severity.Color
	indictments []indictment.Block
}

func (e *Event) Shift() *model.Shift {
	return e.props.Shift
}

func (e *Event) Title() string {
	return e.title
}

// TimeRange formats the shift window as "09:00 - 17:00", adding dates when it spans midnight
func (e *Event) TimeRange() string {
	shift := e.props.Shift
	if shift == nil {
		return ""
	}
	start, end := shift.StartDateTime, shift.EndDateTime

	sy, sm, sd := start.Date()
	ey, em, ed := end.Date()
	if sy == ey && sm == em && sd == ed {
		return fmt.Sprintf("%s - %s", start.Format("15:04"), end.Format("15:04"))
	}
	return fmt.Sprintf("%s - %s", start.Format("Jan 2 15:04"), end.Format("Jan 2 15:04"))
}

func (e *Event) Color() severity.Color {
	return e.color
}

// Indictments returns the card's indictment blocks in category order
func (e *Event) Indictments() []indictment.Block {
	return e.indictments
}

// Edit invokes the edit callback with the shift. A missing callback does nothing.
func (e *Event) Edit() {
	if e.props.OnEdit != nil {
		e.props.OnEdit(e.props.Shift)
	}
}

// Delete invokes the delete callback with the shift. A missing callback does nothing.
func (e *Event) Delete() {
	if e.props.OnDelete != nil {
		e.props.OnDelete(e.props.Shift)
	}
}

type cardData struct {
	Title        string
	TimeRange    string
	Color        severity.Color
	Score        string
	Spot         string
	Pinned       bool
	Version      int64
	Indictments  []indictment.Block
	EditAction   string
	DeleteAction string
}

// Render writes the card as an HTML fragment
func (e *Event) Render(w io.Writer) error {
	data := cardData{
		Title:       e.title,
		TimeRange:   e.TimeRange(),
		Color:       e.color,
		Indictments: e.indictments,
	}

	if shift := e.props.Shift; shift != nil {
		data.Score = shift.IndictmentScore.String()
		data.Spot = shift.SpotName()
		data.Pinned = shift.PinnedByUser
		data.Version = shift.Version
		if e.props.OnEdit != nil {
			data.EditAction = fmt.Sprintf("/shifts/%d/%d/edit", shift.TenantID, shift.ID)
		}
		if e.props.OnDelete != nil {
			data.DeleteAction = fmt.Sprintf("/shifts/%d/%d/delete", shift.TenantID, shift.ID)
		}
	}

	if err := eventTemplate.ExecuteTemplate(w, "event", data); err != nil {
		return fmt.Errorf("failed to render event %q: %w", e.title, err)
	}
	return nil
}

// RenderText writes the card for a terminal, optionally with ANSI colors
func (e *Event) RenderText(w io.Writer, colored bool) error {
	paint := func(color, text string) string {
		if !colored {
			return text
		}
		return color + text + colorReset
	}

	var b strings.Builder

	header := fmt.Sprintf("[%s] %s  %s", e.color.Class, e.title, e.TimeRange())
	fmt.Fprintln(&b, paint(ansiColors[e.color.Class], header))

	if shift := e.props.Shift; shift != nil {
		details := fmt.Sprintf("  %s, %s", shift.SpotName(), shift.IndictmentScore)
		if shift.PinnedByUser {
			details += ", pinned"
		}
		fmt.Fprintln(&b, paint(colorDim, details))
	}

	for _, block := range e.indictments {
		fmt.Fprintf(&b, "  %s (%s)\n", block.Title, block.Tier)
		for _, entry := range block.Entries {
			fmt.Fprintf(&b, "    - %s [%s]\n", entry.Description, entry.Score)
			for _, field := range entry.Fields {
				fmt.Fprintf(&b, "        %s: %s\n", field.Label, field.Value)
			}
		}
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write event %q: %w", e.title, err)
	}
	return nil
}
