package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arthur-debert/dashkit/pkg/errors"
	"github.com/arthur-debert/dashkit/pkg/logging"
	"github.com/arthur-debert/dashkit/pkg/relocate"
	"github.com/arthur-debert/dashkit/pkg/summary"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
)

// TextRenderer renders results for people.
type TextRenderer struct {
	w      io.Writer
	color  bool
	styles Styles
}

// NewTextRenderer creates a text renderer. Styling is dropped entirely when
// profile is termenv.Ascii.
func NewTextRenderer(w io.Writer, profile termenv.Profile) *TextRenderer {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(profile)

	color := profile != termenv.Ascii
	if color {
		pterm.EnableStyling()
	} else {
		pterm.DisableStyling()
	}

	logger := logging.GetLogger("output")
	logger.Debug().
		Bool("color", color).
		Msg("Created text renderer")

	return &TextRenderer{w: w, color: color, styles: NewStyles(r)}
}

// RenderResult implements Renderer.
func (t *TextRenderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *relocate.Result:
		return t.renderRelocation(v)
	case *summary.Summary:
		return t.renderSummary(v)
	case *Report:
		return t.renderReport(v)
	default:
		return t.println(fmt.Sprint(v))
	}
}

// RenderError implements Renderer.
func (t *TextRenderer) RenderError(err error) error {
	return t.println(t.styles.Error.Render("Error: " + userMessage(err)))
}

// RenderMessage implements Renderer.
func (t *TextRenderer) RenderMessage(msg string) error {
	return t.println(t.styles.Info.Render(msg))
}

func (t *TextRenderer) renderRelocation(r *relocate.Result) error {
	style := t.styles.Success
	if r.DryRun {
		style = t.styles.Warning
	}
	lines := []string{
		style.Render(r.Message()),
		t.styles.Muted.Render(r.Details()),
	}
	if len(r.Pending) > 0 {
		lines = append(lines, t.styles.Muted.Render("would save: "+strings.Join(r.Pending, ", ")))
	}
	return t.println(strings.Join(lines, "\n"))
}

func (t *TextRenderer) renderSummary(s *summary.Summary) error {
	var b strings.Builder

	b.WriteString(t.styles.Title.Render(s.Title) + "\n")
	b.WriteString(t.field("Rows", strconv.Itoa(s.RowCount)))
	if s.Variables != nil {
		b.WriteString(t.field("Variables", fmt.Sprintf("%d (%s)", s.Variables.Count, s.Variables.Names)))
	}
	if s.Time.From != "" || s.Time.To != "" {
		b.WriteString(t.field("Time", s.Time.From+" to "+s.Time.To))
	}
	if s.Time.Timezone != "" {
		b.WriteString(t.field("Timezone", s.Time.Timezone))
	}

	if len(s.Rows) > 0 {
		data := pterm.TableData{{"#", "Row", "Panels", "Panel titles"}}
		for i, row := range s.Rows {
			data = append(data, []string{
				strconv.Itoa(i + 1),
				row.Title,
				strconv.Itoa(row.PanelCount),
				row.PanelTitles,
			})
		}
		table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
		if err != nil {
			return errors.Wrap(err, errors.ErrInternal, "failed to render summary table")
		}
		b.WriteString("\n" + table + "\n")
	}

	b.WriteString("\n" + t.styles.Success.Render(s.Message()))
	return t.println(b.String())
}

func (t *TextRenderer) renderReport(r *Report) error {
	var b strings.Builder

	if r.Title != "" {
		b.WriteString(t.styles.Title.Render(r.Title) + "\n")
	}
	for _, f := range r.Fields {
		b.WriteString(t.field(f.Label, f.Value))
	}
	for _, item := range r.Items {
		b.WriteString("  " + item + "\n")
	}
	if len(r.Items) == 0 && r.Empty != "" {
		b.WriteString(t.styles.Muted.Render(r.Empty) + "\n")
	}

	return t.println(strings.TrimRight(b.String(), "\n"))
}

func (t *TextRenderer) field(label, value string) string {
	return t.styles.Label.Render(label+":") + " " + value + "\n"
}

func (t *TextRenderer) println(s string) error {
	_, err := fmt.Fprintln(t.w, s)
	return err
}

// userMessage strips error code prefixes for display; codes stay in the
// machine formats and the log.
func userMessage(err error) string {
	if de, ok := err.(*errors.DashkitError); ok {
		if de.Wrapped != nil {
			return de.Message + ": " + userMessage(de.Wrapped)
		}
		return de.Message
	}
	return err.Error()
}
