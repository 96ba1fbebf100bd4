// Package observability provides formatted terminal output for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SuyashSrivastava1/ReadAble/internal/profiles"
	"github.com/SuyashSrivastava1/ReadAble/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 72
	// localModel labels results produced without a model
	localModel = "local rules"
)

// Printer handles formatted output for human-readable CLI results
type Printer struct {
	out   io.Writer
	box   lipgloss.Style
	title lipgloss.Style
	label lipgloss.Style
}

// NewPrinter creates a new Printer that writes to the given writer.
// Colors are only emitted when out is a terminal.
func NewPrinter(out io.Writer) *Printer {
	r := lipgloss.NewRenderer(out)
	return &Printer{
		out: out,
		box: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4db6ac")).
			Padding(0, 1).
			Width(boxWidth),
		title: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#8BC34A")),
		label: r.NewStyle().Faint(true),
	}
}

// printBox prints a bordered box with a title line and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	body := p.title.Render(title)
	if content != "" {
		body += "\n\n" + content
	}
	fmt.Fprintln(p.out, p.box.Render(body))
}

func (p *Printer) field(sb *strings.Builder, name, value string) {
	sb.WriteString(p.label.Render(fmt.Sprintf("%-12s", name+":")))
	sb.WriteString(" ")
	sb.WriteString(value)
	sb.WriteString("\n")
}

// PrintSimplification outputs a simplified text with its summary and reading levels.
func (p *Printer) PrintSimplification(source string, resp *types.SimplifyResponse) {
	if resp == nil {
		return
	}

	var sb strings.Builder
	if source != "" {
		p.field(&sb, "Source", source)
	}
	p.field(&sb, "Profile", profiles.Get(resp.ReadingProfile).Label)
	p.field(&sb, "Before", resp.OriginalReadingLevel)
	p.field(&sb, "After", resp.SimplifiedReadingLevel)
	p.field(&sb, "Improvement", fmt.Sprintf("%.1f%%", resp.ImprovementPercent))
	model := localModel
	if resp.ModelUsed != nil {
		model = *resp.ModelUsed
	}
	p.field(&sb, "Model", model)

	sb.WriteString("\n")
	sb.WriteString(resp.Simplified)
	sb.WriteString("\n")

	if resp.Summary != "" {
		sb.WriteString("\n")
		sb.WriteString(p.title.Render("Summary"))
		sb.WriteString("\n")
		sb.WriteString(resp.Summary)
	}

	p.printBox("SIMPLIFIED", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintTranslation outputs translated text.
func (p *Printer) PrintTranslation(resp *types.TranslateResponse) {
	if resp == nil {
		return
	}
	p.printBox("TRANSLATION ("+strings.ToUpper(resp.TargetLanguage)+")", resp.Translated)
}

// PrintGrade outputs a readability report.
func (p *Printer) PrintGrade(report *types.GradeReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	if report.Source != "" {
		p.field(&sb, "Source", report.Source)
	}
	p.field(&sb, "Level", report.Level)
	p.field(&sb, "Words", fmt.Sprintf("%d", report.Words))
	p.field(&sb, "Sentences", fmt.Sprintf("%d", report.Sentences))
	p.field(&sb, "Paragraphs", fmt.Sprintf("%d", report.Paragraphs))
	p.field(&sb, "Avg words", fmt.Sprintf("%.1f per sentence", report.AverageWordsPerSentence))

	p.printBox("READABILITY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintProfiles outputs the reading profile catalog, one block per profile.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintProfiles(list []profiles.ReadingProfile) {
	var sb strings.Builder
	for i, profile := range list {
		sb.WriteString(p.title.Render(fmt.Sprintf("%s (%s)", profile.ID, profile.Label)))
		sb.WriteString("\n")
		p.field(&sb, "Tone", profile.Tone)
		p.field(&sb, "Sentences", fmt.Sprintf("%s, at most %d words", profile.SentenceLength, profile.MaxWordsPerSentence))
		p.field(&sb, "Vocabulary", profile.Vocabulary)
		p.field(&sb, "Layout", string(profile.StructureMode))
		if i < len(list)-1 {
			sb.WriteString("\n")
		}
	}
	p.printBox("READING PROFILES", strings.TrimSuffix(sb.String(), "\n"))
}
