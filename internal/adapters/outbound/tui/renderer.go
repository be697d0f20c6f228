package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pagelens/pagelens/internal/domain"
)

// ── Claude-inspired warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#8B949E") // soft blue-gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	gradeColors = map[string]lipgloss.Color{
		"A": success,
		"B": lipgloss.Color("#A3E635"), // lime
		"C": warning,
		"D": lipgloss.Color("#FB923C"), // orange
		"F": danger,
	}

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	highTagStyle  = lipgloss.NewStyle().Foreground(danger).Bold(true)
	medTagStyle   = lipgloss.NewStyle().Foreground(warning).Bold(true)
	lowTagStyle   = lipgloss.NewStyle().Foreground(info)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	catNameStyle  = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderReport renders the audit report for the terminal.
func RenderReport(r *domain.Report) string {
	var b strings.Builder

	// ── Header ──
	title := headerStyle.Render("pagelens")
	subtitle := dimStyle.Render(r.URL)
	scoreStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(gradeColor(r.Grade)).
		Render(fmt.Sprintf("%d / 100", r.Score))
	gradeStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(gradeColor(r.Grade)).
		Render(r.Grade)

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + scoreStyled + "  " + gradeStyled))
	b.WriteString("\n\n")

	// ── Categories ──
	for _, name := range domain.CategoryNames() {
		cat, ok := r.Categories[name]
		if !ok {
			continue
		}
		renderCategory(&b, name, cat)
	}

	b.WriteString("\n")
	b.WriteString("  " + separatorLine)
	b.WriteString("\n\n")

	renderIssues(&b, r)
	b.WriteString("\n")
	return b.String()
}

func renderCategory(b *strings.Builder, name string, cat domain.CategoryScore) {
	color := scoreColor(cat.Score)
	scoreText := lipgloss.NewStyle().Bold(true).Foreground(color).Render(fmt.Sprintf("%3d", cat.Score))
	bar := coloredBar(cat.Score, 20)
	weight := dimStyle.Render(fmt.Sprintf("%d%%", domain.CategoryWeights[name]))
	grade := lipgloss.NewStyle().Bold(true).Foreground(gradeColor(cat.Grade)).Render(cat.Grade)

	fmt.Fprintf(b, "  %s %s  %s %s %s\n", catNameStyle.Render(padRight(name, 16)), bar, scoreText, grade, weight)

	if len(cat.Degraded) > 0 {
		fmt.Fprintf(b, "    %s\n", faintStyle.Render(
			fmt.Sprintf("no data: %s", strings.Join(cat.Degraded, ", "))))
	}
}

func renderIssues(b *strings.Builder, r *domain.Report) {
	var issues []domain.Issue
	for _, name := range domain.CategoryNames() {
		issues = append(issues, r.Categories[name].Issues...)
	}

	if len(issues) == 0 {
		b.WriteString("  " + passStyle.Render("No issues found.") + "\n")
		return
	}

	high, med, low := countSeverities(issues)
	b.WriteString("  " + titleStyle.Render("Issues") + "  ")
	if high > 0 {
		b.WriteString(highTagStyle.Render(fmt.Sprintf("%d high", high)) + "  ")
	}
	if med > 0 {
		b.WriteString(medTagStyle.Render(fmt.Sprintf("%d medium", med)) + "  ")
	}
	if low > 0 {
		b.WriteString(lowTagStyle.Render(fmt.Sprintf("%d low", low)))
	}
	b.WriteString("\n\n")

	for _, issue := range issues {
		fmt.Fprintf(b, "    %s %s\n", severityTag(issue.Severity), dimStyle.Render(issue.Message))
	}
}

func severityTag(severity string) string {
	switch severity {
	case domain.SeverityHigh:
		return highTagStyle.Render("high")
	case domain.SeverityMedium:
		return medTagStyle.Render("med ")
	default:
		return lowTagStyle.Render("low ")
	}
}

func countSeverities(issues []domain.Issue) (high, med, low int) {
	for _, issue := range issues {
		switch issue.Severity {
		case domain.SeverityHigh:
			high++
		case domain.SeverityMedium:
			med++
		default:
			low++
		}
	}
	return high, med, low
}

func scoreColor(score int) lipgloss.Color {
	switch {
	case score >= 80:
		return success
	case score >= 50:
		return warning
	default:
		return danger
	}
}

func gradeColor(grade string) lipgloss.Color {
	if c, ok := gradeColors[grade]; ok {
		return c
	}
	return danger
}

func coloredBar(score, width int) string {
	filled := score * width / 100
	if filled > width {
		filled = width
	}
	color := scoreColor(score)
	bar := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled))
	rest := faintStyle.Render(strings.Repeat("░", width-filled))
	return bar + rest
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
