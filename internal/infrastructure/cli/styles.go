package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/clauseguard/clausectl/pkg/domain/clause"
	"github.com/clauseguard/clausectl/pkg/domain/risk"
)

// Styles
var baseStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("240"))

var headerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#FAFAFA")).
	Background(lipgloss.Color("#7D56F4")).
	PaddingLeft(1).
	PaddingRight(1)

var (
	subtleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	okStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	errStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	emphasisStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
)

var clauseTypeColors = map[clause.Type]lipgloss.Color{
	clause.Indemnity:       lipgloss.Color("196"),
	clause.LiabilityCap:    lipgloss.Color("208"),
	clause.Termination:     lipgloss.Color("220"),
	clause.Confidentiality: lipgloss.Color("33"),
	clause.IPAssignment:    lipgloss.Color("135"),
	clause.GoverningLaw:    lipgloss.Color("42"),
	clause.DataProtection:  lipgloss.Color("45"),
	clause.ForceMajeure:    lipgloss.Color("205"),
	clause.Other:           lipgloss.Color("245"),
}

// typeBadge renders a clause type in its palette color.
func typeBadge(t clause.Type) string {
	c, ok := clauseTypeColors[t]
	if !ok {
		c = lipgloss.Color("245")
	}
	return lipgloss.NewStyle().Foreground(c).Render(t.Label())
}

// severityStyle maps severities to their display color.
func severityStyle(s risk.Severity) lipgloss.Style {
	switch s {
	case risk.SeverityHigh:
		return errStyle
	case risk.SeverityMedium:
		return warnStyle
	case risk.SeverityLow:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("33"))
	default:
		return subtleStyle
	}
}

// bandStyle renders with the band's color, the same single source of
// thresholds used for the gauge and the label.
func bandStyle(b risk.RiskBand) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(b.Color))
}
