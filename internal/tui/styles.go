package tui

import (
	"github.com/NewsReader/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type palette struct {
	primary   lipgloss.Color
	text      lipgloss.Color
	dim       lipgloss.Color
	accent    lipgloss.Color
	border    lipgloss.Color
	tabBg     lipgloss.Color
	statusBg  lipgloss.Color
	errorFg   lipgloss.Color
	errorBg   lipgloss.Color
	sourceTag lipgloss.Color
}

var (
	lightPalette = palette{
		primary:   "#4F46E5",
		text:      "#1F2937",
		dim:       "#6B7280",
		accent:    "#DB2777",
		border:    "#E5E7EB",
		tabBg:     "#EEEEEE",
		statusBg:  "#E8E8E8",
		errorFg:   "#B91C1C",
		errorBg:   "#FEE2E2",
		sourceTag: "#047857",
	}
	darkPalette = palette{
		primary:   "#818CF8",
		text:      "#E5E7EB",
		dim:       "#9CA3AF",
		accent:    "#F472B6",
		border:    "#374151",
		tabBg:     "#2A2A3E",
		statusBg:  "#16213E",
		errorFg:   "#FCA5A5",
		errorBg:   "#7F1D1D",
		sourceTag: "#34D399",
	}
)

type styles struct {
	header       lipgloss.Style
	themeBadge   lipgloss.Style
	searchPrompt lipgloss.Style
	searchHint   lipgloss.Style
	tabActive    lipgloss.Style
	tabInactive  lipgloss.Style
	heading      lipgloss.Style
	spinner      lipgloss.Style
	loading      lipgloss.Style
	errorBanner  lipgloss.Style
	empty        lipgloss.Style
	card         lipgloss.Style
	cardSelected lipgloss.Style
	cardTitle    lipgloss.Style
	cardSource   lipgloss.Style
	cardDate     lipgloss.Style
	cardBody     lipgloss.Style
	cardLink     lipgloss.Style
	footer       lipgloss.Style
	statusBar    lipgloss.Style
}

func newStyles(theme domain.Theme) styles {
	p := lightPalette
	if theme.IsDark() {
		p = darkPalette
	}

	return styles{
		header: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.primary).
			PaddingLeft(1),
		themeBadge: lipgloss.NewStyle().
			Foreground(p.dim),
		searchPrompt: lipgloss.NewStyle().
			Foreground(p.accent).
			Bold(true),
		searchHint: lipgloss.NewStyle().
			Foreground(p.dim).
			PaddingLeft(1),
		tabActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(p.primary).
			Padding(0, 1).
			Bold(true),
		tabInactive: lipgloss.NewStyle().
			Foreground(p.text).
			Background(p.tabBg).
			Padding(0, 1),
		heading: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.text).
			PaddingLeft(1).
			MarginTop(1),
		spinner: lipgloss.NewStyle().
			Foreground(p.accent),
		loading: lipgloss.NewStyle().
			Foreground(p.primary).
			PaddingLeft(1),
		errorBanner: lipgloss.NewStyle().
			Foreground(p.errorFg).
			Background(p.errorBg).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.errorFg).
			Padding(0, 1),
		empty: lipgloss.NewStyle().
			Foreground(p.dim).
			PaddingLeft(1),
		card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.border).
			Padding(0, 1),
		cardSelected: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.primary).
			Padding(0, 1),
		cardTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.primary),
		cardSource: lipgloss.NewStyle().
			Foreground(p.sourceTag).
			Bold(true),
		cardDate: lipgloss.NewStyle().
			Foreground(p.dim),
		cardBody: lipgloss.NewStyle().
			Foreground(p.text),
		cardLink: lipgloss.NewStyle().
			Foreground(p.dim).
			Italic(true),
		footer: lipgloss.NewStyle().
			Foreground(p.dim).
			PaddingLeft(1),
		statusBar: lipgloss.NewStyle().
			Background(p.statusBg).
			Foreground(p.text).
			PaddingLeft(1).
			PaddingRight(1),
	}
}
