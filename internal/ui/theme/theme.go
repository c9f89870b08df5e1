package theme

import "github.com/charmbracelet/lipgloss"

var (
	BaseBg       = lipgloss.Color("#11111b")
	SurfaceBg    = lipgloss.Color("#313244")
	Accent       = lipgloss.Color("#cba6f7")
	Accent2      = lipgloss.Color("#89b4fa")
	Teal         = lipgloss.Color("#94e2d5")
	SuccessColor = lipgloss.Color("#a6e3a1")
	ErrorColor   = lipgloss.Color("#f38ba8")
	TextColor    = lipgloss.Color("#cdd6f4")
	SubTextColor = lipgloss.Color("#a6adc8")
	DimColor     = lipgloss.Color("#6c7086")
	OverlayColor = lipgloss.Color("#45475a")
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)
	SubTextStyle = lipgloss.NewStyle().
			Foreground(SubTextColor)
	DimStyle = lipgloss.NewStyle().
			Foreground(DimColor)
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)
	MarkerStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)
	StatusStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true)
)

var (
	TileBorder       = lipgloss.RoundedBorder()
	TileNameStyle    = lipgloss.NewStyle().Foreground(TextColor)
	TileNameSelected = lipgloss.NewStyle().Foreground(SuccessColor).Bold(true)
	TileMetaStyle    = lipgloss.NewStyle().Foreground(DimColor)
)
