package tui

import "github.com/charmbracelet/lipgloss"

// Base styles shared by the taskdesk views.
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorFgDim)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(0, 1)

	PanelFocusedStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorPrimary).
				Padding(0, 1)

	SelectedStyle = lipgloss.NewStyle().
			Background(ColorBgLight).
			Foreground(ColorFg).
			Bold(true)

	UnselectedStyle = lipgloss.NewStyle().
			Foreground(ColorFgDim)

	ErrorTextStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// Toast styles keyed by notification kind.
var (
	ToastSuccessStyle = lipgloss.NewStyle().
				Foreground(ColorSuccess).
				Bold(true)

	ToastErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	ToastInfoStyle = lipgloss.NewStyle().
			Foreground(ColorInfo)
)

// Status badge styles for the task table.
var (
	BadgePendingStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Background(ColorWarning).
				Foreground(ColorBg)

	BadgeInProgressStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Background(ColorPrimary).
				Foreground(ColorBg)

	BadgeDoneStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Background(ColorSuccess).
			Foreground(ColorBg)

	BadgeUnknownStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Background(ColorMuted).
				Foreground(ColorBg)
)
