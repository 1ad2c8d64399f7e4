package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// HelpBinding represents a single keybinding for the help overlay.
type HelpBinding struct {
	Key         string
	Description string
}

// HelpBindingFromKey converts a key.Binding to a HelpBinding.
func HelpBindingFromKey(k key.Binding) HelpBinding {
	h := k.Help()
	return HelpBinding{Key: h.Key, Description: h.Desc}
}

// HelpOverlay renders a help panel from CommonKeys plus any extra bindings.
type HelpOverlay struct {
	Visible bool
}

// NewHelpOverlay returns a HelpOverlay in its default (hidden) state.
func NewHelpOverlay() HelpOverlay {
	return HelpOverlay{}
}

// Toggle flips the overlay visibility.
func (h *HelpOverlay) Toggle() {
	h.Visible = !h.Visible
}

// commonBindings returns the standard bindings from CommonKeys as HelpBindings.
func commonBindings(keys CommonKeys) []HelpBinding {
	return []HelpBinding{
		HelpBindingFromKey(keys.Quit),
		HelpBindingFromKey(keys.Help),
		HelpBindingFromKey(keys.Back),
		HelpBindingFromKey(keys.NavUp),
		HelpBindingFromKey(keys.NavDown),
		HelpBindingFromKey(keys.Top),
		HelpBindingFromKey(keys.Bottom),
		HelpBindingFromKey(keys.Select),
		HelpBindingFromKey(keys.Search),
		HelpBindingFromKey(keys.New),
		HelpBindingFromKey(keys.Edit),
		HelpBindingFromKey(keys.Delete),
		HelpBindingFromKey(keys.Filter),
		HelpBindingFromKey(keys.Sort),
		HelpBindingFromKey(keys.Clear),
		HelpBindingFromKey(keys.Export),
	}
}

// Render produces the help overlay string. extras are appended after the
// common bindings under a "Tool" heading.
func (h HelpOverlay) Render(keys CommonKeys, extras []HelpBinding, width int) string {
	if !h.Visible {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		MarginBottom(1)

	b.WriteString(titleStyle.Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")

	writeBindings(&b, commonBindings(keys))

	if len(extras) > 0 {
		sectionStyle := lipgloss.NewStyle().
			Foreground(ColorFg).
			Bold(true).
			MarginTop(1)
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render("Tool"))
		b.WriteString("\n")
		writeBindings(&b, extras)
	}

	overlay := lipgloss.NewStyle().
		Background(ColorBg).
		Foreground(ColorFg).
		Padding(1, 3).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Width(min(50, width-4))

	return overlay.Render(b.String())
}

func writeBindings(b *strings.Builder, bindings []HelpBinding) {
	for _, bind := range bindings {
		b.WriteString(HelpKeyStyle.Render(bind.Key))
		b.WriteString("  ")
		b.WriteString(HelpDescStyle.Render(bind.Description))
		b.WriteString("\n")
	}
}
