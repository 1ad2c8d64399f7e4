package tui

import (
	"strings"

	sharedtui "github.com/mistakeknot/taskdesk/pkg/tui"
)

func renderHeader(title, focus string) string {
	label := "TASKDESK | " + title + " | [" + focus + "]"
	return sharedtui.TitleStyle.Render(label)
}

func renderFooter(keys, status string) string {
	if strings.TrimSpace(status) == "" {
		status = sharedtui.HelpDescStyle.Render("ready")
	}
	return sharedtui.HelpDescStyle.Render("KEYS: "+keys+" | ") + status
}

func renderFrame(header, body, footer string) string {
	return strings.Join([]string{header, body, footer}, "\n")
}

func renderPanelTitle(title string, width int) string {
	line := strings.Repeat("─", maxInt(0, width))
	return sharedtui.TitleStyle.Render(title) + "\n" + sharedtui.LabelStyle.Render(line)
}

func padBodyToHeight(body string, height int) string {
	if height <= 0 {
		return body
	}
	lines := []string{""}
	if strings.TrimSpace(body) != "" {
		lines = strings.Split(body, "\n")
	}
	if len(lines) >= height {
		return body
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
