package tui

import (
	"path"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/symboard/internal/board"
	"github.com/jask/symboard/internal/layout"
	"github.com/jask/symboard/internal/utterance"
)

func (a *App) View() string {
	width := a.width
	if width <= 0 {
		width = 80
	}
	sections := []string{
		a.renderHeader(width),
		a.renderGrid(),
		a.renderStatusBar(width),
		a.renderFooter(width),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderHeader draws the utterance strip. Items appear in sequence order
// and the strip is cut at the terminal edge.
func (a *App) renderHeader(width int) string {
	items := a.ctrl.Utterances()
	var line string
	if len(items) == 0 {
		line = placeholder.Render("(nothing said yet)")
	} else {
		chips := make([]string, 0, len(items)+1)
		for _, it := range items {
			chips = append(chips, chipStyle.Render(a.chipText(it)))
		}
		chips = append(chips, clearHintStyle.Render("[x] clear"))
		line = strings.Join(chips, "")
	}
	line = ansi.Truncate(line, width, "…")
	return headerStyle.Width(width).Render(line)
}

func (a *App) chipText(it utterance.Item) string {
	label := ansi.Truncate(it.Label, a.labelWidth, "…")
	if !it.HasImage() {
		return label
	}
	return formatMarker(it.Format) + " " + label
}

func formatMarker(f board.ImageFormat) string {
	if f == board.FormatVector {
		return "◆"
	}
	return "▣"
}

func (a *App) renderGrid() string {
	if a.ctrl.Board() == nil {
		msg := "no board loaded"
		if strings.HasPrefix(a.status, loadingPrefix) {
			msg = a.status
		}
		return loadingStyle.Render(msg)
	}
	if a.layoutErr != nil {
		return errorStyle.Render("window too small")
	}
	// a box needs its border plus one line of content
	innerW := a.layout.CellWidth - 2
	innerH := a.layout.CellHeight - 2
	if innerW < 1 || innerH < 1 {
		return errorStyle.Render("window too small")
	}

	rows := make([]string, 0, len(a.layout.Rows))
	for _, row := range a.layout.Rows {
		boxes := make([]string, 0, len(row))
		for _, cell := range row {
			boxes = append(boxes, a.renderCell(cell, innerW, innerH))
		}
		rows = append(rows, lipgloss.NewStyle().
			MarginBottom(layout.TerminalMargins.Row).
			Render(lipgloss.JoinHorizontal(lipgloss.Top, boxes...)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (a *App) renderCell(cell layout.Cell, innerW, innerH int) string {
	outer := lipgloss.NewStyle().MarginRight(layout.TerminalMargins.Column)
	if cell.Empty() {
		return outer.Render(lipgloss.NewStyle().
			Width(innerW + 2).
			Height(innerH + 2).
			Render(""))
	}

	style := cellStyle
	if cell.Row == a.cursorRow && cell.Column == a.cursorCol {
		style = cellSelected
	}

	label := cell.Button.Label
	if cell.Button.LoadBoard != "" {
		label = cellNavigate.Render(ansi.Truncate("→ "+label, innerW, "…"))
	} else {
		label = ansi.Truncate(label, innerW, "…")
	}
	lines := []string{label}
	if cell.Image != nil && innerH > 1 {
		img := formatMarker(cell.Image.Format) + " " + imageName(cell.Image.URL)
		lines = append(lines, cellImageLine.Render(ansi.Truncate(img, innerW, "…")))
	}

	return outer.Render(style.
		Width(innerW).
		Height(innerH).
		MaxHeight(innerH + 2).
		Render(strings.Join(lines, "\n")))
}

func imageName(url string) string {
	if i := strings.IndexAny(url, "?#"); i >= 0 {
		url = url[:i]
	}
	return path.Base(url)
}

func (a *App) renderStatusBar(width int) string {
	msg := strings.TrimSpace(a.status)
	if msg == "" {
		msg = "ready"
	}
	if b := a.ctrl.Current(); b != "" {
		msg = "[" + b + "] " + msg
	}
	if a.statusErr {
		return renderBar(errorStyle, width, msg)
	}
	if strings.HasPrefix(a.status, "said ") {
		msg = spokenStyle.Render(msg)
	}
	return renderBar(statusBarStyle, width, msg)
}

func (a *App) renderFooter(width int) string {
	bindings := a.keys.ShortHelp()
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		if h.Key == "" && h.Desc == "" {
			continue
		}
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return renderBar(footerStyle, width, strings.Join(parts, "  "))
}

func renderBar(style lipgloss.Style, width int, text string) string {
	line := strings.ReplaceAll(text, "\n", " ")
	// padding takes two columns
	line = ansi.Truncate(line, max(0, width-2), "")
	return style.Width(width).MaxWidth(width).Render(line)
}
