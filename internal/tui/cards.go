package tui

import (
	"fmt"
	"strings"

	"github.com/NewsReader/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const (
	cardHeight = 6
	readMore   = "Read More →"
)

func truncateStr(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

func renderCard(st styles, a domain.Article, selected bool, width int) string {
	inner := width - 4
	if inner < 10 {
		inner = 10
	}

	title := st.cardTitle.Render(truncateStr(a.Title, inner))
	meta := st.cardSource.Render(a.SourceName()) + st.cardDate.Render(" · "+a.DisplayDate())
	body := st.cardBody.Render(truncateStr(a.DisplayDescription(), inner))
	link := st.cardLink.Render(truncateStr(readMore+" "+a.URL, inner))

	box := st.card
	if selected {
		box = st.cardSelected
	}
	return box.Width(width - 2).Render(strings.Join([]string{title, meta, body, link}, "\n"))
}

// renderCards shows the window of cards that keeps cursor visible.
func renderCards(st styles, articles []domain.Article, cursor, height, width int) string {
	if len(articles) == 0 {
		return ""
	}

	visible := height / cardHeight
	if visible < 1 {
		visible = 1
	}

	start := 0
	if cursor >= visible {
		start = cursor - visible + 1
	}
	end := start + visible
	if end > len(articles) {
		end = len(articles)
		start = max(0, end-visible)
	}

	cards := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		cards = append(cards, renderCard(st, articles[i], i == cursor, width))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

func renderTabs(st styles, labels []string, active int, width int) string {
	var row string
	for i, label := range labels {
		style := st.tabInactive
		if i == active {
			style = st.tabActive
		}
		part := style.Render(fmt.Sprintf("%d %s", i+1, label))
		candidate := part
		if row != "" {
			candidate = row + " " + part
		}
		if lipgloss.Width(candidate) > width && row != "" {
			break
		}
		row = candidate
	}
	return " " + row
}

func renderStatusBar(st styles, left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 0 {
		gap = 0
	}
	return st.statusBar.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}
