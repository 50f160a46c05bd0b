package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gcbaptista/feedrank/internal/stats"
	"github.com/gcbaptista/feedrank/model"
)

const barWidth = 30

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86")).MarginTop(1)
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	hatefulStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	barStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
)

// renderFeed prints the feed tables, statistic and distribution to w.
func renderFeed(w io.Writer, result model.FeedResult, hateful []model.Category) {
	hatefulSet := stats.NewHatefulSet(hateful)

	fmt.Fprintln(w, titleStyle.Render("Input Sentences"))
	fmt.Fprintln(w, renderTable(result.Original, hatefulSet))

	if result.Statistics == nil {
		return
	}

	fmt.Fprintln(w, titleStyle.Render("Reranked Sentences"))
	fmt.Fprintln(w, renderTable(result.Reranked, hatefulSet))

	fmt.Fprintln(w, titleStyle.Render("Statistics"))
	fmt.Fprintf(w, "Percentage of hateful content in reranked sentences: %s\n",
		stats.FormatPercentage(result.Statistics.HatefulPercentage))

	fmt.Fprintln(w, titleStyle.Render("Categories"))
	fmt.Fprintln(w, renderDistribution(result.Frequencies))
}

func renderTable(posts []model.Post, hateful stats.HatefulSet) string {
	textWidth := lipgloss.Width("Post")
	categoryWidth := lipgloss.Width("Category")
	for _, p := range posts {
		textWidth = max(textWidth, lipgloss.Width(p.Text))
		categoryWidth = max(categoryWidth, lipgloss.Width(string(p.Category)))
	}

	idx := lipgloss.NewStyle().Width(3)
	text := lipgloss.NewStyle().Width(textWidth + 2)
	category := lipgloss.NewStyle().Width(categoryWidth)

	var b strings.Builder
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		headerStyle.Inherit(idx).Render("#"),
		headerStyle.Inherit(text).Render("Post"),
		headerStyle.Inherit(category).Render("Category")))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(strings.Repeat("-", 3+textWidth+2+categoryWidth)))

	for i, p := range posts {
		body := p.Text
		if body == "" {
			body = mutedStyle.Render("(empty)")
		}
		label := string(p.Category)
		if hateful.Contains(p.Category) {
			label = hatefulStyle.Render(label)
		}
		b.WriteString("\n")
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			idx.Render(fmt.Sprintf("%d", i+1)),
			text.Render(body),
			category.Render(label)))
	}
	return b.String()
}

func renderDistribution(freqs []model.CategoryCount) string {
	labelWidth := 0
	for _, f := range freqs {
		labelWidth = max(labelWidth, lipgloss.Width(string(f.Category)))
	}
	label := lipgloss.NewStyle().Width(labelWidth + 2)

	lines := make([]string, 0, len(freqs))
	for _, f := range freqs {
		n := int(f.Percentage / 100 * barWidth)
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			label.Render(string(f.Category)),
			barStyle.Render(strings.Repeat("█", n)),
			fmt.Sprintf(" %.1f%%", f.Percentage)))
	}
	return strings.Join(lines, "\n")
}
