package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const maxShift = 8

var (
	titleStyles = []lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
		lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	}
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(1, 3).
			Width(48)
	detailStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	priceStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	dotOn        = lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Render("●")
	dotOff       = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Render("○")
	counterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	arrowStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1)
)

// titleStyle picks a brightness bucket for the current fade opacity.
func titleStyle(opacity float64) lipgloss.Style {
	i := int(opacity * float64(len(titleStyles)))
	if i >= len(titleStyles) {
		i = len(titleStyles) - 1
	}
	if i < 0 {
		i = 0
	}
	return titleStyles[i]
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.deck.Len() == 0 {
		return mutedStyle.Render("no slides") + "\n\n" + m.help.View(m.keys) + "\n"
	}

	var b strings.Builder
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center,
		arrowStyle.Render("◀"),
		m.renderCard(),
		arrowStyle.Render("▶"),
	))
	b.WriteString("\n\n")
	b.WriteString(m.renderDots())
	b.WriteString("   ")
	b.WriteString(counterStyle.Render(formatCounter(m.number)))
	b.WriteString(mutedStyle.Render(fmt.Sprintf(" / %02d", m.deck.Len())))
	if m.ctrl.Paused() {
		b.WriteString(mutedStyle.Render("   paused"))
	}
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderCard() string {
	slide := m.deck.Slides[m.shown]
	words := slide.Headline()
	n := m.revealed
	if n > len(words) {
		n = len(words)
	}
	title := strings.Join(words[:n], " ")

	pad := m.offset
	if pad < 0 {
		pad = -pad
	}
	lines := []string{strings.Repeat(" ", pad) + titleStyle(m.opacity).Render(title)}

	if m.details.Expanded(m.shown) {
		if slide.Description != "" {
			lines = append(lines, "", detailStyle.Render(slide.Description))
		}
		if slide.Price != "" {
			lines = append(lines, "", priceStyle.Render(slide.Price))
		}
	} else {
		lines = append(lines, "", mutedStyle.Render("enter: more info"))
	}
	return cardStyle.Render(strings.Join(lines, "\n"))
}

func (m Model) renderDots() string {
	dots := make([]string, m.deck.Len())
	for i := range dots {
		if i == m.dot {
			dots[i] = dotOn
		} else {
			dots[i] = dotOff
		}
	}
	return strings.Join(dots, " ")
}

// formatCounter zero-pads the 1-based slide number to two digits.
func formatCounter(n int) string {
	return fmt.Sprintf("%02d", n)
}
