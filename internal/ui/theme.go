package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles the styles and symbols every renderer pulls from.
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Error, Pending lipgloss.Style
	Selected, Disabled, Active, Help             lipgloss.Style

	Border lipgloss.Border
	Bullet string
	Lock   string
	Filled string
	Empty  string
}

var current = NewTheme("classic")

// NewTheme returns one of classic, neon or mono; unknown names get classic.
func NewTheme(name string) Theme {
	switch strings.ToLower(name) {
	case "neon":
		return Theme{
			Name:     "neon",
			Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
			Accent:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Pending:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
			Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")).Reverse(true),
			Disabled: lipgloss.NewStyle().Faint(true),
			Active:   lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("14")),
			Help:     lipgloss.NewStyle().Faint(true),
			Border:   lipgloss.RoundedBorder(),
			Bullet:   "◆", Lock: "◼", Filled: "█", Empty: "░",
		}
	case "mono":
		plain := lipgloss.NewStyle()
		return Theme{
			Name:  "mono",
			Title: plain.Bold(true), Muted: plain, Accent: plain,
			Success: plain, Error: plain, Pending: plain,
			Selected: plain.Reverse(true),
			Disabled: plain,
			Active:   plain.Underline(true),
			Help:     plain,
			Border:   lipgloss.NormalBorder(),
			Bullet:   "-", Lock: "[locked]", Filled: "#", Empty: ".",
		}
	default:
		return Theme{
			Name:     "classic",
			Title:    lipgloss.NewStyle().Bold(true),
			Muted:    lipgloss.NewStyle().Faint(true),
			Accent:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
			Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Pending:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
			Selected: lipgloss.NewStyle().Bold(true).Reverse(true),
			Disabled: lipgloss.NewStyle().Faint(true).Strikethrough(true),
			Active:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
			Help:     lipgloss.NewStyle().Faint(true),
			Border:   lipgloss.RoundedBorder(),
			Bullet:   "•", Lock: "🔒", Filled: "█", Empty: "░",
		}
	}
}

func SetTheme(name string) { current = NewTheme(name) }

func Current() Theme { return current }
