// SPDX-License-Identifier: MPL-2.0

package main

import "github.com/charmbracelet/lipgloss"

// Shared lipgloss styles for command output.
var (
	// TitleStyle renders top-level headings.
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	// SubtitleStyle renders section headings.
	SubtitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("8"))
	// SuccessStyle renders success markers.
	SuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	// WarningStyle renders warnings.
	WarningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	// ErrorStyle renders failure markers.
	ErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	// FaintStyle renders de-emphasized detail lines.
	FaintStyle = lipgloss.NewStyle().Faint(true)
)
