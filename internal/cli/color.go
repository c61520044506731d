package cli

import "github.com/charmbracelet/lipgloss"

// ANSI 256 palette so the styles degrade well on basic terminals.
var (
	styleError     = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	styleWarning   = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	styleSuccess   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	styleInfo      = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	styleHeader    = lipgloss.NewStyle().Bold(true)
	styleDim       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	styleHighlight = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	styleFilePath  = lipgloss.NewStyle().Bold(true)
	styleDone      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	styleFailed    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// render applies a style unless plain mode is active.
func render(style lipgloss.Style, s string) string {
	if !EnableColors() {
		return s
	}
	return style.Render(s)
}

// Error styles the label on a failed command or rejected spec.
func Error(s string) string { return render(styleError, s) }

// Warning styles breaking-change and drift warnings.
func Warning(s string) string { return render(styleWarning, s) }

// Success styles completion messages.
func Success(s string) string { return render(styleSuccess, s) }

// Info styles section labels in help and diff output.
func Info(s string) string { return render(styleInfo, s) }

// Header styles table headers and script separators.
func Header(s string) string { return render(styleHeader, s) }

// Dim mutes secondary text such as hints and placeholders.
func Dim(s string) string { return render(styleDim, s) }

// Highlight emphasizes names inside surrounding text.
func Highlight(s string) string { return render(styleHighlight, s) }

// FilePath styles spec and output file paths.
func FilePath(s string) string { return render(styleFilePath, s) }

// Done styles the marker for a successfully generated file.
func Done(s string) string { return render(styleDone, s) }

// Failed styles the marker for a file that failed to generate.
func Failed(s string) string { return render(styleFailed, s) }
