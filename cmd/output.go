package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))  // green
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))  // red
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14")) // cyan
	detailStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
)

func printSuccess(text string) {
	fmt.Println(successStyle.Render("✓ " + text))
}

func printError(text string) {
	fmt.Fprintln(os.Stderr, errorStyle.Render("✗ "+text))
}

func printInfo(text string) {
	fmt.Println(infoStyle.Render("ℹ " + text))
}

func printDetail(text string) {
	fmt.Println(detailStyle.Render("  " + text))
}
