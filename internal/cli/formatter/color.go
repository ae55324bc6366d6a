package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pmirek/fabops/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StageStatusLabel returns a colored stage status such as "● in progress".
func StageStatusLabel(status domain.StageStatus) string {
	label := strings.ReplaceAll(string(status), "_", " ")
	switch status {
	case domain.StageCompleted:
		return StyleGreen.Render("● " + label)
	case domain.StageInProgress:
		return StyleYellow.Render("● " + label)
	case domain.StagePending:
		return StyleDim.Render("● " + label)
	default:
		return StyleDim.Render("● unknown")
	}
}

// OrderStatusLabel returns a colored order status label.
func OrderStatusLabel(status domain.OrderStatus) string {
	label := strings.ReplaceAll(string(status), "_", " ")
	switch status {
	case domain.OrderOpen:
		return StyleBlue.Render(label)
	case domain.OrderInProduction:
		return StyleYellow.Render(label)
	case domain.OrderDelivered, domain.OrderClosed:
		return StyleGreen.Render(label)
	case domain.OrderCanceled:
		return StyleRed.Render(label)
	default:
		return StyleDim.Render(label)
	}
}

// RequisitionStatusLabel returns a colored requisition status label.
func RequisitionStatusLabel(status domain.RequisitionStatus) string {
	switch status {
	case domain.RequisitionReceived:
		return StyleGreen.Render(string(status))
	case domain.RequisitionPartial:
		return StyleYellow.Render(string(status))
	case domain.RequisitionOrdered:
		return StyleBlue.Render(string(status))
	case domain.RequisitionCanceled:
		return StyleRed.Render(string(status))
	default:
		return StyleDim.Render(string(status))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
