package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/sketchkit/pkg/core/anchor"
	"github.com/matzehuels/sketchkit/pkg/core/vec"
	"github.com/matzehuels/sketchkit/pkg/scene"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorBlue   = lipgloss.Color("75")  // Light blue - commands
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)

	styleCached   = lipgloss.NewStyle().Foreground(colorGreen)
	styleComputed = lipgloss.NewStyle().Foreground(colorGray)

	styleCommand = lipgloss.NewStyle().Foreground(colorBlue)
	styleHeader  = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	styleCell    = lipgloss.NewStyle().Padding(0, 1)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
	iconCached  = "cached"
	iconFresh   = "fresh"
)

// =============================================================================
// Status Output
// =============================================================================

func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + msg)
}

func printWarning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconWarning.Render(iconWarning) + " " + StyleWarning.Render(msg))
}

func printInfo(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconInfo.Render(iconInfo) + " " + msg)
}

// printDetail prints an indented dim line.
func printDetail(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println("  " + StyleDim.Render(msg))
}

// printFile prints a file output line.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

// printKeyValue prints a labeled value.
func printKeyValue(key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(12)
	fmt.Println(keyStyle.Render(key) + " " + StyleValue.Render(value))
}

// printStats prints scene statistics on a single line.
func printStats(shapeCount, arrowCount int, cached bool) {
	parts := []string{
		fmt.Sprintf("%d shapes", shapeCount),
		fmt.Sprintf("%d arrows", arrowCount),
	}

	status := iconFresh
	statusStyle := styleComputed
	if cached {
		status = iconCached
		statusStyle = styleCached
	}

	line := "  "
	for i, part := range parts {
		if i > 0 {
			line += StyleDim.Render(" · ")
		}
		line += StyleDim.Render(part)
	}
	line += StyleDim.Render(" · ") + statusStyle.Render(status)
	fmt.Println(line)
}

// printNextStep prints a suggested next command.
func printNextStep(description, cmd string) {
	fmt.Println(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}

// =============================================================================
// Tables
// =============================================================================

// formatScalar renders a coordinate without trailing zeros.
func formatScalar(v vec.Scalar) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// anchorRows lists the compass anchors of s in clockwise order. Coordinates
// are pixels; when unit is not px a converted pair is appended.
func anchorRows(s scene.ShapeResult, unit vec.Unit) [][]string {
	rows := make([][]string, 0, len(anchor.Compass))
	for _, a := range anchor.Compass {
		name := a.String()
		p, ok := s.Anchors[name]
		if !ok {
			continue
		}
		row := []string{name, formatScalar(p.X), formatScalar(p.Y)}
		if unit != vec.Pixel {
			scale := unit.Scale()
			row = append(row, formatScalar(p.X/scale), formatScalar(p.Y/scale))
		}
		rows = append(rows, row)
	}
	return rows
}

// anchorTable renders the anchors of s as a bordered table.
func anchorTable(s scene.ShapeResult, unit vec.Unit) string {
	headers := []string{"anchor", "x", "y"}
	if unit != vec.Pixel {
		headers = append(headers, "x ("+string(unit)+")", "y ("+string(unit)+")")
	}
	return newTable(headers, anchorRows(s, unit)).String()
}

// arrowRows lists one row per arrow.
func arrowRows(arrows []scene.ArrowResult) [][]string {
	rows := make([][]string, 0, len(arrows))
	for _, a := range arrows {
		rows = append(rows, []string{
			strconv.Itoa(a.Index),
			string(a.Route),
			formatScalar(a.Start.X) + "," + formatScalar(a.Start.Y),
			formatScalar(a.Tip.X) + "," + formatScalar(a.Tip.Y),
			a.Path,
		})
	}
	return rows
}

// arrowTable renders the routed arrows of a scene.
func arrowTable(arrows []scene.ArrowResult) string {
	return newTable([]string{"#", "route", "start", "tip", "path"}, arrowRows(arrows)).String()
}

func newTable(headers []string, rows [][]string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader.Padding(0, 1)
			}
			if col == 0 {
				return styleCell.Foreground(colorCyan)
			}
			return styleCell
		})
}
