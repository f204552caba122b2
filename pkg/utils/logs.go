// Package utils provides shared record types and the colored console output used by the CLI.
package utils

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
)

var colorGreen = color.New(color.FgGreen).Add(color.Bold).SprintFunc()
var colorRed = color.New(color.FgRed).Add(color.Bold).SprintFunc()
var colorYellow = color.New(color.FgYellow).Add(color.Bold).SprintFunc()
var colorBlue = color.New(color.FgBlue).Add(color.Bold).SprintFunc()
var colorCyan = color.New(color.FgCyan).SprintFunc()
var colorMagenta = color.New(color.FgMagenta).Add(color.Bold).SprintFunc()

/**************************************************************************************************
** BadgeKind selects the color used to print a timing badge.
**************************************************************************************************/
type BadgeKind int

const (
	BadgeNeutral BadgeKind = iota
	BadgeGolden
	BadgeBlue
	BadgeUnavailable
)

/**************************************************************************************************
** Badge renders a timing badge label in the color matching its kind. Colors are dropped
** automatically by fatih/color when the output is not a terminal.
**
** @param kind - Badge kind
** @param text - Label to render
** @return string - The colored label wrapped in brackets
**************************************************************************************************/
func Badge(kind BadgeKind, text string) string {
	label := `[` + text + `]`
	switch kind {
	case BadgeGolden:
		return colorYellow(label)
	case BadgeBlue:
		return colorBlue(label)
	case BadgeUnavailable:
		return colorRed(label)
	default:
		return colorCyan(label)
	}
}

/**************************************************************************************************
** Marker renders the gallery cursor in front of the currently selected line.
**
** @param selected - Whether the line is the committed selection
** @return string - A colored arrow for the selection, blank padding otherwise
**************************************************************************************************/
func Marker(selected bool) string {
	if selected {
		return colorGreen(`▶`)
	}
	return ` `
}

/**************************************************************************************************
** Heading formats a compass heading for display, or a dash when the heading is unknown or
** unusable for gallery ordering.
**
** @param heading - Heading in degrees, nil when absent
** @return string - Formatted heading
**************************************************************************************************/
func Heading(heading *float64) string {
	if !ValidHeading(heading) {
		return colorMagenta(`  -  `)
	}
	return fmt.Sprintf("%5.1f°", *heading)
}

// Pretty function disasemble a variable and display it's struct and values
func Pretty(w io.Writer, variable ...interface{}) {
	cfg := spew.ConfigState{Indent: "    ", DisablePointerAddresses: true, SortKeys: true}
	fmt.Fprintf(w, "%s", colorYellow("----------------------------------\n"))
	for _, each := range variable {
		cfg.Fdump(w, each)
	}
	fmt.Fprintf(w, "%s", colorYellow("----------------------------------\n"))
}
