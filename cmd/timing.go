/**************************************************************************************************
** Timing command implementation for the spotframe CLI application.
** Prints the solar boundaries of a day and the badge of one instant.
**************************************************************************************************/

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/majorfi/spotframe/pkg/spot"
	"github.com/majorfi/spotframe/pkg/utils"
	"github.com/spf13/cobra"
)

/**************************************************************************************************
** Main execution logic for the timing command.
**
** @param cmd - Cobra command instance
** @param args - Command line arguments
**************************************************************************************************/
func runTiming(cmd *cobra.Command, args []string) {
	logger := loadEnv()

	if captureAt == "" {
		logger.Fatal("--at is required")
	}
	if spotCoordinate == nil {
		logger.Fatal("A spot latitude is required (--lat or SPOT_LATITUDE)")
	}
	instant, err := utils.ParseLocalTime(captureAt, spotLocation)
	if err != nil {
		logger.Fatalf("Invalid --at value '%s': %v", captureAt, err)
	}

	viewer := spot.NewViewer(nil, *spotCoordinate, spotLocation, newSolarCache(logger), logger)
	writeTiming(cmd.OutOrStdout(), viewer, instant)
}

/**************************************************************************************************
** writeTiming prints the day's boundaries and the timing badge of instant.
**
** @param w - Output writer
** @param viewer - Viewer bound to the spot
** @param instant - Instant to classify
**************************************************************************************************/
func writeTiming(w io.Writer, viewer *spot.Viewer, instant time.Time) {
	badge := viewer.BadgeFor(utils.TPhotoRecord{ID: "instant", CaptureInstant: &instant})
	fmt.Fprintf(w, "%s\n", instant.Format(utils.TimeFormat))
	if !badge.Available {
		fmt.Fprintf(w, "%s\n", utils.Badge(badge.Kind, badge.Label))
		return
	}

	s := badge.Snapshot
	fmt.Fprintf(w, "  Sunrise      %s\n", clock(s.Sunrise))
	fmt.Fprintf(w, "  Sunset       %s\n", clock(s.Sunset))
	fmt.Fprintf(w, "  Golden hour  %s - %s\n", clock(s.GoldenHourStart), clock(s.GoldenHourEnd))
	fmt.Fprintf(w, "  Blue hour    %s - %s\n", clock(s.BlueHourStart), clock(s.BlueHourEnd))
	fmt.Fprintf(w, "  Closest      %s (%+d min)\n", s.ClosestEvent, s.RelativeMinutes)
	fmt.Fprintf(w, "%s\n", utils.Badge(badge.Kind, badge.Label))
}

func clock(t time.Time) string {
	return t.Format("15:04")
}
