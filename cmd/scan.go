/**************************************************************************************************
** Scan command implementation for the spotframe CLI application.
** Reads EXIF metadata from a directory and reports what each photo carries.
**************************************************************************************************/

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/majorfi/spotframe/pkg/photos"
	"github.com/majorfi/spotframe/pkg/utils"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

/**************************************************************************************************
** Main execution logic for the scan command.
**
** @param cmd - Cobra command instance
** @param args - Command line arguments
**************************************************************************************************/
func runScan(cmd *cobra.Command, args []string) {
	logger := loadEnv()

	if photoDir == "" {
		logger.Fatal("--dir is required")
	}

	result, err := photos.Scan(photoDir, parseExtensions(extensions), spotLocation, logger)
	if err != nil {
		logger.Fatalf("Error scanning %s: %v", photoDir, err)
	}

	writeScan(cmd.OutOrStdout(), result, logger)
}

/**************************************************************************************************
** parseExtensions normalizes a comma-separated extension list to lower case with a leading dot.
**
** @param value - Raw --ext value
** @return []string - Extensions, nil when value is empty
**************************************************************************************************/
func parseExtensions(value string) []string {
	parts := utils.SplitList(value)
	if len(parts) == 0 {
		return nil
	}
	for i, part := range parts {
		part = strings.ToLower(part)
		if !strings.HasPrefix(part, ".") {
			part = "." + part
		}
		parts[i] = part
	}
	return parts
}

/**************************************************************************************************
** writeScan prints one line per photo followed by the scan stats. At debug level the full
** records are dumped as well.
**
** @param w - Output writer
** @param result - Scan result
** @param logger - Logger instance
**************************************************************************************************/
func writeScan(w io.Writer, result photos.ScanResult, logger *logrus.Logger) {
	for _, photo := range result.Photos {
		captured := "unknown time"
		if photo.CaptureInstant != nil {
			captured = photo.CaptureInstant.Format(utils.TimeFormat)
		}
		gps := "no gps"
		if photo.Location != nil {
			gps = fmt.Sprintf("%.5f,%.5f", photo.Location.Latitude, photo.Location.Longitude)
		}
		fmt.Fprintf(w, "%-40s %-25s %-22s %s\n", photo.ID, captured, gps, utils.Heading(photo.Heading))
	}

	if logger.IsLevelEnabled(logrus.DebugLevel) {
		utils.Pretty(w, result.Photos)
	}

	s := result.Stats
	fmt.Fprintf(w, "\n%d photos: %d with time, %d with GPS, %d without GPS, %d with heading\n",
		s.Total, s.WithTime, s.WithGPS, s.WithoutGPS, s.WithHeading)
}
