/**************************************************************************************************
** Main entry point for the spotframe CLI application. This tool shows when photos of a spot
** were taken relative to the day's golden and blue hours, and browses them in compass order.
**************************************************************************************************/

package main

import (
	"os"

	"github.com/spf13/cobra"
)

// Command-specific flags
var captureAt string
var photoDir string
var manifestPath string
var useImmich bool
var script string
var windowRadius int
var extensions string

/**************************************************************************************************
** CreateRootCommand builds the command tree with all flags and run functions.
**
** @return *cobra.Command - Root command
**************************************************************************************************/
func CreateRootCommand() *cobra.Command {
	var rootCmd = &cobra.Command{
		Use:   "spotframe",
		Short: "Spotframe CLI",
		Long:  "Golden hour timing and compass-ordered galleries for photo spots.",
	}

	bindFlags(rootCmd)

	timingCmd, galleryCmd, scanCmd := newSubcommands()
	timingCmd.Run = runTiming
	galleryCmd.Run = runGallery
	scanCmd.Run = runScan
	rootCmd.AddCommand(timingCmd, galleryCmd, scanCmd)

	return rootCmd
}

/**************************************************************************************************
** bindFlags registers the persistent flags shared by every command. Each one falls back to the
** environment variable named in its usage.
**
** @param rootCmd - Root command
**************************************************************************************************/
func bindFlags(rootCmd *cobra.Command) {
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "Immich API key (or set API_KEY env var)")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Immich API URL (or set API_URL env var)")
	rootCmd.PersistentFlags().StringVar(&albumID, "album-id", "", "Immich album to read (or set IMMICH_ALBUM_ID env var)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (or set LOG_LEVEL env var)")
	rootCmd.PersistentFlags().StringVar(&spotLatitude, "lat", "", "Spot latitude (or set SPOT_LATITUDE env var)")
	rootCmd.PersistentFlags().StringVar(&spotLongitude, "lon", "", "Spot longitude (or set SPOT_LONGITUDE env var)")
	rootCmd.PersistentFlags().StringVar(&spotTimezone, "tz", "", "Spot timezone, e.g. Europe/Madrid (or set SPOT_TIMEZONE env var)")
	rootCmd.PersistentFlags().IntVar(&solarCacheSize, "cache-size", 0, "Solar snapshot cache size (or set SOLAR_CACHE_SIZE env var)")
}

/**************************************************************************************************
** newSubcommands creates the subcommands and their local flags, without run functions.
**
** @return timing, gallery, scan - Subcommands
**************************************************************************************************/
func newSubcommands() (*cobra.Command, *cobra.Command, *cobra.Command) {
	var timingCmd = &cobra.Command{
		Use:   "timing",
		Short: "Show the solar timing of an instant",
		Long:  "Compute sunrise, sunset, golden hour and blue hour for the spot's latitude and classify an instant against them.",
	}
	timingCmd.Flags().StringVar(&captureAt, "at", "", "Instant to classify, e.g. 2023-03-21T17:15 (required)")

	var galleryCmd = &cobra.Command{
		Use:   "gallery",
		Short: "Browse a spot's photos in compass order",
		Long:  "Load photos from a directory, a manifest or Immich, order them by heading and replay a carousel script.",
	}
	galleryCmd.Flags().StringVar(&photoDir, "dir", "", "Directory of photos to scan")
	galleryCmd.Flags().StringVar(&manifestPath, "manifest", "", "JSON manifest describing the spot and its photos")
	galleryCmd.Flags().BoolVar(&useImmich, "immich", false, "Read photos from Immich")
	galleryCmd.Flags().StringVar(&script, "script", "", "Carousel transitions, e.g. next,prev,jump=3,sync=1,drag=-2")
	galleryCmd.Flags().IntVar(&windowRadius, "window", 2, "Number of neighbours shown on each side of the selection")

	var scanCmd = &cobra.Command{
		Use:   "scan",
		Short: "Scan a directory for photo metadata",
		Long:  "Read capture time, GPS position and heading from the EXIF data of every photo in a directory.",
	}
	scanCmd.Flags().StringVar(&photoDir, "dir", "", "Directory of photos to scan (required)")
	scanCmd.Flags().StringVar(&extensions, "ext", "", "Comma-separated file extensions, default .jpg,.jpeg,.tif,.tiff")

	return timingCmd, galleryCmd, scanCmd
}

/**************************************************************************************************
** Application entry point. Handles command execution and error reporting.
**************************************************************************************************/
func main() {
	if err := CreateRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
