/**************************************************************************************************
** Gallery command implementation for the spotframe CLI application.
** Loads a spot's photos from one source, orders them by heading and replays carousel actions.
**************************************************************************************************/

package main

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/majorfi/spotframe/pkg/immich"
	"github.com/majorfi/spotframe/pkg/photos"
	"github.com/majorfi/spotframe/pkg/spot"
	"github.com/majorfi/spotframe/pkg/utils"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const immichPageSize = 1000

/**************************************************************************************************
** Main execution logic for the gallery command.
**
** @param cmd - Cobra command instance
** @param args - Command line arguments
**************************************************************************************************/
func runGallery(cmd *cobra.Command, args []string) {
	logger := loadEnv()

	actions, err := spot.ParseScript(script)
	if err != nil {
		logger.Fatalf("Invalid --script: %v", err)
	}

	records, sourceSpot, err := loadGalleryPhotos(logger)
	if err != nil {
		logger.Fatalf("Error loading photos: %v", err)
	}

	coordinate := resolveSpot(spotCoordinate, sourceSpot, records)
	if coordinate == nil {
		logger.Warn("No spot coordinate available, timing badges will be unavailable")
		coordinate = &utils.TGeoCoordinate{Latitude: math.NaN(), Longitude: math.NaN()}
	}

	viewer := spot.NewViewer(records, *coordinate, spotLocation, newSolarCache(logger), logger)
	writeGallery(cmd.OutOrStdout(), viewer, actions, windowRadius)
}

/**************************************************************************************************
** loadGalleryPhotos reads the photos from the single source selected by the flags.
**
** @param logger - Logger instance
** @return []utils.TPhotoRecord - Photo records in source order
** @return *utils.TGeoCoordinate - Spot coordinate declared by the source, if any
** @return error - Error if no or several sources are selected, or the source fails
**************************************************************************************************/
func loadGalleryPhotos(logger *logrus.Logger) ([]utils.TPhotoRecord, *utils.TGeoCoordinate, error) {
	selected := 0
	for _, set := range []bool{photoDir != "", manifestPath != "", useImmich} {
		if set {
			selected++
		}
	}
	if selected != 1 {
		return nil, nil, errors.New("exactly one of --dir, --manifest or --immich is required")
	}

	switch {
	case photoDir != "":
		result, err := photos.Scan(photoDir, nil, spotLocation, logger)
		if err != nil {
			return nil, nil, err
		}
		return result.Photos, nil, nil
	case manifestPath != "":
		return photos.LoadManifest(manifestPath, spotLocation)
	default:
		client := immich.NewClient(apiURL, apiKey, logger)
		if client == nil {
			return nil, nil, errors.New("API_KEY and a valid API_URL are required to read from Immich")
		}
		user, err := client.GetCurrentUser()
		if err != nil {
			return nil, nil, err
		}
		logger.Infof("Reading photos of %s (%s)", user.Name, user.Email)
		records, err := client.FetchPhotos(immichPageSize, albumID, spotLocation)
		return records, nil, err
	}
}

/**************************************************************************************************
** resolveSpot picks the spot coordinate: the configured one first, then the one declared by the
** source, then the first valid GPS position among the photos.
**
** @param configured - Coordinate from flags or environment
** @param fromSource - Coordinate declared by the photo source
** @param records - Photo records
** @return *utils.TGeoCoordinate - Spot coordinate, nil when none is known
**************************************************************************************************/
func resolveSpot(configured, fromSource *utils.TGeoCoordinate, records []utils.TPhotoRecord) *utils.TGeoCoordinate {
	if configured != nil {
		return configured
	}
	if fromSource != nil && fromSource.IsValid() {
		return fromSource
	}
	for _, record := range records {
		if record.Location != nil && record.Location.IsValid() {
			return record.Location
		}
	}
	return nil
}

/**************************************************************************************************
** writeGallery prints the ordered gallery, then replays actions and prints the visible window
** after each one.
**
** @param w - Output writer
** @param viewer - Viewer over the ordered photos
** @param actions - Carousel actions to replay
** @param radius - Number of neighbours shown on each side of the selection
**************************************************************************************************/
func writeGallery(w io.Writer, viewer *spot.Viewer, actions []spot.Action, radius int) {
	ordered := viewer.Gallery().Photos()
	committed, _ := viewer.Gallery().Index().Committed()

	fmt.Fprintf(w, "Gallery (%d photos, %s)\n", len(ordered), viewer.Gallery().Index().State())
	for i, photo := range ordered {
		writePhotoLine(w, viewer, i, photo, i == committed)
	}

	for _, action := range actions {
		committed, ok := viewer.Apply(action)
		if !ok {
			fmt.Fprintf(w, "\n%s: nothing to select\n", action)
			continue
		}
		fmt.Fprintf(w, "\n%s -> %d\n", action, committed)
		for _, idx := range viewer.Gallery().Index().Window(radius) {
			writePhotoLine(w, viewer, idx, ordered[idx], idx == committed)
		}
	}
}

func writePhotoLine(w io.Writer, viewer *spot.Viewer, idx int, photo utils.TPhotoRecord, selected bool) {
	badge := viewer.BadgeFor(photo)
	fmt.Fprintf(w, "%s %3d  %s  %-32s %s\n", utils.Marker(selected), idx, utils.Heading(photo.Heading), photo.ID, utils.Badge(badge.Kind, badge.Label))
}
