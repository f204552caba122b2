package photos

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/majorfi/spotframe/pkg/utils"
)

/**************************************************************************************************
** LoadManifest reads a JSON manifest file. See ParseManifest.
**
** @param path - Manifest file path
** @param loc - Timezone for capture times without an offset
** @return []utils.TPhotoRecord - Photo records in manifest order
** @return *utils.TGeoCoordinate - Spot coordinate, nil when the manifest has none
** @return error - Error if the file cannot be read or parsed
**************************************************************************************************/
func LoadManifest(path string, loc *time.Location) ([]utils.TPhotoRecord, *utils.TGeoCoordinate, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("error opening manifest: %w", err)
	}
	defer file.Close()

	return ParseManifest(file, loc)
}

/**************************************************************************************************
** ParseManifest decodes a manifest and converts its entries to photo records.
**
** - Entries without an ID get a random UUID.
** - An empty capturedAt leaves the capture time unknown; an unparsable one is an error.
** - A photo location is kept only when both latitude and longitude are set and valid.
**
** @param r - Manifest JSON
** @param loc - Timezone for capture times without an offset, UTC when nil
** @return []utils.TPhotoRecord - Photo records in manifest order
** @return *utils.TGeoCoordinate - Spot coordinate, nil when the manifest has none
** @return error - Error if the manifest is malformed
**************************************************************************************************/
func ParseManifest(r io.Reader, loc *time.Location) ([]utils.TPhotoRecord, *utils.TGeoCoordinate, error) {
	if loc == nil {
		loc = time.UTC
	}

	var manifest utils.TManifest
	if err := json.NewDecoder(r).Decode(&manifest); err != nil {
		return nil, nil, fmt.Errorf("error decoding manifest: %w", err)
	}

	records := make([]utils.TPhotoRecord, 0, len(manifest.Photos))
	for i, entry := range manifest.Photos {
		record := utils.TPhotoRecord{
			ID:      entry.ID,
			Heading: entry.Heading,
			Source:  entry.Source,
		}
		if record.ID == "" {
			record.ID = uuid.NewString()
		}

		if entry.CapturedAt != "" {
			captured, err := utils.ParseLocalTime(entry.CapturedAt, loc)
			if err != nil {
				return nil, nil, fmt.Errorf("invalid capturedAt in photo %d: %w", i, err)
			}
			record.CaptureInstant = &captured
		}

		if entry.Latitude != nil && entry.Longitude != nil {
			coord := utils.TGeoCoordinate{Latitude: *entry.Latitude, Longitude: *entry.Longitude}
			if coord.IsValid() {
				record.Location = &coord
			}
		}

		records = append(records, record)
	}

	return records, manifest.Spot, nil
}
