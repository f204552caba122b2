// Package photos builds photo records from image files and manifests.
package photos

import (
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/majorfi/spotframe/pkg/utils"
	"github.com/rwcarlsen/goexif/exif"
	"github.com/sirupsen/logrus"
)

/**************************************************************************************************
** Metadata is what a photo's EXIF block says about where, when and in which direction it was
** taken. Every field is optional.
**************************************************************************************************/
type Metadata struct {
	CapturedAt *time.Time
	Location   *utils.TGeoCoordinate
	Heading    *float64
}

/**************************************************************************************************
** ReadFile opens path and decodes its EXIF metadata. A file without EXIF, or with an unreadable
** block, is not an error: it simply yields empty metadata.
**
** @param path - Image file path
** @param loc - Timezone the EXIF wall-clock time is interpreted in
** @param logger - Logger instance
** @return Metadata - Decoded metadata
** @return error - Error if the file cannot be opened
**************************************************************************************************/
func ReadFile(path string, loc *time.Location, logger *logrus.Logger) (Metadata, error) {
	file, err := os.Open(path)
	if err != nil {
		return Metadata{}, fmt.Errorf("error opening %s: %w", path, err)
	}
	defer file.Close()

	meta, err := Decode(file, loc)
	if err != nil {
		logger.Debugf("No usable EXIF data in %s: %v", path, err)
		return Metadata{}, nil
	}
	return meta, nil
}

/**************************************************************************************************
** Decode reads EXIF metadata from r (JPEG, TIFF or raw EXIF).
**
** - CapturedAt comes from DateTimeOriginal, falling back to DateTime. EXIF stores a wall-clock
**   time without zone, so it is re-read in loc to stay independent of the host timezone.
** - Location comes from the GPS block with its N/S and E/W references applied, and is kept only
**   if it is a valid coordinate.
** - Heading comes from GPSImgDirection, normalized into [0, 360).
**
** @param r - Image or EXIF data
** @param loc - Timezone for the capture time, UTC when nil
** @return Metadata - Decoded metadata
** @return error - Error if no EXIF block can be decoded
**************************************************************************************************/
func Decode(r io.Reader, loc *time.Location) (Metadata, error) {
	if loc == nil {
		loc = time.UTC
	}

	x, err := exif.Decode(r)
	if err != nil {
		return Metadata{}, fmt.Errorf("error decoding exif: %w", err)
	}

	meta := Metadata{}

	if dt, err := x.DateTime(); err == nil {
		wall := time.Date(dt.Year(), dt.Month(), dt.Day(), dt.Hour(), dt.Minute(), dt.Second(), 0, loc)
		meta.CapturedAt = &wall
	}

	if lat, long, err := x.LatLong(); err == nil {
		coord := utils.TGeoCoordinate{Latitude: lat, Longitude: long}
		if coord.IsValid() {
			meta.Location = &coord
		}
	}

	meta.Heading = imgDirection(x)

	return meta, nil
}

// imgDirection reads GPSImgDirection as a rational, or nil when absent or unusable.
func imgDirection(x *exif.Exif) *float64 {
	tag, err := x.Get(exif.GPSImgDirection)
	if err != nil || tag == nil {
		return nil
	}
	num, den, err := tag.Rat2(0)
	if err != nil || den == 0 {
		return nil
	}
	heading := math.Mod(float64(num)/float64(den), 360)
	if heading < 0 {
		heading += 360
	}
	if math.IsNaN(heading) {
		return nil
	}
	return &heading
}

/**************************************************************************************************
** Record turns metadata into a photo record.
**
** @param id - Record ID
** @param source - Where the photo came from
** @return utils.TPhotoRecord - Photo record
**************************************************************************************************/
func (m Metadata) Record(id, source string) utils.TPhotoRecord {
	return utils.TPhotoRecord{
		ID:             id,
		CaptureInstant: m.CapturedAt,
		Heading:        m.Heading,
		Location:       m.Location,
		Source:         source,
	}
}
