package utils

import (
	"math"
	"time"
)

/**************************************************************************************************
** TGeoCoordinate represents a geographic point in decimal degrees. A coordinate is only usable
** by the solar engine when IsValid reports true.
**************************************************************************************************/
type TGeoCoordinate struct {
	Latitude  float64 `json:"latitude"`  // Decimal degrees, [-90, 90]
	Longitude float64 `json:"longitude"` // Decimal degrees, [-180, 180]
}

/**************************************************************************************************
** IsValid reports whether both fields are finite and within their geographic range.
**
** @return bool - True if the coordinate can be fed into the solar engine
**************************************************************************************************/
func (c TGeoCoordinate) IsValid() bool {
	if math.IsNaN(c.Latitude) || math.IsInf(c.Latitude, 0) {
		return false
	}
	if math.IsNaN(c.Longitude) || math.IsInf(c.Longitude, 0) {
		return false
	}
	return c.Latitude >= -90 && c.Latitude <= 90 && c.Longitude >= -180 && c.Longitude <= 180
}

/**************************************************************************************************
** TPhotoRecord represents a photo as seen by the timing and ordering core. It is owned by the
** caller (file scan, manifest, remote library); the core only reads it.
**************************************************************************************************/
type TPhotoRecord struct {
	ID             string          `json:"id"`                   // Opaque identifier, used for equality only
	CaptureInstant *time.Time      `json:"capturedAt,omitempty"` // Capture time, nil when unknown
	Heading        *float64        `json:"heading,omitempty"`    // Compass bearing in degrees, nil when unknown
	Location       *TGeoCoordinate `json:"location,omitempty"`   // GPS fix embedded in the photo, if any
	Source         string          `json:"source,omitempty"`     // File path or remote origin
}

/**************************************************************************************************
** HasValidHeading reports whether the record carries a usable compass heading: present,
** finite and within [0, 360).
**
** @return bool - True if the heading can take part in gallery ordering
**************************************************************************************************/
func (p TPhotoRecord) HasValidHeading() bool {
	return ValidHeading(p.Heading)
}

// ValidHeading reports whether heading is present, finite and within [0, 360).
func ValidHeading(heading *float64) bool {
	if heading == nil {
		return false
	}
	h := *heading
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return false
	}
	return h >= 0 && h < 360
}

/**************************************************************************************************
** TManifest is the on-disk description of a spot and its photos. The format mirrors the
** metadata written by the photo collection scripts: one spot coordinate plus per-photo entries.
**************************************************************************************************/
type TManifest struct {
	Spot   *TGeoCoordinate  `json:"spot,omitempty"`
	Photos []TManifestPhoto `json:"photos"`
}

/**************************************************************************************************
** TManifestPhoto is a single photo entry of a TManifest.
**************************************************************************************************/
type TManifestPhoto struct {
	ID         string   `json:"id,omitempty"`
	CapturedAt string   `json:"capturedAt,omitempty"` // RFC3339
	Heading    *float64 `json:"heading,omitempty"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
	Source     string   `json:"source,omitempty"`
}

/**************************************************************************************************
** TImmichAsset represents the subset of an Immich asset (AssetResponseDto) needed to build a
** photo record. ExifInfo is only populated when the search request asks for it.
**************************************************************************************************/
type TImmichAsset struct {
	ID               string           `json:"id"`                 // Unique identifier
	OriginalFileName string           `json:"originalFileName"`   // Original file name
	OriginalPath     string           `json:"originalPath"`       // Original file path
	LocalDateTime    string           `json:"localDateTime"`      // Local capture time
	IsTrashed        bool             `json:"isTrashed"`          // Whether asset is trashed
	Type             string           `json:"type"`               // Asset type
	ExifInfo         *TImmichExifInfo `json:"exifInfo,omitempty"` // EXIF block, requested with withExif
}

/**************************************************************************************************
** TImmichExifInfo represents the EXIF block of an Immich asset (ExifResponseDto).
**************************************************************************************************/
type TImmichExifInfo struct {
	DateTimeOriginal string   `json:"dateTimeOriginal"`
	TimeZone         string   `json:"timeZone"`
	Latitude         *float64 `json:"latitude"`
	Longitude        *float64 `json:"longitude"`
}

/**************************************************************************************************
** TSearchResponse represents the response from Immich search API.
** Contains paginated results and next page information.
**************************************************************************************************/
type TSearchResponse struct {
	Assets struct {
		Items    []TImmichAsset `json:"items"`    // List of assets in current page
		NextPage string         `json:"nextPage"` // Next page token or empty if last page
	} `json:"assets"`
}

/**************************************************************************************************
** TUserResponse represents a user as returned by the Immich API (UserResponseDto).
** This structure matches the Immich API response format for /users/me.
**************************************************************************************************/
type TUserResponse struct {
	Email string `json:"email"`
	ID    string `json:"id"`
	Name  string `json:"name"`
}
