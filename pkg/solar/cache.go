package solar

import (
	"fmt"
	"math"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sirupsen/logrus"
)

// cacheKey identifies one calendar day at one latitude in one timezone. The latitude is keyed by
// its exact bits so a cached result never differs from a fresh computation.
type cacheKey struct {
	year     int
	day      int
	location *time.Location
	latitude uint64
}

/**************************************************************************************************
** Cache memoizes day boundaries for hosts that compute many snapshots for the same spot, e.g.
** every badge of a gallery. Only the boundaries are cached; the closest event is recomputed per
** instant, so results are identical to ComputeSnapshot. Safe for concurrent use.
**************************************************************************************************/
type Cache struct {
	entries *lru.Cache[cacheKey, Boundaries]
	logger  *logrus.Logger
}

/**************************************************************************************************
** NewCache creates a snapshot cache holding up to size day/latitude entries.
**
** @param size - Maximum number of cached entries, must be positive
** @param logger - Logger for cache diagnostics, may be nil
** @return *Cache - Initialized cache
** @return error - Error if size is not positive
**************************************************************************************************/
func NewCache(size int, logger *logrus.Logger) (*Cache, error) {
	entries, err := lru.New[cacheKey, Boundaries](size)
	if err != nil {
		return nil, fmt.Errorf("error creating solar cache: %w", err)
	}
	if logger == nil {
		logger = logrus.New()
		logger.SetLevel(logrus.WarnLevel)
	}
	return &Cache{entries: entries, logger: logger}, nil
}

/**************************************************************************************************
** Snapshot returns the same value as ComputeSnapshot(captureInstant, latitude), reusing the
** boundaries of a previous call for the same day, timezone and latitude.
**
** @param captureInstant - Capture time, in the timezone the date is displayed in
** @param latitude - Latitude of the spot in decimal degrees
** @return Snapshot - Boundaries plus closest event
** @return error - ErrTimingUnavailable for non-finite intermediate values
**************************************************************************************************/
func (c *Cache) Snapshot(captureInstant time.Time, latitude float64) (Snapshot, error) {
	key := cacheKey{
		year:     captureInstant.Year(),
		day:      captureInstant.YearDay(),
		location: captureInstant.Location(),
		latitude: math.Float64bits(latitude),
	}

	if boundaries, ok := c.entries.Get(key); ok {
		return boundaries.Snapshot(captureInstant), nil
	}

	boundaries, err := ComputeBoundaries(captureInstant, latitude)
	if err != nil {
		return Snapshot{}, err
	}
	if c.entries.Add(key, boundaries) {
		c.logger.Debugf("Solar cache full, evicted oldest entry")
	}
	c.logger.WithFields(logrus.Fields{
		"day":      captureInstant.Format("2006-01-02"),
		"latitude": latitude,
	}).Debug("Computed solar boundaries")

	return boundaries.Snapshot(captureInstant), nil
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	return c.entries.Len()
}
