package photos

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/facette/natsort"
	"github.com/karrick/godirwalk"
	"github.com/majorfi/spotframe/pkg/utils"
	"github.com/sirupsen/logrus"
)

/**************************************************************************************************
** ScanStats counts what a directory scan found.
**************************************************************************************************/
type ScanStats struct {
	Total       int
	WithTime    int
	WithGPS     int
	WithoutGPS  int
	WithHeading int
}

/**************************************************************************************************
** ScanResult holds the photo records of a scan, in natural file-name order, and its stats.
**************************************************************************************************/
type ScanResult struct {
	Photos []utils.TPhotoRecord
	Stats  ScanStats
}

/**************************************************************************************************
** Scan walks root and reads the EXIF metadata of every photo file below it. Hidden files and
** directories are skipped. Record IDs are paths relative to root using forward slashes.
**
** @param root - Directory to scan
** @param extensions - Accepted file extensions, utils.DefaultPhotoExtensions when empty
** @param loc - Timezone EXIF capture times are interpreted in
** @param logger - Logger instance
** @return ScanResult - Photo records and stats
** @return error - Error if the walk or a file open fails
**************************************************************************************************/
func Scan(root string, extensions []string, loc *time.Location, logger *logrus.Logger) (ScanResult, error) {
	if len(extensions) == 0 {
		extensions = utils.DefaultPhotoExtensions
	}

	root = filepath.Clean(root)
	paths := []string{}
	err := godirwalk.Walk(root, &godirwalk.Options{
		Callback: func(path string, de *godirwalk.Dirent) error {
			if path != root && strings.HasPrefix(filepath.Base(path), ".") {
				return godirwalk.SkipThis
			}
			if de.IsDir() {
				return nil
			}
			if utils.Contains(extensions, strings.ToLower(filepath.Ext(path))) {
				paths = append(paths, path)
			}
			return nil
		},
		Unsorted: true,
	})
	if err != nil {
		return ScanResult{}, fmt.Errorf("error walking %s: %w", root, err)
	}

	natsort.Sort(paths)
	logger.Debugf("Found %d photo files under %s", len(paths), root)

	result := ScanResult{Photos: make([]utils.TPhotoRecord, 0, len(paths))}
	for _, path := range paths {
		meta, err := ReadFile(path, loc, logger)
		if err != nil {
			return ScanResult{}, err
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return ScanResult{}, fmt.Errorf("error resolving %s: %w", path, err)
		}

		result.Photos = append(result.Photos, meta.Record(filepath.ToSlash(rel), path))
		result.Stats.add(meta)
	}

	return result, nil
}

func (s *ScanStats) add(meta Metadata) {
	s.Total++
	if meta.CapturedAt != nil {
		s.WithTime++
	}
	if meta.Location != nil {
		s.WithGPS++
	} else {
		s.WithoutGPS++
	}
	if meta.Heading != nil {
		s.WithHeading++
	}
}
