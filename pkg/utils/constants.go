package utils

/**************************************************************************************************
** TimeFormat is the standard format for all time values printed by the application.
**************************************************************************************************/
const TimeFormat = "2006-01-02T15:04:05Z07:00"

/**************************************************************************************************
** LocalInputFormats are the layouts accepted for user-supplied capture instants, tried in order.
** Layouts without an offset are interpreted in the configured spot timezone.
**************************************************************************************************/
var LocalInputFormats = []string{
	TimeFormat,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

/**************************************************************************************************
** DefaultSolarCacheSize is the number of (day, location, latitude) entries kept by the solar
** snapshot cache when SOLAR_CACHE_SIZE is not set.
**************************************************************************************************/
const DefaultSolarCacheSize = 256

/**************************************************************************************************
** DefaultPhotoExtensions lists the file extensions picked up by a directory scan.
**************************************************************************************************/
var DefaultPhotoExtensions = []string{".jpg", ".jpeg", ".tif", ".tiff"}

/**************************************************************************************************
** Badge labels
**************************************************************************************************/
var LABEL_GOLDEN_HOUR = "Golden hour"
var LABEL_BLUE_HOUR = "Blue hour"
var LABEL_TIMING_UNAVAILABLE = "Timing unavailable"
