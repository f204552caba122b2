/**************************************************************************************************
** Configuration and environment management for the spotframe CLI application.
** Handles logger configuration, environment variable loading, and global configuration state.
**************************************************************************************************/

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/majorfi/spotframe/pkg/solar"
	"github.com/majorfi/spotframe/pkg/utils"
	"github.com/sirupsen/logrus"
)

// Global configuration variables
var apiKey string
var apiURL string
var albumID string
var logLevel string
var spotLatitude string
var spotLongitude string
var spotTimezone string
var solarCacheSize int

// Resolved configuration, filled by loadEnvWithError
var spotCoordinate *utils.TGeoCoordinate
var spotLocation = time.UTC

/**************************************************************************************************
** LoadEnvConfig is the result of loading the configuration: the logger and the first
** configuration error, if any.
**************************************************************************************************/
type LoadEnvConfig struct {
	Logger *logrus.Logger
	Error  error
}

/**************************************************************************************************
** Configures the logger based on environment variables. Sets up the log level and format
** according to LOG_LEVEL and LOG_FORMAT environment variables, and the output according to
** LOG_FILE.
**
** @return *logrus.Logger - Configured logger instance
**************************************************************************************************/
func configureLogger() *logrus.Logger {
	return configureLoggerWithOutput(nil)
}

/**************************************************************************************************
** configureLoggerWithOutput builds the logger. When output is nil, LOG_FILE selects a file and
** stdout is used otherwise; an unwritable LOG_FILE falls back to stdout with a warning.
** The --log-level flag takes precedence over LOG_LEVEL.
**
** @param output - Writer for the logs, nil to honor LOG_FILE
** @return *logrus.Logger - Configured logger instance
**************************************************************************************************/
func configureLoggerWithOutput(output io.Writer) *logrus.Logger {
	logger := logrus.New()
	if output != nil {
		logger.SetOutput(output)
	} else {
		logger.SetOutput(os.Stdout)
	}

	level := logLevel
	if level == "" {
		level = os.Getenv("LOG_LEVEL")
	}
	if level != "" {
		if parsedLevel, err := logrus.ParseLevel(level); err == nil {
			logger.SetLevel(parsedLevel)
		} else {
			logger.Warnf("Invalid LOG_LEVEL '%s', using default 'info'", level)
			logger.SetLevel(logrus.InfoLevel)
		}
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}

	if format := os.Getenv("LOG_FORMAT"); format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339,
		})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			DisableTimestamp: true,
			FullTimestamp:    false,
			TimestampFormat:  time.RFC3339,
		})
	}

	if output == nil {
		if logFile := os.Getenv("LOG_FILE"); logFile != "" {
			file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				logger.Warnf("Cannot open LOG_FILE '%s', logging to stdout: %v", logFile, err)
			} else {
				logger.SetOutput(file)
			}
		}
	}

	return logger
}

/**************************************************************************************************
** Loads environment variables and command-line flags, with flags taking precedence over env
** variables. Resolves the spot coordinate, its timezone and the solar cache size.
**
** @return *logrus.Logger - Configured logger
** @return error - First invalid configuration value
**************************************************************************************************/
func loadEnvWithError() (*logrus.Logger, error) {
	_ = godotenv.Load()
	logger := configureLogger()

	if apiKey == "" {
		apiKey = os.Getenv("API_KEY")
	}
	if apiURL == "" {
		apiURL = os.Getenv("API_URL")
	}
	if apiURL == "" {
		apiURL = "http://immich_server:3001/api"
	}
	if albumID == "" {
		albumID = strings.TrimSpace(os.Getenv("IMMICH_ALBUM_ID"))
	}

	if spotLatitude == "" {
		spotLatitude = os.Getenv("SPOT_LATITUDE")
	}
	if spotLongitude == "" {
		spotLongitude = os.Getenv("SPOT_LONGITUDE")
	}
	coordinate, err := parseCoordinate(spotLatitude, spotLongitude)
	if err != nil {
		return logger, err
	}
	spotCoordinate = coordinate

	if spotTimezone == "" {
		spotTimezone = os.Getenv("SPOT_TIMEZONE")
	}
	spotLocation = time.UTC
	if spotTimezone != "" {
		location, err := time.LoadLocation(spotTimezone)
		if err != nil {
			return logger, fmt.Errorf("invalid SPOT_TIMEZONE '%s': %w", spotTimezone, err)
		}
		spotLocation = location
	}

	if solarCacheSize == 0 {
		if val := os.Getenv("SOLAR_CACHE_SIZE"); val != "" {
			intVal, err := strconv.Atoi(val)
			if err != nil || intVal <= 0 {
				return logger, fmt.Errorf("invalid SOLAR_CACHE_SIZE '%s': must be a positive integer", val)
			}
			solarCacheSize = intVal
		}
	}
	if solarCacheSize <= 0 {
		solarCacheSize = utils.DefaultSolarCacheSize
	}

	return logger, nil
}

/**************************************************************************************************
** loadEnv is loadEnvWithError for command entry points: configuration errors are fatal.
**
** @return *logrus.Logger - Configured logger
**************************************************************************************************/
func loadEnv() *logrus.Logger {
	logger, err := loadEnvWithError()
	if err != nil {
		logger.Fatal(err)
	}
	logStartupSummary(logger)
	return logger
}

/**************************************************************************************************
** parseCoordinate parses the spot coordinate. Both values empty means no spot is configured;
** a longitude alone is meaningless, so latitude is required when longitude is set.
**
** @param latitude - Latitude in decimal degrees
** @param longitude - Longitude in decimal degrees, 0 when empty
** @return *utils.TGeoCoordinate - Parsed coordinate, nil when not configured
** @return error - Error if a value does not parse or is out of range
**************************************************************************************************/
func parseCoordinate(latitude, longitude string) (*utils.TGeoCoordinate, error) {
	latitude = strings.TrimSpace(latitude)
	longitude = strings.TrimSpace(longitude)
	if latitude == "" && longitude == "" {
		return nil, nil
	}
	if latitude == "" {
		return nil, fmt.Errorf("SPOT_LATITUDE is required when SPOT_LONGITUDE is set")
	}

	coordinate := utils.TGeoCoordinate{}
	lat, err := strconv.ParseFloat(latitude, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid SPOT_LATITUDE '%s': %w", latitude, err)
	}
	coordinate.Latitude = lat
	if longitude != "" {
		lon, err := strconv.ParseFloat(longitude, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid SPOT_LONGITUDE '%s': %w", longitude, err)
		}
		coordinate.Longitude = lon
	}
	if !coordinate.IsValid() {
		return nil, fmt.Errorf("spot coordinate %v, %v is out of range", coordinate.Latitude, coordinate.Longitude)
	}
	return &coordinate, nil
}

/**************************************************************************************************
** newSolarCache builds the snapshot cache shared by a command run.
**
** @param logger - Logger instance
** @return *solar.Cache - Cache sized by SOLAR_CACHE_SIZE
**************************************************************************************************/
func newSolarCache(logger *logrus.Logger) *solar.Cache {
	cache, err := solar.NewCache(solarCacheSize, logger)
	if err != nil {
		logger.Fatalf("Error creating solar cache: %v", err)
	}
	return cache
}

/**************************************************************************************************
** logStartupSummary logs the resolved configuration once, as structured fields in JSON mode
** and as a single line otherwise.
**
** @param logger - Logger instance
**************************************************************************************************/
func logStartupSummary(logger *logrus.Logger) {
	spot := "none"
	if spotCoordinate != nil {
		spot = fmt.Sprintf("%.5f,%.5f", spotCoordinate.Latitude, spotCoordinate.Longitude)
	}
	format := os.Getenv("LOG_FORMAT")
	if format == "" {
		format = "text"
	}

	if format == "json" {
		fields := logrus.Fields{
			"spot":           spot,
			"timezone":       spotLocation.String(),
			"solarCacheSize": solarCacheSize,
			"logLevel":       logger.GetLevel().String(),
			"logFormat":      format,
		}
		if albumID != "" {
			fields["albumID"] = albumID
		}
		logger.WithFields(fields).Info("Configuration loaded")
		return
	}

	summary := fmt.Sprintf("Starting with config: spot=%s, tz=%s, cache=%d, level=%s, format=%s",
		spot, spotLocation.String(), solarCacheSize, logger.GetLevel().String(), format)
	if albumID != "" {
		summary += fmt.Sprintf(", album=%s", albumID)
	}
	logger.Info(summary)
}
