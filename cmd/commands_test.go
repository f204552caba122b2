package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/majorfi/spotframe/pkg/photos"
	"github.com/majorfi/spotframe/pkg/spot"
	"github.com/majorfi/spotframe/pkg/utils"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func plainOutput(t *testing.T) {
	t.Helper()
	previous := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = previous })
}

func TestWriteTiming(t *testing.T) {
	plainOutput(t)

	viewer := spot.NewViewer(nil, utils.TGeoCoordinate{Latitude: 40}, time.UTC, nil, quietLogger())
	var buf bytes.Buffer
	writeTiming(&buf, viewer, time.Date(2023, time.March, 21, 17, 15, 0, 0, time.UTC))

	out := buf.String()
	assert.Contains(t, out, "2023-03-21T17:15:00Z")
	assert.Contains(t, out, "Sunrise      06:00")
	assert.Contains(t, out, "Sunset       18:00")
	assert.Contains(t, out, "Golden hour  17:00 - 18:30")
	assert.Contains(t, out, "Blue hour    18:00 - 18:45")
	assert.Contains(t, out, "Closest      golden hour start (+15 min)")
	assert.Contains(t, out, "[Golden hour]")
}

func TestWriteTimingUnavailable(t *testing.T) {
	plainOutput(t)

	viewer := spot.NewViewer(nil, utils.TGeoCoordinate{Latitude: 95}, time.UTC, nil, quietLogger())
	var buf bytes.Buffer
	writeTiming(&buf, viewer, time.Date(2023, time.March, 21, 17, 15, 0, 0, time.UTC))

	assert.Contains(t, buf.String(), "[Timing unavailable]")
	assert.NotContains(t, buf.String(), "Sunrise")
}

func TestWriteGallery(t *testing.T) {
	plainOutput(t)

	records := []utils.TPhotoRecord{
		{ID: "south", Heading: utils.Float64Ptr(200), CaptureInstant: utils.TimePtr(time.Date(2023, time.March, 21, 18, 40, 0, 0, time.UTC))},
		{ID: "north", Heading: utils.Float64Ptr(10), CaptureInstant: utils.TimePtr(time.Date(2023, time.March, 21, 17, 15, 0, 0, time.UTC))},
		{ID: "unknown", Heading: utils.Float64Ptr(400)},
	}
	viewer := spot.NewViewer(records, utils.TGeoCoordinate{Latitude: 40}, time.UTC, nil, quietLogger())
	actions, err := spot.ParseScript("prev,next")
	require.NoError(t, err)

	var buf bytes.Buffer
	writeGallery(&buf, viewer, actions, 1)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")

	assert.Equal(t, "Gallery (3 photos, circular)", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "▶   0   10.0°  north"))
	assert.Contains(t, lines[1], "[Golden hour]")
	assert.Contains(t, lines[2], "south")
	assert.Contains(t, lines[2], "[Blue hour]")
	assert.Contains(t, lines[3], "[Timing unavailable]")
	assert.True(t, strings.HasPrefix(lines[3], "    2    -    unknown"), "out-of-range heading prints as unknown")

	assert.Contains(t, buf.String(), "prev -> 2")
	assert.Contains(t, buf.String(), "next -> 0")
}

func TestWriteGalleryEmpty(t *testing.T) {
	plainOutput(t)

	viewer := spot.NewViewer(nil, utils.TGeoCoordinate{Latitude: 40}, time.UTC, nil, quietLogger())
	var buf bytes.Buffer
	writeGallery(&buf, viewer, []spot.Action{{Kind: spot.ActionNext}}, 2)

	assert.Contains(t, buf.String(), "Gallery (0 photos, empty)")
	assert.Contains(t, buf.String(), "next: nothing to select")
}

func TestResolveSpot(t *testing.T) {
	configured := &utils.TGeoCoordinate{Latitude: 1}
	fromSource := &utils.TGeoCoordinate{Latitude: 2}
	records := []utils.TPhotoRecord{
		{ID: "a"},
		{ID: "b", Location: &utils.TGeoCoordinate{Latitude: 95}},
		{ID: "c", Location: &utils.TGeoCoordinate{Latitude: 3}},
	}

	assert.Equal(t, configured, resolveSpot(configured, fromSource, records))
	assert.Equal(t, fromSource, resolveSpot(nil, fromSource, records))
	assert.Equal(t, 3.0, resolveSpot(nil, nil, records).Latitude)
	assert.Equal(t, 3.0, resolveSpot(nil, &utils.TGeoCoordinate{Latitude: -100}, records).Latitude)
	assert.Nil(t, resolveSpot(nil, nil, records[:2]))
}

func TestLoadGalleryPhotos(t *testing.T) {
	resetTestEnv()
	defer resetTestEnv()

	path := filepath.Join(t.TempDir(), "spot.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"spot": {"latitude": 40, "longitude": -3.7},
		"photos": [{"id": "a", "heading": 90}, {"id": "b", "heading": 45}]
	}`), 0o644))

	manifestPath = path
	records, sourceSpot, err := loadGalleryPhotos(quietLogger())
	require.NoError(t, err)
	assert.Len(t, records, 2)
	require.NotNil(t, sourceSpot)
	assert.Equal(t, 40.0, sourceSpot.Latitude)
}

func TestLoadGalleryPhotosSourceSelection(t *testing.T) {
	tests := []struct {
		name  string
		setup func()
	}{
		{name: "no source", setup: func() {}},
		{name: "two sources", setup: func() { photoDir = "."; manifestPath = "spot.json" }},
		{name: "immich without key", setup: func() { useImmich = true; apiURL = "http://immich:2283" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetTestEnv()
			defer resetTestEnv()
			tt.setup()

			_, _, err := loadGalleryPhotos(quietLogger())
			assert.Error(t, err)
		})
	}
}

func TestParseExtensions(t *testing.T) {
	assert.Nil(t, parseExtensions(""))
	assert.Equal(t, []string{".jpg", ".heic"}, parseExtensions("JPG, .heic"))
}

func TestWriteScan(t *testing.T) {
	plainOutput(t)

	result := photos.ScanResult{
		Photos: []utils.TPhotoRecord{
			{
				ID:             "a.jpg",
				CaptureInstant: utils.TimePtr(time.Date(2023, time.March, 21, 17, 15, 0, 0, time.UTC)),
				Location:       &utils.TGeoCoordinate{Latitude: 48.5, Longitude: -2.25},
				Heading:        utils.Float64Ptr(271.5),
			},
			{ID: "b.jpg"},
		},
		Stats: photos.ScanStats{Total: 2, WithTime: 1, WithGPS: 1, WithoutGPS: 1, WithHeading: 1},
	}

	var buf bytes.Buffer
	writeScan(&buf, result, quietLogger())
	out := buf.String()

	assert.Contains(t, out, "2023-03-21T17:15:00Z")
	assert.Contains(t, out, "48.50000,-2.25000")
	assert.Contains(t, out, "271.5°")
	assert.Contains(t, out, "unknown time")
	assert.Contains(t, out, "no gps")
	assert.Contains(t, out, "2 photos: 1 with time, 1 with GPS, 1 without GPS, 1 with heading")
	assert.NotContains(t, out, "----")

	debug := logrus.New()
	debug.SetLevel(logrus.DebugLevel)
	buf.Reset()
	writeScan(&buf, result, debug)
	assert.Contains(t, buf.String(), "----")
}
