package photos

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleManifest = `{
	"spot": {"latitude": 40.4, "longitude": -3.7},
	"photos": [
		{"id": "tower", "capturedAt": "2023-03-21T17:15:00+01:00", "heading": 271.5, "latitude": 40.41, "longitude": -3.71},
		{"capturedAt": "2023-03-21 18:40", "source": "cam/IMG_2.jpg"},
		{"id": "nogps", "latitude": 40.41}
	]
}`

func TestParseManifest(t *testing.T) {
	madrid, err := time.LoadLocation("Europe/Madrid")
	require.NoError(t, err)

	records, spot, err := ParseManifest(strings.NewReader(sampleManifest), madrid)
	require.NoError(t, err)

	require.NotNil(t, spot)
	assert.Equal(t, 40.4, spot.Latitude)
	assert.Equal(t, -3.7, spot.Longitude)

	require.Len(t, records, 3)

	assert.Equal(t, "tower", records[0].ID)
	require.NotNil(t, records[0].CaptureInstant)
	assert.True(t, records[0].CaptureInstant.Equal(time.Date(2023, time.March, 21, 16, 15, 0, 0, time.UTC)))
	assert.Equal(t, 271.5, *records[0].Heading)
	require.NotNil(t, records[0].Location)
	assert.Equal(t, 40.41, records[0].Location.Latitude)

	_, err = uuid.Parse(records[1].ID)
	assert.NoError(t, err, "missing id should be replaced by a uuid")
	require.NotNil(t, records[1].CaptureInstant)
	assert.Equal(t, 18, records[1].CaptureInstant.Hour())
	assert.Equal(t, madrid, records[1].CaptureInstant.Location())
	assert.Equal(t, "cam/IMG_2.jpg", records[1].Source)
	assert.Nil(t, records[1].Heading)

	assert.Equal(t, "nogps", records[2].ID)
	assert.Nil(t, records[2].CaptureInstant)
	assert.Nil(t, records[2].Location)
}

func TestParseManifestErrors(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
	}{
		{name: "malformed json", manifest: `{"photos": [`},
		{name: "bad capture time", manifest: `{"photos": [{"id": "a", "capturedAt": "yesterday"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseManifest(strings.NewReader(tt.manifest), nil)
			assert.Error(t, err)
		})
	}
}

func TestParseManifestWithoutSpot(t *testing.T) {
	records, spot, err := ParseManifest(strings.NewReader(`{"photos": []}`), nil)
	require.NoError(t, err)
	assert.Nil(t, spot)
	assert.Empty(t, records)
}

func TestLoadManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spot.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleManifest), 0o644))

	records, spot, err := LoadManifest(path, time.UTC)
	require.NoError(t, err)
	assert.Len(t, records, 3)
	assert.NotNil(t, spot)

	_, _, err = LoadManifest(filepath.Join(t.TempDir(), "missing.json"), time.UTC)
	assert.Error(t, err)
}
