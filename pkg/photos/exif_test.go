package photos

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	typeASCII    = 2
	typeLong     = 4
	typeRational = 5
)

type ifdEntry struct {
	tag   uint16
	typ   uint16
	count uint32
	data  []byte
}

func asciiEntry(tag uint16, value string) ifdEntry {
	data := append([]byte(value), 0)
	return ifdEntry{tag: tag, typ: typeASCII, count: uint32(len(data)), data: data}
}

func rationalEntry(tag uint16, values ...uint32) ifdEntry {
	data := make([]byte, 0, len(values)*4)
	for _, v := range values {
		data = binary.LittleEndian.AppendUint32(data, v)
	}
	return ifdEntry{tag: tag, typ: typeRational, count: uint32(len(values) / 2), data: data}
}

// layoutIFD encodes entries as an IFD starting at offset start, followed by its out-of-line values.
func layoutIFD(entries []ifdEntry, start uint32) []byte {
	dataStart := start + 2 + 12*uint32(len(entries)) + 4
	var head, data bytes.Buffer

	_ = binary.Write(&head, binary.LittleEndian, uint16(len(entries)))
	for _, e := range entries {
		_ = binary.Write(&head, binary.LittleEndian, e.tag)
		_ = binary.Write(&head, binary.LittleEndian, e.typ)
		_ = binary.Write(&head, binary.LittleEndian, e.count)
		if len(e.data) <= 4 {
			inline := make([]byte, 4)
			copy(inline, e.data)
			head.Write(inline)
			continue
		}
		_ = binary.Write(&head, binary.LittleEndian, dataStart+uint32(data.Len()))
		data.Write(e.data)
		if data.Len()%2 == 1 {
			data.WriteByte(0)
		}
	}
	_ = binary.Write(&head, binary.LittleEndian, uint32(0))

	return append(head.Bytes(), data.Bytes()...)
}

// buildTIFF returns a little-endian TIFF holding ifd0 and, when gps is not empty, a GPS IFD.
func buildTIFF(ifd0 []ifdEntry, gps []ifdEntry) []byte {
	out := []byte{'I', 'I', 42, 0, 8, 0, 0, 0}
	if len(gps) == 0 {
		return append(out, layoutIFD(ifd0, 8)...)
	}

	pointer := ifdEntry{tag: 0x8825, typ: typeLong, count: 1, data: make([]byte, 4)}
	withPointer := append(append([]ifdEntry{}, ifd0...), pointer)
	gpsOffset := 8 + uint32(len(layoutIFD(withPointer, 8)))
	binary.LittleEndian.PutUint32(withPointer[len(withPointer)-1].data, gpsOffset)

	out = append(out, layoutIFD(withPointer, 8)...)
	return append(out, layoutIFD(gps, gpsOffset)...)
}

func sampleGPS() []ifdEntry {
	return []ifdEntry{
		asciiEntry(0x0001, "N"),
		rationalEntry(0x0002, 48, 1, 30, 1, 0, 1),
		asciiEntry(0x0003, "W"),
		rationalEntry(0x0004, 2, 1, 15, 1, 0, 1),
		asciiEntry(0x0010, "T"),
		rationalEntry(0x0011, 543, 2),
	}
}

func sampleTIFF() []byte {
	return buildTIFF([]ifdEntry{asciiEntry(0x0132, "2023:03:21 17:15:00")}, sampleGPS())
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func TestDecode(t *testing.T) {
	madrid, err := time.LoadLocation("Europe/Madrid")
	require.NoError(t, err)

	meta, err := Decode(bytes.NewReader(sampleTIFF()), madrid)
	require.NoError(t, err)

	require.NotNil(t, meta.CapturedAt)
	assert.True(t, meta.CapturedAt.Equal(time.Date(2023, time.March, 21, 17, 15, 0, 0, madrid)))
	assert.Equal(t, madrid, meta.CapturedAt.Location())

	require.NotNil(t, meta.Location)
	assert.InDelta(t, 48.5, meta.Location.Latitude, 1e-9)
	assert.InDelta(t, -2.25, meta.Location.Longitude, 1e-9)

	require.NotNil(t, meta.Heading)
	assert.InDelta(t, 271.5, *meta.Heading, 1e-9)
}

func TestDecodeWithoutGPS(t *testing.T) {
	data := buildTIFF([]ifdEntry{asciiEntry(0x0132, "2023:06:21 05:00:00")}, nil)

	meta, err := Decode(bytes.NewReader(data), nil)
	require.NoError(t, err)

	require.NotNil(t, meta.CapturedAt)
	assert.Equal(t, time.UTC, meta.CapturedAt.Location())
	assert.Equal(t, 5, meta.CapturedAt.Hour())
	assert.Nil(t, meta.Location)
	assert.Nil(t, meta.Heading)
}

func TestDecodeNormalizesHeading(t *testing.T) {
	gps := []ifdEntry{rationalEntry(0x0011, 725, 2)}
	data := buildTIFF([]ifdEntry{asciiEntry(0x0132, "2023:03:21 17:15:00")}, gps)

	meta, err := Decode(bytes.NewReader(data), nil)
	require.NoError(t, err)
	require.NotNil(t, meta.Heading)
	assert.InDelta(t, 2.5, *meta.Heading, 1e-9)
}

func TestDecodeInvalidData(t *testing.T) {
	_, err := Decode(strings.NewReader("definitely not an image"), nil)
	assert.Error(t, err)
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.tif")
	bad := filepath.Join(dir, "bad.jpg")
	require.NoError(t, os.WriteFile(good, sampleTIFF(), 0o644))
	require.NoError(t, os.WriteFile(bad, []byte("garbage"), 0o644))

	meta, err := ReadFile(good, time.UTC, testLogger())
	require.NoError(t, err)
	assert.NotNil(t, meta.CapturedAt)
	assert.NotNil(t, meta.Location)

	meta, err = ReadFile(bad, time.UTC, testLogger())
	require.NoError(t, err)
	assert.Equal(t, Metadata{}, meta)

	_, err = ReadFile(filepath.Join(dir, "missing.jpg"), time.UTC, testLogger())
	assert.Error(t, err)
}

func TestMetadataRecord(t *testing.T) {
	meta, err := Decode(bytes.NewReader(sampleTIFF()), nil)
	require.NoError(t, err)

	record := meta.Record("a/b.tif", "/photos/a/b.tif")
	assert.Equal(t, "a/b.tif", record.ID)
	assert.Equal(t, "/photos/a/b.tif", record.Source)
	assert.True(t, record.HasValidHeading())
	assert.Equal(t, meta.Location, record.Location)
}
