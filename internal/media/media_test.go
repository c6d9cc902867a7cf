package media

import (
	"bytes"
	"encoding/binary"
	"testing"

	"lumiere/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractYouTubeID(t *testing.T) {
	cases := []struct {
		name string
		url  string
		want string
		ok   bool
	}{
		{"watch", "https://www.youtube.com/watch?v=ScMzIvxBSi4", "ScMzIvxBSi4", true},
		{"short link", "https://youtu.be/ScMzIvxBSi4", "ScMzIvxBSi4", true},
		{"shorts", "https://www.youtube.com/shorts/ScMzIvxBSi4", "ScMzIvxBSi4", true},
		{"embed", "https://www.youtube.com/embed/ScMzIvxBSi4", "ScMzIvxBSi4", true},
		{"nocookie", "https://www.youtube-nocookie.com/embed/ScMzIvxBSi4", "ScMzIvxBSi4", true},
		{"watch with extra params", "https://www.youtube.com/watch?t=10&v=ScMzIvxBSi4", "ScMzIvxBSi4", true},
		{"bare id", "ScMzIvxBSi4", "ScMzIvxBSi4", true},
		{"unrelated url", "https://example.com/video", "", false},
		{"empty", "", "", false},
		{"too short id", "abc", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ExtractYouTubeID(tc.url)
			if !tc.ok {
				assert.ErrorIs(t, err, types.ErrInvalidYouTubeURL)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestYouTubeURLs(t *testing.T) {
	assert.Equal(t, "https://img.youtube.com/vi/ScMzIvxBSi4/hqdefault.jpg", YouTubeThumbnail("ScMzIvxBSi4"))
	assert.Equal(t, "https://www.youtube.com/embed/ScMzIvxBSi4", YouTubeEmbedURL("ScMzIvxBSi4"))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "1:30", FormatDuration(90))
	assert.Equal(t, "0:59", FormatDuration(59))
	assert.Equal(t, "0:00", FormatDuration(0))
	assert.Equal(t, "0:00", FormatDuration(-5))
	assert.Equal(t, "10:05", FormatDuration(605))
}

// buildMP4 assembles a minimal ftyp+moov stream with an mvhd of the given
// version, timescale, and duration.
func buildMP4(t *testing.T, version byte, timescale uint32, duration uint64) []byte {
	t.Helper()

	var mvhdBody bytes.Buffer
	mvhdBody.Write([]byte{version, 0, 0, 0})
	if version == 0 {
		var body [16]byte
		binary.BigEndian.PutUint32(body[8:12], timescale)
		binary.BigEndian.PutUint32(body[12:16], uint32(duration))
		mvhdBody.Write(body[:])
	} else {
		var body [28]byte
		binary.BigEndian.PutUint32(body[16:20], timescale)
		binary.BigEndian.PutUint64(body[20:28], duration)
		mvhdBody.Write(body[:])
	}

	mvhd := box("mvhd", mvhdBody.Bytes())
	moov := box("moov", mvhd)
	ftyp := box("ftyp", []byte("isom\x00\x00\x02\x00"))

	return append(ftyp, moov...)
}

func box(name string, payload []byte) []byte {
	out := make([]byte, 8+len(payload))
	binary.BigEndian.PutUint32(out[:4], uint32(8+len(payload)))
	copy(out[4:8], name)
	copy(out[8:], payload)
	return out
}

func TestProbeMP4Duration(t *testing.T) {
	cases := []struct {
		name      string
		version   byte
		timescale uint32
		duration  uint64
		want      int
	}{
		{"version 0, 35s", 0, 1000, 35000, 35},
		{"version 0, 25s", 0, 600, 15000, 25},
		{"version 1, 40s", 1, 90000, 3600000, 40},
		{"rounds to nearest", 0, 1000, 34500, 35},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			data := buildMP4(t, tc.version, tc.timescale, tc.duration)
			got, err := ProbeMP4Duration(bytes.NewReader(data))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestProbeMP4DurationGarbage(t *testing.T) {
	_, err := ProbeMP4Duration(bytes.NewReader([]byte("not an mp4 at all")))
	assert.Error(t, err)
}

// The duration gate runs on the probed value before any upload is attempted.
func TestProbeGatesUpload(t *testing.T) {
	tooShort := buildMP4(t, 0, 1000, 25000)
	seconds, err := ProbeMP4Duration(bytes.NewReader(tooShort))
	require.NoError(t, err)
	assert.False(t, types.ValidShortVideoDuration(seconds))

	acceptable := buildMP4(t, 0, 1000, 35000)
	seconds, err = ProbeMP4Duration(bytes.NewReader(acceptable))
	require.NoError(t, err)
	assert.True(t, types.ValidShortVideoDuration(seconds))
}
