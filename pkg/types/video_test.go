package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShortVideoSourceExclusivity(t *testing.T) {
	var v ShortVideo

	v.SetUploadedSource("https://cdn.example.com/short-videos/clip.mp4")
	require.NotNil(t, v.VideoURL)
	assert.Nil(t, v.YouTubeURL)

	v.SetYouTubeSource("https://youtu.be/ScMzIvxBSi4")
	require.NotNil(t, v.YouTubeURL)
	assert.Nil(t, v.VideoURL, "setting a YouTube link must clear the uploaded URL")

	v.SetUploadedSource("https://cdn.example.com/short-videos/clip2.mp4")
	require.NotNil(t, v.VideoURL)
	assert.Nil(t, v.YouTubeURL, "uploading must clear the YouTube link")
}

func TestShortVideoSource(t *testing.T) {
	var v ShortVideo
	assert.Equal(t, VideoSourceNone, v.Source().Kind)

	v.SetUploadedSource("https://cdn.example.com/clip.mp4")
	src := v.Source()
	assert.Equal(t, VideoSourceUploaded, src.Kind)
	assert.Equal(t, "https://cdn.example.com/clip.mp4", src.URL)

	v.SetYouTubeSource("https://youtu.be/ScMzIvxBSi4")
	src = v.Source()
	assert.Equal(t, VideoSourceYouTube, src.Kind)
	assert.Equal(t, "https://youtu.be/ScMzIvxBSi4", src.URL)
}

func TestValidShortVideoDuration(t *testing.T) {
	cases := []struct {
		seconds int
		ok      bool
	}{
		{25, false},
		{29, false},
		{30, true},
		{35, true},
		{40, true},
		{41, false},
		{0, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.ok, ValidShortVideoDuration(tc.seconds), "duration %d", tc.seconds)
	}
}
