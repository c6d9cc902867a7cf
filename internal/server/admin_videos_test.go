package server

import (
	"bytes"
	"context"
	"encoding/binary"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"lumiere/pkg/types"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingStore counts uploads instead of talking to an object store.
type recordingStore struct {
	uploads []string
}

func (r *recordingStore) Upload(_ context.Context, bucket, objectName string, body io.Reader, _ string) (string, error) {
	_, _ = io.Copy(io.Discard, body)
	r.uploads = append(r.uploads, bucket+"/"+objectName)
	return "https://cdn.test/" + bucket + "/" + objectName, nil
}

func videoService(store *recordingStore) *Service {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return &Service{
		logger:   logger,
		config:   &types.Config{ImageBucket: "images", VideoBucket: "short-videos"},
		media:    store,
		validate: newValidator(),
	}
}

// mp4Stream assembles a minimal ftyp+moov stream whose mvhd reports the
// given duration in seconds.
func mp4Stream(seconds uint32) []byte {
	mvhdBody := make([]byte, 20)
	binary.BigEndian.PutUint32(mvhdBody[12:16], 1000)
	binary.BigEndian.PutUint32(mvhdBody[16:20], seconds*1000)

	mvhd := mp4Box("mvhd", mvhdBody)
	moov := mp4Box("moov", mvhd)
	ftyp := mp4Box("ftyp", []byte("isom\x00\x00\x02\x00"))

	return append(ftyp, moov...)
}

func mp4Box(name string, payload []byte) []byte {
	out := make([]byte, 8+len(payload))
	binary.BigEndian.PutUint32(out[:4], uint32(8+len(payload)))
	copy(out[4:8], name)
	copy(out[8:], payload)
	return out
}

func videoFormRequest(t *testing.T, fields map[string]string, files map[string][]byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for name, value := range fields {
		require.NoError(t, w.WriteField(name, value))
	}
	for name, data := range files {
		fw, err := w.CreateFormFile(name, name+".mp4")
		require.NoError(t, err)
		_, err = fw.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	r := httptest.NewRequest("POST", "/admin/videos", &buf)
	r.Header.Set("Content-Type", w.FormDataContentType())
	return r
}

// A video outside the duration window is rejected before anything reaches
// the object store, including an attached thumbnail.
func TestCreateVideoRejectedBeforeAnyUpload(t *testing.T) {
	store := &recordingStore{}
	s := videoService(store)

	r := videoFormRequest(t,
		map[string]string{"title": "Trop court"},
		map[string][]byte{
			"video":     mp4Stream(25),
			"thumbnail": []byte("fake image bytes"),
		})
	rec := httptest.NewRecorder()

	s.handleCreateVideo(rec, r)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Contains(t, rec.Header().Get("Location"), "error=")
	assert.Empty(t, store.uploads)
}

func TestCreateVideoBadYouTubeLinkUploadsNothing(t *testing.T) {
	store := &recordingStore{}
	s := videoService(store)

	r := videoFormRequest(t,
		map[string]string{"title": "Lien cassé", "youtubeUrl": "https://example.com/watch?v=nope"},
		map[string][]byte{"thumbnail": []byte("fake image bytes")})
	rec := httptest.NewRecorder()

	s.handleCreateVideo(rec, r)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Contains(t, rec.Header().Get("Location"), "error=")
	assert.Empty(t, store.uploads)
}

func TestResolveVideoSourceDurationSentinel(t *testing.T) {
	s := videoService(&recordingStore{})

	r := videoFormRequest(t, map[string]string{"title": "Trop court"},
		map[string][]byte{"video": mp4Stream(25)})

	var video types.ShortVideo
	require.NoError(t, s.decodeAndValidate(r, &video))

	err := s.resolveVideoSource(r, &video)
	assert.ErrorIs(t, err, types.ErrVideoDuration)
}

func TestResolveVideoSourceAcceptsWindowedUpload(t *testing.T) {
	store := &recordingStore{}
	s := videoService(store)

	r := videoFormRequest(t, map[string]string{"title": "Dans la fenêtre"},
		map[string][]byte{"video": mp4Stream(35)})

	var video types.ShortVideo
	require.NoError(t, s.decodeAndValidate(r, &video))
	require.NoError(t, s.resolveVideoSource(r, &video))

	assert.Equal(t, 35, video.DurationSeconds)
	assert.Equal(t, types.VideoSourceUploaded, video.Source().Kind)
	require.Len(t, store.uploads, 1)
	assert.Contains(t, store.uploads[0], "short-videos/")
}

// An explicitly uploaded thumbnail wins over the one derived from the
// YouTube link, because the source is resolved first.
func TestUploadedThumbnailOverridesDerived(t *testing.T) {
	store := &recordingStore{}
	s := videoService(store)

	r := videoFormRequest(t,
		map[string]string{"title": "Avec lien", "youtubeUrl": "https://youtu.be/ScMzIvxBSi4"},
		map[string][]byte{"thumbnail": []byte("fake image bytes")})

	var video types.ShortVideo
	require.NoError(t, s.decodeAndValidate(r, &video))
	require.NoError(t, s.resolveVideoSource(r, &video))

	// Derived from the link before the explicit upload is applied.
	require.NotNil(t, video.ThumbnailURL)
	assert.Contains(t, *video.ThumbnailURL, "img.youtube.com")

	require.NoError(t, s.applyVideoThumbnail(r, &video))

	require.NotNil(t, video.ThumbnailURL)
	assert.Contains(t, *video.ThumbnailURL, "https://cdn.test/images/")
	assert.Equal(t, types.VideoSourceYouTube, video.Source().Kind)
	assert.Nil(t, video.VideoURL)
}
