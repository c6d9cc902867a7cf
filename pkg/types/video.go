package types

// Short video uploads must land inside this duration window (inclusive,
// seconds). Enforced before the file is pushed to the object store.
const (
	ShortVideoMinSeconds = 30
	ShortVideoMaxSeconds = 40
)

type VideoSourceKind int

const (
	VideoSourceNone VideoSourceKind = iota
	VideoSourceUploaded
	VideoSourceYouTube
)

// VideoSource is the resolved playback source of a short video: either a file
// we host ourselves or a YouTube video, never both.
type VideoSource struct {
	Kind VideoSourceKind
	URL  string
}

type ShortVideo struct {
	Meta
	Title           string  `db:"title" form:"title" validate:"required"`
	Description     string  `db:"description" form:"description"`
	VideoURL        *string `db:"video_url" form:"videoUrl"`
	YouTubeURL      *string `db:"youtube_url" form:"youtubeUrl"`
	ThumbnailURL    *string `db:"thumbnail_url" form:"thumbnailUrl"`
	DurationSeconds int     `db:"duration_seconds" form:"durationSeconds" validate:"min=0"`
	Creator         string  `db:"creator" form:"creator"`
}

// SetUploadedSource points the video at a hosted file and clears any YouTube
// URL so the two can never both be set.
func (v *ShortVideo) SetUploadedSource(url string) {
	v.VideoURL = &url
	v.YouTubeURL = nil
}

// SetYouTubeSource points the video at YouTube and clears any hosted file URL.
func (v *ShortVideo) SetYouTubeSource(url string) {
	v.YouTubeURL = &url
	v.VideoURL = nil
}

func (v *ShortVideo) Source() VideoSource {
	switch {
	case v.VideoURL != nil && *v.VideoURL != "":
		return VideoSource{Kind: VideoSourceUploaded, URL: *v.VideoURL}
	case v.YouTubeURL != nil && *v.YouTubeURL != "":
		return VideoSource{Kind: VideoSourceYouTube, URL: *v.YouTubeURL}
	default:
		return VideoSource{Kind: VideoSourceNone}
	}
}

// ValidShortVideoDuration reports whether a probed upload duration falls in
// the accepted window.
func ValidShortVideoDuration(seconds int) bool {
	return seconds >= ShortVideoMinSeconds && seconds <= ShortVideoMaxSeconds
}
