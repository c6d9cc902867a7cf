package types

import "errors"

var (
	ErrRowNotFound       = errors.New("row not found")
	ErrInvalidYouTubeURL = errors.New("unrecognized YouTube URL")
	ErrVideoDuration     = errors.New("video duration outside the 30-40 second window")
	ErrMissingSource     = errors.New("a short video needs an uploaded file or a YouTube link")
)
