package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"lumiere/internal/media"
	"lumiere/pkg/types"
)

const videosPath = "/admin/videos"

func (s *Service) handleAdminVideos(w http.ResponseWriter, r *http.Request) {
	data := adminPageData(s, r, s.repos.Videos, "Vidéos courtes")

	if err := s.renderTemplate(w, r, "page.admin.videos", data); err != nil {
		s.logger.WithError(err).Error("failed to render videos admin page")
		s.internalServerError(w)
	}
}

// resolveVideoSource settles the video's playback source from the submitted
// form. Priority order: a fresh file upload, then a YouTube link, then the
// source the row already had. The duration gate runs on the file BEFORE it
// is pushed to the object store; a revoked upload costs no storage.
func (s *Service) resolveVideoSource(r *http.Request, video *types.ShortVideo) error {
	file, header, err := r.FormFile("video")
	switch {
	case err == nil && header.Size > 0:
		defer file.Close()

		seconds, err := media.ProbeMP4Duration(file)
		if err != nil {
			s.logger.WithError(err).Warn("failed to probe uploaded video duration")
			return errors.New("unable to read the video duration; upload an MP4 file")
		}
		if !types.ValidShortVideoDuration(seconds) {
			return fmt.Errorf("%w (got %s)", types.ErrVideoDuration, media.FormatDuration(seconds))
		}

		if _, err := file.Seek(0, io.SeekStart); err != nil {
			return fmt.Errorf("rewind video stream: %w", err)
		}

		objectURL, uploaded, err := s.uploadFromForm(r, "video", s.config.VideoBucket, "short-video")
		if err != nil || !uploaded {
			s.logger.WithError(err).Error("failed to upload short video")
			return errors.New("unable to upload the video")
		}

		video.SetUploadedSource(objectURL)
		video.DurationSeconds = seconds
		return nil

	case err == nil:
		file.Close()
		fallthrough

	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
		if youtubeURL := r.PostFormValue("youtubeUrl"); youtubeURL != "" {
			videoID, err := media.ExtractYouTubeID(youtubeURL)
			if err != nil {
				return errors.New("this is not a recognizable YouTube link")
			}

			video.SetYouTubeSource(youtubeURL)
			if video.ThumbnailURL == nil || *video.ThumbnailURL == "" {
				thumb := media.YouTubeThumbnail(videoID)
				video.ThumbnailURL = &thumb
			}
			return nil
		}

		// Editing without touching the source keeps the existing one, carried
		// through the form's hidden videoUrl field.
		if video.Source().Kind == types.VideoSourceNone {
			return types.ErrMissingSource
		}
		return nil

	default:
		return err
	}
}

func (s *Service) applyVideoThumbnail(r *http.Request, video *types.ShortVideo) error {
	url, uploaded, err := s.uploadFromForm(r, "thumbnail", s.config.ImageBucket, "video-thumbnail")
	if err != nil {
		return err
	}
	if uploaded {
		video.ThumbnailURL = &url
	}
	return nil
}

func (s *Service) handleCreateVideo(w http.ResponseWriter, r *http.Request) {
	var video types.ShortVideo
	if err := s.decodeAndValidate(r, &video); err != nil {
		s.redirectWithError(w, r, videosPath, err.Error())
		return
	}

	// The source is settled first: a rejected video (duration gate, bad
	// YouTube link) must abort before anything is pushed to the object
	// store. An uploaded thumbnail then overrides any derived one.
	if err := s.resolveVideoSource(r, &video); err != nil {
		if errors.Is(err, types.ErrMissingSource) {
			s.redirectWithError(w, r, videosPath, "a video file or a YouTube link is required")
			return
		}
		s.redirectWithError(w, r, videosPath, err.Error())
		return
	}

	if err := s.applyVideoThumbnail(r, &video); err != nil {
		s.logger.WithError(err).Error("failed to upload video thumbnail")
		s.redirectWithError(w, r, videosPath, "unable to upload the thumbnail")
		return
	}

	adminCreate(s, w, r, s.repos.Videos, videosPath, "video", &video)
}

func (s *Service) handleUpdateVideo(w http.ResponseWriter, r *http.Request) {
	var video types.ShortVideo
	if err := s.decodeAndValidate(r, &video); err != nil {
		s.redirectWithError(w, r, videosPath, err.Error())
		return
	}

	if err := s.resolveVideoSource(r, &video); err != nil {
		if errors.Is(err, types.ErrMissingSource) {
			s.redirectWithError(w, r, videosPath, "a video file or a YouTube link is required")
			return
		}
		s.redirectWithError(w, r, videosPath, err.Error())
		return
	}

	if err := s.applyVideoThumbnail(r, &video); err != nil {
		s.logger.WithError(err).Error("failed to upload video thumbnail")
		s.redirectWithError(w, r, videosPath, "unable to upload the thumbnail")
		return
	}

	adminUpdate(s, w, r, s.repos.Videos, videosPath, "video", &video)
}

func (s *Service) handleDeleteVideo(w http.ResponseWriter, r *http.Request) {
	adminDelete(s, w, r, s.repos.Videos, videosPath, "video")
}
