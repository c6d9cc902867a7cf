package server

import (
	"net/http"

	"lumiere/pkg/types"
)

const podcastsPath = "/admin/podcasts"

func (s *Service) handleAdminPodcasts(w http.ResponseWriter, r *http.Request) {
	data := adminPageData(s, r, s.repos.Podcasts, "Podcasts")

	if err := s.renderTemplate(w, r, "page.admin.podcasts", data); err != nil {
		s.logger.WithError(err).Error("failed to render podcasts admin page")
		s.internalServerError(w)
	}
}

// applyPodcastUploads stores the optional audio and cover files and rewrites
// the row's URLs to point at them.
func (s *Service) applyPodcastUploads(r *http.Request, podcast *types.Podcast) error {
	audioURL, uploaded, err := s.uploadFromForm(r, "audio", s.config.AudioBucket, "podcast-audio")
	if err != nil {
		return err
	}
	if uploaded {
		podcast.AudioURL = &audioURL
	}

	imageURL, uploaded, err := s.uploadFromForm(r, "image", s.config.ImageBucket, "podcast-cover")
	if err != nil {
		return err
	}
	if uploaded {
		podcast.ImageURL = &imageURL
	}

	return nil
}

func (s *Service) handleCreatePodcast(w http.ResponseWriter, r *http.Request) {
	var podcast types.Podcast
	if err := s.decodeAndValidate(r, &podcast); err != nil {
		s.redirectWithError(w, r, podcastsPath, err.Error())
		return
	}

	if err := s.applyPodcastUploads(r, &podcast); err != nil {
		s.logger.WithError(err).Error("failed to upload podcast media")
		s.redirectWithError(w, r, podcastsPath, "unable to upload the podcast files")
		return
	}

	adminCreate(s, w, r, s.repos.Podcasts, podcastsPath, "podcast", &podcast)
}

func (s *Service) handleUpdatePodcast(w http.ResponseWriter, r *http.Request) {
	var podcast types.Podcast
	if err := s.decodeAndValidate(r, &podcast); err != nil {
		s.redirectWithError(w, r, podcastsPath, err.Error())
		return
	}

	if err := s.applyPodcastUploads(r, &podcast); err != nil {
		s.logger.WithError(err).Error("failed to upload podcast media")
		s.redirectWithError(w, r, podcastsPath, "unable to upload the podcast files")
		return
	}

	adminUpdate(s, w, r, s.repos.Podcasts, podcastsPath, "podcast", &podcast)
}

func (s *Service) handleDeletePodcast(w http.ResponseWriter, r *http.Request) {
	adminDelete(s, w, r, s.repos.Podcasts, podcastsPath, "podcast")
}
