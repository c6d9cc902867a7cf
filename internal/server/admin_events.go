package server

import (
	"net/http"

	"lumiere/pkg/types"
)

const eventsPath = "/admin/events"

func (s *Service) handleAdminEvents(w http.ResponseWriter, r *http.Request) {
	data := adminPageData(s, r, s.repos.Events, "Événements")

	if err := s.renderTemplate(w, r, "page.admin.events", data); err != nil {
		s.logger.WithError(err).Error("failed to render events admin page")
		s.internalServerError(w)
	}
}

func (s *Service) handleCreateEvent(w http.ResponseWriter, r *http.Request) {
	var event types.Event
	if err := s.decodeAndValidate(r, &event); err != nil {
		s.redirectWithError(w, r, eventsPath, err.Error())
		return
	}

	url, uploaded, err := s.uploadFromForm(r, "image", s.config.ImageBucket, "event")
	if err != nil {
		s.logger.WithError(err).Error("failed to upload event image")
		s.redirectWithError(w, r, eventsPath, "unable to upload the image")
		return
	}
	if uploaded {
		event.ImageURL = &url
	}

	if _, ok := postedOrderIndex(r); !ok {
		event.OrderIndex = nextOrderIndex(r.Context(), s.repos.Events)
	}

	adminCreate(s, w, r, s.repos.Events, eventsPath, "event", &event)
}

func (s *Service) handleUpdateEvent(w http.ResponseWriter, r *http.Request) {
	var event types.Event
	if err := s.decodeAndValidate(r, &event); err != nil {
		s.redirectWithError(w, r, eventsPath, err.Error())
		return
	}

	// A new upload replaces the image; otherwise the hidden imageUrl field
	// carries the existing one through the form round-trip.
	url, uploaded, err := s.uploadFromForm(r, "image", s.config.ImageBucket, "event")
	if err != nil {
		s.logger.WithError(err).Error("failed to upload event image")
		s.redirectWithError(w, r, eventsPath, "unable to upload the image")
		return
	}
	if uploaded {
		event.ImageURL = &url
	}

	adminUpdate(s, w, r, s.repos.Events, eventsPath, "event", &event)
}

func (s *Service) handleDeleteEvent(w http.ResponseWriter, r *http.Request) {
	adminDelete(s, w, r, s.repos.Events, eventsPath, "event")
}
