package server

import (
	"net/http"

	"lumiere/pkg/types"
)

const featuresPath = "/admin/features"

func (s *Service) handleAdminFeatures(w http.ResponseWriter, r *http.Request) {
	data := adminPageData(s, r, s.repos.Features, "Fonctionnalités")
	data.Options = types.FeatureIcons

	if err := s.renderTemplate(w, r, "page.admin.features", data); err != nil {
		s.logger.WithError(err).Error("failed to render features admin page")
		s.internalServerError(w)
	}
}

func (s *Service) handleCreateFeature(w http.ResponseWriter, r *http.Request) {
	var feature types.Feature
	if err := s.decodeAndValidate(r, &feature); err != nil {
		s.redirectWithError(w, r, featuresPath, err.Error())
		return
	}

	if _, ok := postedOrderIndex(r); !ok {
		feature.OrderIndex = nextOrderIndex(r.Context(), s.repos.Features)
	}

	adminCreate(s, w, r, s.repos.Features, featuresPath, "feature", &feature)
}

func (s *Service) handleUpdateFeature(w http.ResponseWriter, r *http.Request) {
	var feature types.Feature
	if err := s.decodeAndValidate(r, &feature); err != nil {
		s.redirectWithError(w, r, featuresPath, err.Error())
		return
	}

	adminUpdate(s, w, r, s.repos.Features, featuresPath, "feature", &feature)
}

func (s *Service) handleDeleteFeature(w http.ResponseWriter, r *http.Request) {
	adminDelete(s, w, r, s.repos.Features, featuresPath, "feature")
}
