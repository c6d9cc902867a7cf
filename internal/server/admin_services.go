package server

import (
	"net/http"

	"lumiere/pkg/types"
)

const servicesPath = "/admin/services"

func (s *Service) handleAdminServices(w http.ResponseWriter, r *http.Request) {
	data := adminPageData(s, r, s.repos.Services, "Cultes & Réunions")
	data.Options = types.ServiceDays

	if err := s.renderTemplate(w, r, "page.admin.services", data); err != nil {
		s.logger.WithError(err).Error("failed to render services admin page")
		s.internalServerError(w)
	}
}

func (s *Service) handleCreateService(w http.ResponseWriter, r *http.Request) {
	var service types.Service
	if err := s.decodeAndValidate(r, &service); err != nil {
		s.redirectWithError(w, r, servicesPath, err.Error())
		return
	}

	if _, ok := postedOrderIndex(r); !ok {
		service.OrderIndex = nextOrderIndex(r.Context(), s.repos.Services)
	}

	adminCreate(s, w, r, s.repos.Services, servicesPath, "service", &service)
}

func (s *Service) handleUpdateService(w http.ResponseWriter, r *http.Request) {
	var service types.Service
	if err := s.decodeAndValidate(r, &service); err != nil {
		s.redirectWithError(w, r, servicesPath, err.Error())
		return
	}

	adminUpdate(s, w, r, s.repos.Services, servicesPath, "service", &service)
}

func (s *Service) handleDeleteService(w http.ResponseWriter, r *http.Request) {
	adminDelete(s, w, r, s.repos.Services, servicesPath, "service")
}
