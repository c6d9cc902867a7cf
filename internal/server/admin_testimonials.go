package server

import (
	"net/http"

	"lumiere/pkg/types"
)

const testimonialsPath = "/admin/testimonials"

func (s *Service) handleAdminTestimonials(w http.ResponseWriter, r *http.Request) {
	data := adminPageData(s, r, s.repos.Testimonials, "Témoignages")

	if err := s.renderTemplate(w, r, "page.admin.testimonials", data); err != nil {
		s.logger.WithError(err).Error("failed to render testimonials admin page")
		s.internalServerError(w)
	}
}

func (s *Service) handleCreateTestimonial(w http.ResponseWriter, r *http.Request) {
	var testimonial types.Testimonial
	if err := s.decodeAndValidate(r, &testimonial); err != nil {
		s.redirectWithError(w, r, testimonialsPath, err.Error())
		return
	}

	url, uploaded, err := s.uploadFromForm(r, "image", s.config.ImageBucket, "testimonial")
	if err != nil {
		s.logger.WithError(err).Error("failed to upload testimonial photo")
		s.redirectWithError(w, r, testimonialsPath, "unable to upload the photo")
		return
	}
	if uploaded {
		testimonial.ImageURL = &url
	}

	if _, ok := postedOrderIndex(r); !ok {
		testimonial.OrderIndex = nextOrderIndex(r.Context(), s.repos.Testimonials)
	}

	adminCreate(s, w, r, s.repos.Testimonials, testimonialsPath, "testimonial", &testimonial)
}

func (s *Service) handleUpdateTestimonial(w http.ResponseWriter, r *http.Request) {
	var testimonial types.Testimonial
	if err := s.decodeAndValidate(r, &testimonial); err != nil {
		s.redirectWithError(w, r, testimonialsPath, err.Error())
		return
	}

	url, uploaded, err := s.uploadFromForm(r, "image", s.config.ImageBucket, "testimonial")
	if err != nil {
		s.logger.WithError(err).Error("failed to upload testimonial photo")
		s.redirectWithError(w, r, testimonialsPath, "unable to upload the photo")
		return
	}
	if uploaded {
		testimonial.ImageURL = &url
	}

	adminUpdate(s, w, r, s.repos.Testimonials, testimonialsPath, "testimonial", &testimonial)
}

func (s *Service) handleDeleteTestimonial(w http.ResponseWriter, r *http.Request) {
	adminDelete(s, w, r, s.repos.Testimonials, testimonialsPath, "testimonial")
}
