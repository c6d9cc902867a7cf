package server

import (
	"net/http"

	"lumiere/pkg/types"
)

const galleryPath = "/admin/gallery"

func (s *Service) handleAdminGallery(w http.ResponseWriter, r *http.Request) {
	data := adminPageData(s, r, s.repos.Gallery, "Galerie")
	data.Options = types.GalleryCategories

	if err := s.renderTemplate(w, r, "page.admin.gallery", data); err != nil {
		s.logger.WithError(err).Error("failed to render gallery admin page")
		s.internalServerError(w)
	}
}

func (s *Service) handleCreateGalleryItem(w http.ResponseWriter, r *http.Request) {
	var item types.GalleryItem
	if err := s.decodeAndValidate(r, &item); err != nil {
		s.redirectWithError(w, r, galleryPath, err.Error())
		return
	}

	url, uploaded, err := s.uploadFromForm(r, "image", s.config.ImageBucket, "gallery")
	if err != nil {
		s.logger.WithError(err).Error("failed to upload gallery photo")
		s.redirectWithError(w, r, galleryPath, "unable to upload the photo")
		return
	}
	if uploaded {
		item.ImageURL = &url
	}
	if item.ImageURL == nil || *item.ImageURL == "" {
		s.redirectWithError(w, r, galleryPath, "a photo is required")
		return
	}

	if _, ok := postedOrderIndex(r); !ok {
		item.OrderIndex = nextOrderIndex(r.Context(), s.repos.Gallery)
	}

	adminCreate(s, w, r, s.repos.Gallery, galleryPath, "photo", &item)
}

func (s *Service) handleUpdateGalleryItem(w http.ResponseWriter, r *http.Request) {
	var item types.GalleryItem
	if err := s.decodeAndValidate(r, &item); err != nil {
		s.redirectWithError(w, r, galleryPath, err.Error())
		return
	}

	url, uploaded, err := s.uploadFromForm(r, "image", s.config.ImageBucket, "gallery")
	if err != nil {
		s.logger.WithError(err).Error("failed to upload gallery photo")
		s.redirectWithError(w, r, galleryPath, "unable to upload the photo")
		return
	}
	if uploaded {
		item.ImageURL = &url
	}

	adminUpdate(s, w, r, s.repos.Gallery, galleryPath, "photo", &item)
}

func (s *Service) handleDeleteGalleryItem(w http.ResponseWriter, r *http.Request) {
	adminDelete(s, w, r, s.repos.Gallery, galleryPath, "photo")
}
