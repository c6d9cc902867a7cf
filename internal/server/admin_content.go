package server

import (
	"context"
	"net/http"
	"time"

	"lumiere/pkg/types"
)

const contentPath = "/admin/content"

type AdminContentData struct {
	types.BasePageData
	Headings []*types.PageHeading
	Sections []*types.ContentSection
	Mission  []*types.MissionVision
	Settings []*types.Setting
}

func (s *Service) handleAdminContent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	data := AdminContentData{
		BasePageData: types.BasePageData{
			Title:  "Contenu des pages",
			Notice: r.URL.Query().Get("notice"),
			Error:  r.URL.Query().Get("error"),
		},
	}

	var err error
	if data.Headings, err = s.repos.Headings.All(ctx); err != nil {
		s.logger.WithError(err).Error("failed to list page headings")
		data.Error = "Erreur de chargement: " + err.Error()
	}
	if data.Sections, err = s.repos.Sections.All(ctx); err != nil {
		s.logger.WithError(err).Error("failed to list content sections")
		data.Error = "Erreur de chargement: " + err.Error()
	}
	if data.Mission, err = s.repos.Mission.All(ctx); err != nil {
		s.logger.WithError(err).Error("failed to list mission/vision rows")
		data.Error = "Erreur de chargement: " + err.Error()
	}
	if data.Settings, err = s.repos.Settings.All(ctx); err != nil {
		s.logger.WithError(err).Error("failed to list settings")
		data.Error = "Erreur de chargement: " + err.Error()
	}

	if err := s.renderTemplate(w, r, "page.admin.content", &data); err != nil {
		s.logger.WithError(err).Error("failed to render content admin page")
		s.internalServerError(w)
	}
}

func (s *Service) handleUpsertHeading(w http.ResponseWriter, r *http.Request) {
	var heading types.PageHeading
	if err := s.decodeAndValidate(r, &heading); err != nil {
		s.redirectWithError(w, r, contentPath, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := s.repos.Headings.Upsert(ctx, &heading); err != nil {
		s.logger.WithError(err).WithField("page", heading.PageName).Error("failed to upsert page heading")
		s.redirectWithError(w, r, contentPath, "unable to save the heading")
		return
	}

	s.redirectWithNotice(w, r, contentPath, "heading saved")
}

func (s *Service) handleUpsertSection(w http.ResponseWriter, r *http.Request) {
	var section types.ContentSection
	if err := s.decodeAndValidate(r, &section); err != nil {
		s.redirectWithError(w, r, contentPath, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := s.repos.Sections.Upsert(ctx, &section); err != nil {
		s.logger.WithError(err).WithField("section", section.SectionName).Error("failed to upsert content section")
		s.redirectWithError(w, r, contentPath, "unable to save the section")
		return
	}

	s.redirectWithNotice(w, r, contentPath, "section saved")
}

func (s *Service) handleUpsertMissionVision(w http.ResponseWriter, r *http.Request) {
	var row types.MissionVision
	if err := s.decodeAndValidate(r, &row); err != nil {
		s.redirectWithError(w, r, contentPath, err.Error())
		return
	}

	url, uploaded, err := s.uploadFromForm(r, "image", s.config.ImageBucket, "mission")
	if err != nil {
		s.logger.WithError(err).Error("failed to upload mission/vision image")
		s.redirectWithError(w, r, contentPath, "unable to upload the image")
		return
	}
	if uploaded {
		row.ImageURL = &url
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := s.repos.Mission.Upsert(ctx, &row); err != nil {
		s.logger.WithError(err).WithField("section", row.SectionName).Error("failed to upsert mission/vision row")
		s.redirectWithError(w, r, contentPath, "unable to save the section")
		return
	}

	s.redirectWithNotice(w, r, contentPath, "section saved")
}

func (s *Service) handleUpsertSetting(w http.ResponseWriter, r *http.Request) {
	var setting types.Setting
	if err := s.decodeAndValidate(r, &setting); err != nil {
		s.redirectWithError(w, r, contentPath, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := s.repos.Settings.Upsert(ctx, &setting); err != nil {
		s.logger.WithError(err).WithField("key", setting.SettingKey).Error("failed to upsert setting")
		s.redirectWithError(w, r, contentPath, "unable to save the setting")
		return
	}

	s.redirectWithNotice(w, r, contentPath, "setting saved")
}
