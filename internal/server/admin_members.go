package server

import (
	"net/http"

	"lumiere/pkg/types"
)

const membersPath = "/admin/members"

func (s *Service) handleAdminMembers(w http.ResponseWriter, r *http.Request) {
	data := adminPageData(s, r, s.repos.Members, "Communauté")

	if err := s.renderTemplate(w, r, "page.admin.members", data); err != nil {
		s.logger.WithError(err).Error("failed to render members admin page")
		s.internalServerError(w)
	}
}

func (s *Service) handleCreateMember(w http.ResponseWriter, r *http.Request) {
	var member types.CommunityMember
	if err := s.decodeAndValidate(r, &member); err != nil {
		s.redirectWithError(w, r, membersPath, err.Error())
		return
	}

	url, uploaded, err := s.uploadFromForm(r, "image", s.config.ImageBucket, "member")
	if err != nil {
		s.logger.WithError(err).Error("failed to upload member photo")
		s.redirectWithError(w, r, membersPath, "unable to upload the photo")
		return
	}
	if uploaded {
		member.ImageURL = &url
	}

	if _, ok := postedOrderIndex(r); !ok {
		member.OrderIndex = nextOrderIndex(r.Context(), s.repos.Members)
	}

	adminCreate(s, w, r, s.repos.Members, membersPath, "member", &member)
}

func (s *Service) handleUpdateMember(w http.ResponseWriter, r *http.Request) {
	var member types.CommunityMember
	if err := s.decodeAndValidate(r, &member); err != nil {
		s.redirectWithError(w, r, membersPath, err.Error())
		return
	}

	url, uploaded, err := s.uploadFromForm(r, "image", s.config.ImageBucket, "member")
	if err != nil {
		s.logger.WithError(err).Error("failed to upload member photo")
		s.redirectWithError(w, r, membersPath, "unable to upload the photo")
		return
	}
	if uploaded {
		member.ImageURL = &url
	}

	adminUpdate(s, w, r, s.repos.Members, membersPath, "member", &member)
}

func (s *Service) handleDeleteMember(w http.ResponseWriter, r *http.Request) {
	adminDelete(s, w, r, s.repos.Members, membersPath, "member")
}
