package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"lumiere/internal/store"
	"lumiere/pkg/types"
)

// contentRow mirrors the store package's row constraint so the admin
// handlers can share CRUD plumbing across categories.
type contentRow[T any] interface {
	*T
	RowMeta() *types.Meta
}

// AdminPageData is the shape shared by every admin category page: the rows,
// an optional row being edited, and transient notice/error banners.
type AdminPageData[T any] struct {
	types.BasePageData
	Items   []*T
	Editing *T

	// Options feeds the page's enumeration dropdown when the category has
	// one (feature icons, service days, gallery categories).
	Options []string
}

// adminPageData lists a category for its admin page. A store error surfaces
// as an inline message over an empty list; the admin can retry.
func adminPageData[T any, P contentRow[T]](s *Service, r *http.Request, repo *store.Repository[T, P], title string) *AdminPageData[T] {
	data := &AdminPageData[T]{
		BasePageData: types.BasePageData{
			Title:  title,
			Notice: r.URL.Query().Get("notice"),
			Error:  r.URL.Query().Get("error"),
		},
	}

	items, err := repo.All(r.Context())
	if err != nil {
		s.logger.WithError(err).WithField("page", title).Error("failed to list admin rows")
		data.Error = "Erreur de chargement: " + err.Error()
		items = nil
	}
	data.Items = items

	if editID := r.URL.Query().Get("edit"); editID != "" {
		editing, err := repo.ByID(r.Context(), editID)
		if err != nil && !errors.Is(err, types.ErrRowNotFound) {
			s.logger.WithError(err).WithField("id", editID).Error("failed to fetch row for editing")
		}
		data.Editing = editing
	}

	return data
}

// adminCreate inserts a decoded, validated, upload-substituted row with
// order_index defaulting to the current row count.
func adminCreate[T any, P contentRow[T]](s *Service, w http.ResponseWriter, r *http.Request, repo *store.Repository[T, P], path, noun string, item P) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := repo.Create(ctx, item); err != nil {
		s.logger.WithError(err).Error("failed to create " + noun)
		s.redirectWithError(w, r, path, "unable to save the "+noun)
		return
	}

	s.redirectWithNotice(w, r, path, noun+" added")
}

func adminUpdate[T any, P contentRow[T]](s *Service, w http.ResponseWriter, r *http.Request, repo *store.Repository[T, P], path, noun string, item P) {
	id := r.PathValue("id")
	if id == "" {
		s.redirectWithError(w, r, path, "missing row id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := repo.Update(ctx, id, item); err != nil {
		s.logger.WithError(err).WithField("id", id).Error("failed to update " + noun)
		s.redirectWithError(w, r, path, "unable to save the "+noun)
		return
	}

	s.redirectWithNotice(w, r, path, noun+" updated")
}

// adminDelete removes a row permanently. The confirmation step lives in the
// admin page (a confirm dialog on the delete form); media files the row
// pointed at are left in the object store.
func adminDelete[T any, P contentRow[T]](s *Service, w http.ResponseWriter, r *http.Request, repo *store.Repository[T, P], path, noun string) {
	id := r.PathValue("id")
	if id == "" {
		s.redirectWithError(w, r, path, "missing row id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := repo.Delete(ctx, id); err != nil {
		s.logger.WithError(err).WithField("id", id).Error("failed to delete " + noun)
		s.redirectWithError(w, r, path, "unable to delete the "+noun)
		return
	}

	s.redirectWithNotice(w, r, path, noun+" deleted")
}

// nextOrderIndex implements the new-row ordering default: append at the end
// of the current list.
func nextOrderIndex[T any, P contentRow[T]](ctx context.Context, repo *store.Repository[T, P]) int {
	count, err := repo.Count(ctx)
	if err != nil {
		return 0
	}
	return count
}

// postedOrderIndex reports whether the form carried an explicit order index.
func postedOrderIndex(r *http.Request) (int, bool) {
	raw := r.PostFormValue("orderIndex")
	if raw == "" {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}

type AdminDashboardData struct {
	types.BasePageData
	Counts         map[string]int
	PrayerRequests []*types.PrayerRequest
	Signups        []*types.EmailSignup
}

func (s *Service) handleAdminDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	counts := map[string]int{}
	count := func(name string, fn func(context.Context) (int, error)) {
		n, err := fn(ctx)
		if err != nil {
			s.logger.WithError(err).WithField("category", name).Warn("failed to count rows")
			return
		}
		counts[name] = n
	}

	count("features", s.repos.Features.Count)
	count("services", s.repos.Services.Count)
	count("events", s.repos.Events.Count)
	count("testimonials", s.repos.Testimonials.Count)
	count("members", s.repos.Members.Count)
	count("podcasts", s.repos.Podcasts.Count)
	count("videos", s.repos.Videos.Count)
	count("gallery", s.repos.Gallery.Count)

	data := AdminDashboardData{
		BasePageData: types.BasePageData{
			Title:  "Administration",
			Notice: r.URL.Query().Get("notice"),
			Error:  r.URL.Query().Get("error"),
		},
		Counts: counts,
	}

	var err error
	if data.PrayerRequests, err = s.repos.Forms.LatestPrayerRequests(ctx, 5); err != nil {
		s.logger.WithError(err).Warn("failed to list latest prayer requests")
	}
	if data.Signups, err = s.repos.Forms.LatestEmailSignups(ctx, 5); err != nil {
		s.logger.WithError(err).Warn("failed to list latest email signups")
	}

	if err := s.renderTemplate(w, r, "page.admin", &data); err != nil {
		s.logger.WithError(err).Error("failed to render admin dashboard")
		s.internalServerError(w)
	}
}
