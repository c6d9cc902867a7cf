package server

import (
	"context"
	"net/http"
	"strconv"

	"lumiere/internal/media"
	"lumiere/internal/seed"
	"lumiere/pkg/types"

	"github.com/sirupsen/logrus"
)

const galleryPageSize = 9

// PodcastView decorates a podcast row with its display-formatted duration.
type PodcastView struct {
	*types.Podcast
	Duration string
}

// VideoView resolves a short video's playback source for the template:
// either an embed URL (YouTube) or a direct file URL, plus a thumbnail.
type VideoView struct {
	*types.ShortVideo
	Duration  string
	EmbedURL  string
	FileURL   string
	Thumbnail string
}

type GalleryTile struct {
	*types.GalleryItem
	GridClass string
}

type HomePageData struct {
	types.BasePageData
	Features     []*types.Feature
	Services     []*types.Service
	Events       []*types.Event
	Testimonials []*types.Testimonial
	Members      []*types.CommunityMember
	Podcasts     []PodcastView
	Videos       []VideoView
	Gallery      []GalleryTile

	Mission *types.MissionVision
	Vision  *types.MissionVision

	ServicesHeading  *types.PageHeading
	EventsHeading    *types.PageHeading
	CommunityHeading *types.PageHeading
	CommunityCTA     *types.ContentSection
	LocationAddress  string
}

type GalleryPageData struct {
	types.BasePageData
	Tiles       []GalleryTile
	Categories  []string
	Active      string
	CurrentPage int
	TotalPages  int
}

// fetchOrFallback is the read half of every public section: rows when the
// store has them, the fixed default set when it is empty or unreachable.
// Store errors are logged and swallowed; visitors never see them.
func fetchOrFallback[T any](ctx context.Context, logger *logrus.Logger, name string, fetch func(context.Context) ([]*T, error), fallback []*T) []*T {
	rows, err := fetch(ctx)
	if err != nil {
		logger.WithError(err).WithField("section", name).Warn("falling back to default content")
		return fallback
	}
	return orFallback(rows, fallback)
}

func (s *Service) handleHome(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	data := HomePageData{
		BasePageData: types.BasePageData{
			Title:  "Grace & Faith",
			Notice: r.URL.Query().Get("notice"),
			Error:  r.URL.Query().Get("error"),
		},
		Features:     fetchOrFallback(ctx, s.logger, "features", s.repos.Features.All, seed.DefaultFeatures()),
		Services:     fetchOrFallback(ctx, s.logger, "services", s.repos.Services.All, seed.DefaultServices()),
		Events:       fetchOrFallback(ctx, s.logger, "events", s.repos.Events.All, seed.DefaultEvents()),
		Testimonials: fetchOrFallback(ctx, s.logger, "testimonials", s.repos.Testimonials.All, seed.DefaultTestimonials()),
		Members:      fetchOrFallback(ctx, s.logger, "community", s.repos.Members.All, seed.DefaultMembers()),
	}

	data.Podcasts = podcastViews(fetchOrFallback(ctx, s.logger, "podcasts", s.repos.Podcasts.All, seed.DefaultPodcasts()))
	data.Videos = videoViews(fetchOrFallback(ctx, s.logger, "videos", s.repos.Videos.All, seed.DefaultVideos()))

	galleryItems := fetchOrFallback(ctx, s.logger, "gallery", s.repos.Gallery.All, seed.DefaultGalleryItems())
	data.Gallery = galleryTiles(galleryItems)

	data.Mission = s.missionRow(ctx, "mission")
	data.Vision = s.missionRow(ctx, "vision")

	data.ServicesHeading = s.headingRow(ctx, "services")
	data.EventsHeading = s.headingRow(ctx, "events")
	data.CommunityHeading = s.headingRow(ctx, "community")
	data.CommunityCTA = s.sectionRow(ctx, "community_cta")
	data.LocationAddress = s.settingValue(ctx, "location_address")

	if err := s.renderTemplate(w, r, "page.home", &data); err != nil {
		s.logger.WithError(err).Error("failed to render home page")
		s.internalServerError(w)
		return
	}
}

func (s *Service) handleGallery(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	items := fetchOrFallback(ctx, s.logger, "gallery", s.repos.Gallery.All, seed.DefaultGalleryItems())

	active := r.URL.Query().Get("category")
	if active != "" && !types.ValidGalleryCategory(active) {
		active = ""
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	filtered := filterGalleryItems(items, active)
	pageItems, currentPage, totalPages := paginate(filtered, page, galleryPageSize)

	data := GalleryPageData{
		BasePageData: types.BasePageData{Title: "Galerie Photos - Grace & Faith"},
		Tiles:        galleryTiles(pageItems),
		Categories:   types.GalleryCategories,
		Active:       active,
		CurrentPage:  currentPage,
		TotalPages:   totalPages,
	}

	if err := s.renderTemplate(w, r, "page.gallery", &data); err != nil {
		s.logger.WithError(err).Error("failed to render gallery page")
		s.internalServerError(w)
		return
	}
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func podcastViews(rows []*types.Podcast) []PodcastView {
	out := make([]PodcastView, 0, len(rows))
	for _, p := range rows {
		out = append(out, PodcastView{
			Podcast:  p,
			Duration: media.FormatDuration(p.DurationSeconds),
		})
	}
	return out
}

func videoViews(rows []*types.ShortVideo) []VideoView {
	out := make([]VideoView, 0, len(rows))
	for _, v := range rows {
		view := VideoView{
			ShortVideo: v,
			Duration:   media.FormatDuration(v.DurationSeconds),
		}

		if v.ThumbnailURL != nil {
			view.Thumbnail = *v.ThumbnailURL
		}

		switch src := v.Source(); src.Kind {
		case types.VideoSourceUploaded:
			view.FileURL = src.URL
		case types.VideoSourceYouTube:
			if id, err := media.ExtractYouTubeID(src.URL); err == nil {
				view.EmbedURL = media.YouTubeEmbedURL(id)
				if view.Thumbnail == "" {
					view.Thumbnail = media.YouTubeThumbnail(id)
				}
			}
		}

		out = append(out, view)
	}
	return out
}

func galleryTiles(items []*types.GalleryItem) []GalleryTile {
	tiles := make([]GalleryTile, 0, len(items))
	for i, item := range items {
		tiles = append(tiles, GalleryTile{GalleryItem: item, GridClass: galleryGridClass(i)})
	}
	return tiles
}

func (s *Service) headingRow(ctx context.Context, pageName string) *types.PageHeading {
	heading, err := s.repos.Headings.ByKey(ctx, pageName)
	if err != nil {
		s.logger.WithError(err).WithField("page", pageName).Warn("failed to fetch page heading")
		return nil
	}
	return heading
}

func (s *Service) sectionRow(ctx context.Context, sectionName string) *types.ContentSection {
	section, err := s.repos.Sections.ByKey(ctx, sectionName)
	if err != nil {
		s.logger.WithError(err).WithField("section", sectionName).Warn("failed to fetch content section")
		return nil
	}
	return section
}

func (s *Service) missionRow(ctx context.Context, sectionName string) *types.MissionVision {
	row, err := s.repos.Mission.ByKey(ctx, sectionName)
	if err != nil {
		s.logger.WithError(err).WithField("section", sectionName).Warn("failed to fetch mission/vision row")
		return nil
	}
	return row
}

func (s *Service) settingValue(ctx context.Context, key string) string {
	setting, err := s.repos.Settings.ByKey(ctx, key)
	if err != nil {
		s.logger.WithError(err).WithField("setting", key).Warn("failed to fetch setting")
		return ""
	}
	if setting == nil {
		return ""
	}
	return setting.SettingValue
}
