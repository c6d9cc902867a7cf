package server

import (
	"context"
	"embed"
	"encoding/base64"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"lumiere/internal/media"
	"lumiere/internal/storage"
	"lumiere/internal/store"
	"lumiere/pkg/types"

	"github.com/alexedwards/flow"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/go-playground/form/v4"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/securecookie"
	"github.com/lestrrat-go/jwx/v3/jwk"
	"github.com/sirupsen/logrus"
	"github.com/stripe/stripe-go/v84/client"
)

//go:embed templates static
var uiFS embed.FS
var decoder = form.NewDecoder()

type Service struct {
	logger    *logrus.Logger
	config    *types.Config
	repos     *store.Repositories
	media     storage.Store
	templates *template.Template
	validate  *validator.Validate

	cognitoClient *cognitoidentityprovider.Client
	stripeClient  *client.API
	cookie        *securecookie.SecureCookie

	jwksCache *jwk.Cache
	jwksURL   string

	server *http.Server
}

func New(
	config *types.Config,
	logger *logrus.Logger,
	cognitoClient *cognitoidentityprovider.Client,
	mediaStore storage.Store,
	repos *store.Repositories,
	jwkCache *jwk.Cache,
	jwksURL string,
) (*Service, error) {
	mux := flow.New()

	hashKey, _ := base64.StdEncoding.DecodeString(config.CookieHashKey)
	blockKey, _ := base64.StdEncoding.DecodeString(config.CookieBlockKey)

	stripeClient := &client.API{}
	stripeClient.Init(config.StripeSecretKey, nil)

	s := &Service{
		logger:        logger,
		config:        config,
		repos:         repos,
		media:         mediaStore,
		validate:      newValidator(),
		cognitoClient: cognitoClient,
		stripeClient:  stripeClient,
		cookie:        securecookie.New(hashKey, blockKey),

		jwksCache: jwkCache,
		jwksURL:   jwksURL,
		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", config.ServerPort),
			Handler:           mux,
			ReadTimeout:       time.Duration(config.ReadTimeoutSec) * time.Second,
			ReadHeaderTimeout: time.Duration(config.ReadTimeoutSec) * time.Second,
			WriteTimeout:      time.Duration(config.WriteTimeoutSec) * time.Second,
			MaxHeaderBytes:    1 << 20,
		},
	}

	templates, err := loadTemplates()
	if err != nil {
		return nil, err
	}
	s.templates = templates

	s.buildRouter(mux)

	return s, nil
}

func (s *Service) Start() error {
	return s.server.ListenAndServe()
}

func (s *Service) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Service) buildRouter(r *flow.Mux) {
	r.Use(s.StripTrailingSlash)
	r.Use(s.LoggingMiddleware)

	r.HandleFunc("/", s.handleHome, http.MethodGet)
	r.HandleFunc("/gallery", s.handleGallery, http.MethodGet)
	r.HandleFunc("/healthz", s.handleHealth, http.MethodGet)

	r.HandleFunc("/forms/prayer", s.handlePrayerRequestSubmit, http.MethodPost)
	r.HandleFunc("/forms/signup", s.handleEmailSignupSubmit, http.MethodPost)
	r.HandleFunc("/give", s.handleGivingCheckout, http.MethodPost)

	r.HandleFunc("/login", s.handleGetLogin, http.MethodGet)
	r.HandleFunc("/login", s.handlePostLogin, http.MethodPost)
	r.HandleFunc("/logout", s.handleLogout, http.MethodGet)

	r.Group(func(r *flow.Mux) {
		r.Use(s.RequireAuth)

		r.HandleFunc("/admin", s.handleAdminDashboard, http.MethodGet)

		r.HandleFunc("/admin/features", s.handleAdminFeatures, http.MethodGet)
		r.HandleFunc("/admin/features", s.handleCreateFeature, http.MethodPost)
		r.HandleFunc("/admin/features/:id", s.handleUpdateFeature, http.MethodPost)
		r.HandleFunc("/admin/features/:id/delete", s.handleDeleteFeature, http.MethodPost)

		r.HandleFunc("/admin/services", s.handleAdminServices, http.MethodGet)
		r.HandleFunc("/admin/services", s.handleCreateService, http.MethodPost)
		r.HandleFunc("/admin/services/:id", s.handleUpdateService, http.MethodPost)
		r.HandleFunc("/admin/services/:id/delete", s.handleDeleteService, http.MethodPost)

		r.HandleFunc("/admin/events", s.handleAdminEvents, http.MethodGet)
		r.HandleFunc("/admin/events", s.handleCreateEvent, http.MethodPost)
		r.HandleFunc("/admin/events/:id", s.handleUpdateEvent, http.MethodPost)
		r.HandleFunc("/admin/events/:id/delete", s.handleDeleteEvent, http.MethodPost)

		r.HandleFunc("/admin/testimonials", s.handleAdminTestimonials, http.MethodGet)
		r.HandleFunc("/admin/testimonials", s.handleCreateTestimonial, http.MethodPost)
		r.HandleFunc("/admin/testimonials/:id", s.handleUpdateTestimonial, http.MethodPost)
		r.HandleFunc("/admin/testimonials/:id/delete", s.handleDeleteTestimonial, http.MethodPost)

		r.HandleFunc("/admin/members", s.handleAdminMembers, http.MethodGet)
		r.HandleFunc("/admin/members", s.handleCreateMember, http.MethodPost)
		r.HandleFunc("/admin/members/:id", s.handleUpdateMember, http.MethodPost)
		r.HandleFunc("/admin/members/:id/delete", s.handleDeleteMember, http.MethodPost)

		r.HandleFunc("/admin/podcasts", s.handleAdminPodcasts, http.MethodGet)
		r.HandleFunc("/admin/podcasts", s.handleCreatePodcast, http.MethodPost)
		r.HandleFunc("/admin/podcasts/:id", s.handleUpdatePodcast, http.MethodPost)
		r.HandleFunc("/admin/podcasts/:id/delete", s.handleDeletePodcast, http.MethodPost)

		r.HandleFunc("/admin/videos", s.handleAdminVideos, http.MethodGet)
		r.HandleFunc("/admin/videos", s.handleCreateVideo, http.MethodPost)
		r.HandleFunc("/admin/videos/:id", s.handleUpdateVideo, http.MethodPost)
		r.HandleFunc("/admin/videos/:id/delete", s.handleDeleteVideo, http.MethodPost)

		r.HandleFunc("/admin/gallery", s.handleAdminGallery, http.MethodGet)
		r.HandleFunc("/admin/gallery", s.handleCreateGalleryItem, http.MethodPost)
		r.HandleFunc("/admin/gallery/:id", s.handleUpdateGalleryItem, http.MethodPost)
		r.HandleFunc("/admin/gallery/:id/delete", s.handleDeleteGalleryItem, http.MethodPost)

		r.HandleFunc("/admin/content", s.handleAdminContent, http.MethodGet)
		r.HandleFunc("/admin/content/heading", s.handleUpsertHeading, http.MethodPost)
		r.HandleFunc("/admin/content/section", s.handleUpsertSection, http.MethodPost)
		r.HandleFunc("/admin/content/mission", s.handleUpsertMissionVision, http.MethodPost)
		r.HandleFunc("/admin/content/setting", s.handleUpsertSetting, http.MethodPost)
	})

	staticRoot, err := fs.Sub(uiFS, "static")
	if err != nil {
		s.logger.WithError(err).Fatal("failed to mount static assets")
	}
	r.Handle("/static/...", http.StripPrefix("/static/", http.FileServer(http.FS(staticRoot))), http.MethodGet)
}

func loadTemplates() (*template.Template, error) {
	funcMap := template.FuncMap{
		"deref": func(s *string) string {
			if s == nil {
				return ""
			}
			return *s
		},
		"derefOr": func(s *string, defaultVal string) string {
			if s == nil || *s == "" {
				return defaultVal
			}
			return *s
		},
		"formatDuration": media.FormatDuration,
		"seq": func(n int) []int {
			out := make([]int, n)
			for i := range out {
				out[i] = i + 1
			}
			return out
		},
		"add": func(a, b int) int { return a + b },
		"sub": func(a, b int) int { return a - b },
	}

	t := template.New("").Funcs(funcMap)
	err := fs.WalkDir(uiFS, "templates", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".html") {
			return nil
		}

		data, err := fs.ReadFile(uiFS, path)
		if err != nil {
			return fmt.Errorf("read template %s: %w", path, err)
		}

		if _, err := t.Parse(string(data)); err != nil {
			return fmt.Errorf("parse template %s: %w", path, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return t, nil
}
