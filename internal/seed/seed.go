package seed

import (
	"context"
	"fmt"

	"lumiere/internal/store"
	"lumiere/pkg/types"
)

// SeedContent inserts the default content for every category that is still
// empty. Already-populated categories are left alone so reseeding never
// clobbers admin edits.
func SeedContent(ctx context.Context, repos *store.Repositories) error {
	if err := seedCategory(ctx, repos.Features, DefaultFeatures()); err != nil {
		return fmt.Errorf("seed features: %w", err)
	}
	if err := seedCategory(ctx, repos.Services, DefaultServices()); err != nil {
		return fmt.Errorf("seed services: %w", err)
	}
	if err := seedCategory(ctx, repos.Events, DefaultEvents()); err != nil {
		return fmt.Errorf("seed events: %w", err)
	}
	if err := seedCategory(ctx, repos.Testimonials, DefaultTestimonials()); err != nil {
		return fmt.Errorf("seed testimonials: %w", err)
	}
	if err := seedCategory(ctx, repos.Members, DefaultMembers()); err != nil {
		return fmt.Errorf("seed community members: %w", err)
	}
	if err := seedCategory(ctx, repos.Podcasts, DefaultPodcasts()); err != nil {
		return fmt.Errorf("seed podcasts: %w", err)
	}
	if err := seedCategory(ctx, repos.Videos, DefaultVideos()); err != nil {
		return fmt.Errorf("seed short videos: %w", err)
	}
	if err := seedCategory(ctx, repos.Gallery, DefaultGalleryItems()); err != nil {
		return fmt.Errorf("seed gallery items: %w", err)
	}

	for _, mv := range DefaultMissionVision() {
		if err := repos.Mission.Upsert(ctx, mv); err != nil {
			return fmt.Errorf("seed mission/vision %q: %w", mv.SectionName, err)
		}
	}

	return nil
}

func seedCategory[T any, P interface {
	*T
	RowMeta() *types.Meta
}](ctx context.Context, repo *store.Repository[T, P], items []P) error {
	existing, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if existing > 0 {
		return nil
	}

	for _, item := range items {
		if err := repo.Create(ctx, item); err != nil {
			return err
		}
	}

	return nil
}
