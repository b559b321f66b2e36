package service

import (
	"context"
	"fmt"

	"github.com/maasproduction/studio-api/internal/sanity"
)

// ContentReader is the read side of the content store.
type ContentReader interface {
	Query(ctx context.Context, query string, params map[string]interface{}, result interface{}) error
}

// ContentService serves the site's published content to the rendering
// layer as plain data objects.
type ContentService struct {
	store ContentReader
}

// NewContentService creates a new content service
func NewContentService(store ContentReader) *ContentService {
	return &ContentService{store: store}
}

// WeddingStories returns all published stories, or only the three most
// recent featured ones.
func (s *ContentService) WeddingStories(ctx context.Context, featuredOnly bool) ([]sanity.WeddingStory, error) {
	query := sanity.WeddingStoriesQuery
	if featuredOnly {
		query = sanity.FeaturedStoriesQuery
	}

	stories := []sanity.WeddingStory{}
	if err := s.store.Query(ctx, query, nil, &stories); err != nil {
		return nil, fmt.Errorf("failed to load wedding stories: %w", err)
	}
	return stories, nil
}

// StoryBySlug returns a single story with its gallery, or nil when no
// story has the slug.
func (s *ContentService) StoryBySlug(ctx context.Context, slug string) (*sanity.WeddingStory, error) {
	var story *sanity.WeddingStory
	params := map[string]interface{}{"slug": slug}
	if err := s.store.Query(ctx, sanity.StoryBySlugQuery, params, &story); err != nil {
		return nil, fmt.Errorf("failed to load wedding story %q: %w", slug, err)
	}
	return story, nil
}

// Films returns all published films, newest first.
func (s *ContentService) Films(ctx context.Context) ([]sanity.Film, error) {
	films := []sanity.Film{}
	if err := s.store.Query(ctx, sanity.FilmsQuery, nil, &films); err != nil {
		return nil, fmt.Errorf("failed to load films: %w", err)
	}
	return films, nil
}

// Testimonials returns the five most recent testimonials.
func (s *ContentService) Testimonials(ctx context.Context) ([]sanity.Testimonial, error) {
	testimonials := []sanity.Testimonial{}
	if err := s.store.Query(ctx, sanity.TestimonialsQuery, nil, &testimonials); err != nil {
		return nil, fmt.Errorf("failed to load testimonials: %w", err)
	}
	return testimonials, nil
}

// Gallery returns all curated gallery images, newest first.
func (s *ContentService) Gallery(ctx context.Context) ([]sanity.GalleryImage, error) {
	images := []sanity.GalleryImage{}
	if err := s.store.Query(ctx, sanity.GalleryQuery, nil, &images); err != nil {
		return nil, fmt.Errorf("failed to load gallery: %w", err)
	}
	return images, nil
}

// Albums returns all album showcases.
func (s *ContentService) Albums(ctx context.Context) ([]sanity.Album, error) {
	albums := []sanity.Album{}
	if err := s.store.Query(ctx, sanity.AlbumsQuery, nil, &albums); err != nil {
		return nil, fmt.Errorf("failed to load albums: %w", err)
	}
	return albums, nil
}

// PreWeddingShoots returns all pre-wedding sessions.
func (s *ContentService) PreWeddingShoots(ctx context.Context) ([]sanity.PreWeddingShoot, error) {
	shoots := []sanity.PreWeddingShoot{}
	if err := s.store.Query(ctx, sanity.PreWeddingQuery, nil, &shoots); err != nil {
		return nil, fmt.Errorf("failed to load pre-wedding shoots: %w", err)
	}
	return shoots, nil
}

// HeroImage returns the active homepage hero, or nil when none is active.
func (s *ContentService) HeroImage(ctx context.Context) (*sanity.HeroImage, error) {
	var hero *sanity.HeroImage
	if err := s.store.Query(ctx, sanity.HeroImageQuery, nil, &hero); err != nil {
		return nil, fmt.Errorf("failed to load hero image: %w", err)
	}
	return hero, nil
}

// About returns the about page document, or nil when unpublished.
func (s *ContentService) About(ctx context.Context) (*sanity.About, error) {
	var about *sanity.About
	if err := s.store.Query(ctx, sanity.AboutQuery, nil, &about); err != nil {
		return nil, fmt.Errorf("failed to load about page: %w", err)
	}
	return about, nil
}
