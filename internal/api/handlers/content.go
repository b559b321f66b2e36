package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maasproduction/studio-api/internal/api/dto/common"
	"github.com/maasproduction/studio-api/internal/service"
	"github.com/maasproduction/studio-api/internal/utils"
)

// ContentHandler serves the site's published content as plain JSON for
// the rendering layer.
type ContentHandler struct {
	contentService *service.ContentService
}

// NewContentHandler creates a new content handler
func NewContentHandler(contentService *service.ContentService) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

// ListWeddingStories returns all stories; ?featured=1 narrows to the
// featured set used on the homepage.
func (h *ContentHandler) ListWeddingStories(c *gin.Context) {
	featured := c.Query("featured") == "1" || c.Query("featured") == "true"

	stories, err := h.contentService.WeddingStories(c.Request.Context(), featured)
	if err != nil {
		utils.HandleAPIError(c, err, http.StatusInternalServerError, common.ErrCodeInternalServer, "Failed to load wedding stories")
		return
	}

	utils.HandleSuccess(c, stories)
}

// GetWeddingStory returns a single story with its gallery.
func (h *ContentHandler) GetWeddingStory(c *gin.Context) {
	story, err := h.contentService.StoryBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		utils.HandleAPIError(c, err, http.StatusInternalServerError, common.ErrCodeInternalServer, "Failed to load wedding story")
		return
	}
	if story == nil {
		utils.HandleAPIError(c, nil, http.StatusNotFound, common.ErrCodeNotFound, "Wedding story not found")
		return
	}

	utils.HandleSuccess(c, story)
}

// ListFilms returns all published films.
func (h *ContentHandler) ListFilms(c *gin.Context) {
	films, err := h.contentService.Films(c.Request.Context())
	if err != nil {
		utils.HandleAPIError(c, err, http.StatusInternalServerError, common.ErrCodeInternalServer, "Failed to load films")
		return
	}

	utils.HandleSuccess(c, films)
}

// ListTestimonials returns the most recent testimonials.
func (h *ContentHandler) ListTestimonials(c *gin.Context) {
	testimonials, err := h.contentService.Testimonials(c.Request.Context())
	if err != nil {
		utils.HandleAPIError(c, err, http.StatusInternalServerError, common.ErrCodeInternalServer, "Failed to load testimonials")
		return
	}

	utils.HandleSuccess(c, testimonials)
}

// ListGallery returns all curated gallery images.
func (h *ContentHandler) ListGallery(c *gin.Context) {
	images, err := h.contentService.Gallery(c.Request.Context())
	if err != nil {
		utils.HandleAPIError(c, err, http.StatusInternalServerError, common.ErrCodeInternalServer, "Failed to load gallery")
		return
	}

	utils.HandleSuccess(c, images)
}

// ListAlbums returns all album showcases.
func (h *ContentHandler) ListAlbums(c *gin.Context) {
	albums, err := h.contentService.Albums(c.Request.Context())
	if err != nil {
		utils.HandleAPIError(c, err, http.StatusInternalServerError, common.ErrCodeInternalServer, "Failed to load albums")
		return
	}

	utils.HandleSuccess(c, albums)
}

// ListPreWeddingShoots returns all pre-wedding sessions.
func (h *ContentHandler) ListPreWeddingShoots(c *gin.Context) {
	shoots, err := h.contentService.PreWeddingShoots(c.Request.Context())
	if err != nil {
		utils.HandleAPIError(c, err, http.StatusInternalServerError, common.ErrCodeInternalServer, "Failed to load pre-wedding shoots")
		return
	}

	utils.HandleSuccess(c, shoots)
}

// GetHeroImage returns the active homepage hero, if any.
func (h *ContentHandler) GetHeroImage(c *gin.Context) {
	hero, err := h.contentService.HeroImage(c.Request.Context())
	if err != nil {
		utils.HandleAPIError(c, err, http.StatusInternalServerError, common.ErrCodeInternalServer, "Failed to load hero image")
		return
	}

	utils.HandleSuccess(c, hero)
}

// GetAbout returns the about page content.
func (h *ContentHandler) GetAbout(c *gin.Context) {
	about, err := h.contentService.About(c.Request.Context())
	if err != nil {
		utils.HandleAPIError(c, err, http.StatusInternalServerError, common.ErrCodeInternalServer, "Failed to load about page")
		return
	}
	if about == nil {
		utils.HandleAPIError(c, nil, http.StatusNotFound, common.ErrCodeNotFound, "About page not found")
		return
	}

	utils.HandleSuccess(c, about)
}
