package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/maasproduction/studio-api/internal/api/handlers"
)

// SetupContentRoutes configures the read-only content endpoints
// consumed by the site's rendering layer.
func SetupContentRoutes(router *gin.RouterGroup, content *handlers.ContentHandler) {
	group := router.Group("/content")
	{
		group.GET("/wedding-stories", content.ListWeddingStories)
		group.GET("/wedding-stories/:slug", content.GetWeddingStory)
		group.GET("/films", content.ListFilms)
		group.GET("/testimonials", content.ListTestimonials)
		group.GET("/gallery", content.ListGallery)
		group.GET("/albums", content.ListAlbums)
		group.GET("/pre-wedding", content.ListPreWeddingShoots)
		group.GET("/hero", content.GetHeroImage)
		group.GET("/about", content.GetAbout)
	}
}
