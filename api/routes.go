package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes binds every handler to its route
func setupRoutes(r chi.Router, handlers *routeHandlers) {
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/health", handlers.healthHandler.status())

		// Post endpoints
		r.Route("/api/posts", func(r chi.Router) {
			r.Get("/", handlers.postHandler.listPosts())
			r.Post("/", handlers.postHandler.createPost())
			r.Get("/{postID}", handlers.postHandler.getPost())
			r.Put("/{postID}", handlers.postHandler.replacePost())
			r.Patch("/{postID}", handlers.postHandler.updatePost())
			r.Delete("/{postID}", handlers.postHandler.deletePost())
		})
	})
}
