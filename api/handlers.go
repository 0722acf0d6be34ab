package api

import (
	"time"

	"github.com/openblog/backend/database"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(postStore database.PostStore, startupTime time.Time) *routeHandlers {
	return &routeHandlers{
		postHandler:   newPostHandler(postStore),
		healthHandler: newHealthHandler(startupTime),
	}
}
