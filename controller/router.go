package controller

import (
	"crypto/subtle"
	"dojo/app_error"
	"dojo/repository"
	"dojo/service"
	"time"

	"github.com/gin-contrib/cache"
	"github.com/gin-contrib/cache/persistence"
	"github.com/gin-gonic/gin"
)

type RouteInfo struct {
	Method      string
	Path        string
	HandlerFunc gin.HandlerFunc
	// Cached GET responses are served from the page cache until the next
	// catalog swap or until the TTL expires.
	Cached      bool
	AdminOnly   bool
}

type Dependencies struct {
	TechniqueService *service.TechniqueService
	ScheduleService  *service.ScheduleService
	CacheStore       *persistence.InMemoryStore
	CacheTTL         time.Duration
	AdminToken       string
}

func SetRoutes(r *gin.Engine, deps Dependencies) {
	routes := make([]RouteInfo, 0)
	routes = append(routes, setupTechniqueController(deps)...)
	routes = append(routes, setupScheduleController(deps)...)

	if deps.CacheStore != nil {
		// stale pages must not outlive the snapshot they were rendered from
		deps.TechniqueService.OnSwap(func(_ *repository.Snapshot) {
			_ = deps.CacheStore.Flush()
		})
	}

	api := r.Group("/api")
	for _, route := range routes {
		handlerfuncs := make([]gin.HandlerFunc, 0)
		if route.AdminOnly {
			handlerfuncs = append(handlerfuncs, AdminMiddleware(deps.AdminToken))
		}
		handler := route.HandlerFunc
		if route.Cached && deps.CacheStore != nil {
			handler = cache.CachePage(deps.CacheStore, deps.CacheTTL, handler)
		}
		handlerfuncs = append(handlerfuncs, handler)
		api.Handle(route.Method, route.Path, handlerfuncs...)
	}
}

// AdminMiddleware guards maintenance routes with a shared token passed in
// the X-Admin-Token header. An empty configured token disables the routes.
func AdminMiddleware(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token == "" {
			app_error.Respond(c, app_error.ErrReloadDisabled)
			c.Abort()
			return
		}
		given := c.GetHeader("X-Admin-Token")
		if subtle.ConstantTimeCompare([]byte(given), []byte(token)) != 1 {
			app_error.Respond(c, app_error.ErrUnauthorized)
			c.Abort()
			return
		}
		c.Next()
	}
}
