package controller

import (
	"dojo/app_error"
	"dojo/catalog"
	"dojo/service"
	"time"

	"github.com/gin-gonic/gin"
)

type TechniqueController struct {
	service *service.TechniqueService
	stream  *CatalogStream
}

func NewTechniqueController(techniqueService *service.TechniqueService) *TechniqueController {
	return &TechniqueController{
		service: techniqueService,
		stream:  NewCatalogStream(techniqueService),
	}
}

func setupTechniqueController(deps Dependencies) []RouteInfo {
	e := NewTechniqueController(deps.TechniqueService)
	baseUrl := "/techniques"
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.getTechniquesHandler(), Cached: true},
		{Method: "GET", Path: "/grouped", HandlerFunc: e.getGroupedTechniquesHandler(), Cached: true},
		{Method: "GET", Path: "/stats", HandlerFunc: e.getStatsHandler(), Cached: true},
		{Method: "GET", Path: "/meta", HandlerFunc: e.getMetaHandler(), Cached: true},
		{Method: "GET", Path: "/ws", HandlerFunc: e.stream.WebSocketHandler},
		{Method: "POST", Path: "/reload", HandlerFunc: e.reloadHandler(), AdminOnly: true},
		{Method: "GET", Path: "/:id", HandlerFunc: e.getTechniqueHandler(), Cached: true},
		{Method: "GET", Path: "/:id/related", HandlerFunc: e.getRelatedTechniquesHandler(), Cached: true},
	}
	for i, route := range routes {
		routes[i].Path = baseUrl + route.Path
	}
	return routes
}

func filterFromQuery(c *gin.Context) service.TechniqueFilter {
	return service.TechniqueFilter{
		Query:      c.Query("q"),
		Category:   c.Query("category"),
		Difficulty: c.Query("difficulty"),
		Position:   c.Query("position"),
	}
}

// @id GetTechniques
// @Description Lists techniques. All given filters must match; "all" or an empty value skips a filter.
// @Tags techniques
// @Produce json
// @Param q query string false "Case-insensitive substring of name, description, aliases or key points"
// @Param category query string false "Category" Enums(all, submission, position, guard, guard-pass, sweep, takedown, escape, back-take)
// @Param difficulty query string false "Difficulty" Enums(all, fundamental, intermediate, advanced)
// @Param position query string false "Starting or ending position"
// @Success 200 {array} catalog.Technique
// @Failure 400 {object} ErrorResponse
// @Router /techniques [get]
func (e *TechniqueController) getTechniquesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		techniques, err := e.service.FilterTechniques(filterFromQuery(c))
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, techniques)
	}
}

// @id GetGroupedTechniques
// @Description Same filters as GetTechniques, bucketed by category in catalog order. Empty buckets are omitted.
// @Tags techniques
// @Produce json
// @Param q query string false "Search text"
// @Param category query string false "Category"
// @Param difficulty query string false "Difficulty"
// @Param position query string false "Position"
// @Success 200 {array} catalog.Group
// @Failure 400 {object} ErrorResponse
// @Router /techniques/grouped [get]
func (e *TechniqueController) getGroupedTechniquesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		groups, err := e.service.GroupTechniques(filterFromQuery(c))
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, groups)
	}
}

// @id GetTechniqueStats
// @Description Total count plus counts per category and per difficulty
// @Tags techniques
// @Produce json
// @Success 200 {object} catalog.Stats
// @Router /techniques/stats [get]
func (e *TechniqueController) getStatsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, e.service.GetStats())
	}
}

// @id GetTechniqueMeta
// @Description Value sets for the filter dropdowns and the live catalog version
// @Tags techniques
// @Produce json
// @Success 200 {object} CatalogMetaResponse
// @Router /techniques/meta [get]
func (e *TechniqueController) getMetaHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		snapshot := e.service.Snapshot()
		c.JSON(200, CatalogMetaResponse{
			Categories:    catalog.Categories,
			Difficulties:  catalog.Difficulties,
			Positions:     catalog.Positions,
			Subcategories: catalog.Subcategories,
			Version:       snapshot.Version,
			LoadedAt:      snapshot.LoadedAt,
			Source:        snapshot.Source,
		})
	}
}

// @id GetTechnique
// @Description Fetches a technique by its id
// @Tags techniques
// @Produce json
// @Param id path string true "Technique id"
// @Success 200 {object} catalog.Technique
// @Failure 404 {object} ErrorResponse
// @Router /techniques/{id} [get]
func (e *TechniqueController) getTechniqueHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		technique, err := e.service.GetTechniqueById(c.Param("id"))
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, technique)
	}
}

// @id GetRelatedTechniques
// @Description Resolves the related techniques of a technique. Ids that no longer exist are listed as dangling.
// @Tags techniques
// @Produce json
// @Param id path string true "Technique id"
// @Success 200 {object} RelatedTechniquesResponse
// @Failure 404 {object} ErrorResponse
// @Router /techniques/{id}/related [get]
func (e *TechniqueController) getRelatedTechniquesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		related, dangling, err := e.service.GetRelatedTechniques(id)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, RelatedTechniquesResponse{
			ID:       id,
			Related:  related,
			Dangling: dangling,
		})
	}
}

// @id ReloadCatalog
// @Description Re-reads the catalog source. The live catalog is only replaced when the new one validates.
// @Tags techniques
// @Produce json
// @Param X-Admin-Token header string true "Admin token"
// @Success 200 {object} ReloadResponse
// @Failure 422 {object} ReloadResponse
// @Router /techniques/reload [post]
func (e *TechniqueController) reloadHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		report, err := e.service.Reload()
		snapshot := e.service.Snapshot()
		resp := ReloadResponse{
			Accepted: err == nil,
			Version:  snapshot.Version,
			Errors:   report.Errors,
			Warnings: report.Warnings,
		}
		if err != nil {
			c.JSON(app_error.StatusFor(err), resp)
			return
		}
		c.JSON(200, resp)
	}
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type CatalogMetaResponse struct {
	Categories    []catalog.Category    `json:"categories"`
	Difficulties  []catalog.Difficulty  `json:"difficulties"`
	Positions     []catalog.Position    `json:"positions"`
	Subcategories []catalog.Subcategory `json:"subcategories"`
	Version       int64                 `json:"version"`
	LoadedAt      time.Time             `json:"loaded_at"`
	Source        string                `json:"source"`
}

type RelatedTechniquesResponse struct {
	ID       string               `json:"id"`
	Related  []*catalog.Technique `json:"related"`
	Dangling []string             `json:"dangling"`
}

type ReloadResponse struct {
	Accepted bool     `json:"accepted"`
	Version  int64    `json:"version"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}
