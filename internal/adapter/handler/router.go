package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/meetinglog-app/meetinglog/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg                *config.Config
	meetingHandler     *Meeting
	actionItemHandler  *ActionItem
	tagHandler         *Tag
	templateHandler    *Template
	searchHandler      *Search
	participantHandler *Participant
}

// NewRouter creates a new router with all handlers
func NewRouter(
	cfg *config.Config,
	meetingHandler *Meeting,
	actionItemHandler *ActionItem,
	tagHandler *Tag,
	templateHandler *Template,
	searchHandler *Search,
	participantHandler *Participant,
) *Router {
	return &Router{
		cfg:                cfg,
		meetingHandler:     meetingHandler,
		actionItemHandler:  actionItemHandler,
		tagHandler:         tagHandler,
		templateHandler:    templateHandler,
		searchHandler:      searchHandler,
		participantHandler: participantHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupMeetingRoutes(v1)
	rt.setupActionItemRoutes(v1)
	rt.setupTagRoutes(v1)
	rt.setupTemplateRoutes(v1)
	rt.setupSearchRoutes(v1)
	rt.setupParticipantRoutes(v1)
}

// setupMeetingRoutes configures meeting and version routes
func (rt *Router) setupMeetingRoutes(g *echo.Group) {
	meetings := g.Group("/meetings")

	meetings.POST("", rt.meetingHandler.CreateMeeting)
	meetings.GET("", rt.meetingHandler.ListMeetings)
	meetings.GET("/:id", rt.meetingHandler.GetMeeting)
	meetings.PUT("/:id", rt.meetingHandler.UpdateMeeting)
	meetings.DELETE("/:id", rt.meetingHandler.DeleteMeeting)

	meetings.GET("/:id/versions", rt.meetingHandler.GetVersionHistory)
	meetings.POST("/:id/restore", rt.meetingHandler.RestoreVersion)

	meetings.POST("/:id/participants", rt.participantHandler.LinkParticipant)
	meetings.POST("/:id/tags", rt.participantHandler.LinkTag)
}

// setupActionItemRoutes configures action item routes
func (rt *Router) setupActionItemRoutes(g *echo.Group) {
	items := g.Group("/action-items")

	items.POST("", rt.actionItemHandler.CreateActionItem)
	items.GET("", rt.actionItemHandler.ListActionItems)
	items.GET("/summary", rt.actionItemHandler.GetSummary)
	items.GET("/:id", rt.actionItemHandler.GetActionItem)
	items.PUT("/:id", rt.actionItemHandler.UpdateActionItem)
	items.DELETE("/:id", rt.actionItemHandler.DeleteActionItem)
}

// setupTagRoutes configures tag routes
func (rt *Router) setupTagRoutes(g *echo.Group) {
	tags := g.Group("/tags")

	tags.POST("", rt.tagHandler.CreateTag)
	tags.GET("", rt.tagHandler.ListTags)
	tags.GET("/:id", rt.tagHandler.GetTag)
	tags.PUT("/:id", rt.tagHandler.UpdateTag)
	tags.DELETE("/:id", rt.tagHandler.DeleteTag)
}

// setupTemplateRoutes configures template routes
func (rt *Router) setupTemplateRoutes(g *echo.Group) {
	templates := g.Group("/templates")

	templates.POST("", rt.templateHandler.CreateTemplate)
	templates.GET("", rt.templateHandler.ListTemplates)
	templates.GET("/:id", rt.templateHandler.GetTemplate)
	templates.PUT("/:id", rt.templateHandler.UpdateTemplate)
	templates.DELETE("/:id", rt.templateHandler.DeleteTemplate)
}

// setupSearchRoutes configures search routes
func (rt *Router) setupSearchRoutes(g *echo.Group) {
	g.POST("/search", rt.searchHandler.Search)
}

// setupParticipantRoutes configures participant routes
func (rt *Router) setupParticipantRoutes(g *echo.Group) {
	g.GET("/participants", rt.participantHandler.ListParticipants)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}
