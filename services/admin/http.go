package admin

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nvbf/league-live/pkg/auth"
	"github.com/nvbf/league-live/pkg/httpError"
	"github.com/nvbf/league-live/pkg/live"
	"github.com/nvbf/league-live/repos/league"
	"github.com/nvbf/league-live/repos/resend"
)

// Router is the interface for a router.
type Router interface {
	GET(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	POST(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	PATCH(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	DELETE(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	Use(middleware ...gin.HandlerFunc) gin.IRoutes
	Group(relativePath string, handlers ...gin.HandlerFunc) *gin.RouterGroup
}

// Admin is the interface for the admin service.
type Admin interface {
	AddEvent(ctx context.Context, matchID, author string, request EventRequest) (live.MatchEvent, error)
	DeleteEvent(ctx context.Context, matchID, eventID, author string) error
	UpdateMatch(ctx context.Context, matchID, author string, update league.MatchUpdate) (live.Match, error)
	SendReport(ctx context.Context, matchID string, to []string) error
}

// HTTPOptions contains all the options needed for the HTTP handler.
type HTTPOptions struct {

	// The service we provides the HTTP transport for.
	Service Admin

	// The router instance to configure the HTTP routes.
	Router Router
}

// NewHTTPHandler creates a new HTTP handler.
func NewHTTPHandler(opts HTTPOptions) {
	r := opts.Router
	h := &httpHandler{opts}
	r.POST("/matches/:match_id/events", h.addEventHandler)
	r.DELETE("/matches/:match_id/events/:event_id", h.deleteEventHandler)
	r.PATCH("/matches/:match_id", h.updateMatchHandler)
	r.POST("/matches/:match_id/report", h.reportHandler)
}

type httpHandler struct {
	HTTPOptions
}

func (s *httpHandler) addEventHandler(c *gin.Context) {
	var request EventRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		c.Abort()
		return
	}

	event, err := s.Service.AddEvent(c, c.Param("match_id"), author(c), request)
	if err != nil {
		httpError.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, event)
}

func (s *httpHandler) deleteEventHandler(c *gin.Context) {
	err := s.Service.DeleteEvent(c, c.Param("match_id"), c.Param("event_id"), author(c))
	if err != nil {
		httpError.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *httpHandler) updateMatchHandler(c *gin.Context) {
	var update league.MatchUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		c.Abort()
		return
	}

	match, err := s.Service.UpdateMatch(c, c.Param("match_id"), author(c), update)
	if err != nil {
		httpError.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, match)
}

func (s *httpHandler) reportHandler(c *gin.Context) {
	var request resend.ReportRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		c.Abort()
		return
	}

	if err := s.Service.SendReport(c, c.Param("match_id"), request.To); err != nil {
		httpError.Abort(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{
		"message": "Report sent",
	})
}

func author(c *gin.Context) string {
	token, ok := auth.TokenFromContext(c)
	if !ok {
		return ""
	}
	return token.UID
}
