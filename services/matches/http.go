package matches

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nvbf/league-live/pkg/httpError"
	"github.com/nvbf/league-live/pkg/live"
)

// Router is the interface for a router.
type Router interface {
	GET(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	Use(middleware ...gin.HandlerFunc) gin.IRoutes
	Group(relativePath string, handlers ...gin.HandlerFunc) *gin.RouterGroup
}

// Matches is the interface for the public match service.
type Matches interface {
	LiveView(ctx context.Context, matchID string) (live.View, error)
	Timeline(ctx context.Context, matchID string) ([]live.MatchEvent, error)
}

// HTTPOptions contains all the options needed for the HTTP handler.
type HTTPOptions struct {

	// The service we provides the HTTP transport for.
	Service Matches

	// The router instance to configure the HTTP routes.
	Router Router
}

// NewHTTPHandler creates a new HTTP handler.
func NewHTTPHandler(opts HTTPOptions) {
	r := opts.Router
	h := &httpHandler{opts}
	r.GET("/:match_id/live", h.liveHandler)
	r.GET("/:match_id/timeline", h.timelineHandler)
}

type httpHandler struct {
	HTTPOptions
}

func (h *httpHandler) liveHandler(c *gin.Context) {
	view, err := h.Service.LiveView(c, c.Param("match_id"))
	if err != nil {
		httpError.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *httpHandler) timelineHandler(c *gin.Context) {
	timeline, err := h.Service.Timeline(c, c.Param("match_id"))
	if err != nil {
		httpError.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": timeline})
}
