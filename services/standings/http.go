package standings

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nvbf/league-live/pkg/httpError"
)

// Router is the interface for a router.
type Router interface {
	GET(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	Use(middleware ...gin.HandlerFunc) gin.IRoutes
	Group(relativePath string, handlers ...gin.HandlerFunc) *gin.RouterGroup
}

// Standings is the interface for the league table service.
type Standings interface {
	GetTable(ctx context.Context, upToRound int) (*Table, error)
}

// HTTPOptions contains all the options needed for the HTTP handler.
type HTTPOptions struct {

	// The service we provides the HTTP transport for.
	Service Standings

	// The router instance to configure the HTTP routes.
	Router Router
}

// NewHTTPHandler creates a new HTTP handler.
func NewHTTPHandler(opts HTTPOptions) {
	r := opts.Router
	h := &httpHandler{opts}
	r.GET("/table", h.getTableHandler)
}

type httpHandler struct {
	HTTPOptions
}

func (s *httpHandler) getTableHandler(c *gin.Context) {
	upToRound := 0
	if roundParam := c.Query("round"); roundParam != "" {
		round, err := strconv.Atoi(roundParam)
		if err != nil || round < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "round must be a positive number"})
			c.Abort()
			return
		}
		upToRound = round
	}

	table, err := s.Service.GetTable(c, upToRound)
	if err != nil {
		httpError.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, table)
}
