package httpError

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/nvbf/league-live/repos/league"
)

// Status maps a league error kind to the HTTP status sent to clients.
func Status(err error) int {
	switch league.KindOf(err) {
	case league.KindValidation:
		return http.StatusBadRequest
	case league.KindNotFound:
		return http.StatusNotFound
	case league.KindConflict:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// Abort writes err as a JSON error response and stops the handler chain.
// Unknown errors are logged and hidden from the client.
func Abort(c *gin.Context, err error) {
	code := Status(err)
	if code == http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.FullPath()).Msg("Request failed")
		c.JSON(code, gin.H{"error": "something went wrong"})
		c.Abort()
		return
	}

	c.JSON(code, gin.H{"error": err.Error(), "kind": league.KindOf(err).String()})
	c.Abort()
}
