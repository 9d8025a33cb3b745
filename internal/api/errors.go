package api

import (
	"github.com/gin-gonic/gin"
	"github.com/news-api/internal/apperr"
	"github.com/rs/zerolog"
)

// respondError writes {"msg": ...} with the status of err's kind. Internal
// errors are logged; their detail never reaches the client.
func respondError(c *gin.Context, log zerolog.Logger, err error) {
	appErr := apperr.From(err)

	if appErr.Kind == apperr.KindInternal {
		log.Error().
			Err(err).
			Str("request_id", c.GetString("request_id")).
			Str("route", c.FullPath()).
			Msg("Request failed")
	} else {
		log.Debug().Err(err).Int("status", appErr.Status()).Msg("Request rejected")
	}

	c.AbortWithStatusJSON(appErr.Status(), gin.H{"msg": appErr.Message()})
}

// bindJSON decodes the request body into dst; decode failures are malformed input
func bindJSON(c *gin.Context, dst interface{}) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		return apperr.MalformedInput("invalid request body: %w", err)
	}
	return nil
}
