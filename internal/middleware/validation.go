package middleware

import (
	"net/http"

	"github.com/admitly/counselor/internal/app/models/dto"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// BindJSON binds the request body into obj and runs its binding rules. On
// failure it writes a 400 and returns false.
func BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		log.Debug().Err(err).Str("path", c.Request.URL.Path).Msg("Invalid request payload")
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return false
	}
	return true
}
