package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/OliverHuron/SICAII/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

var validate = validator.New()

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON inválido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make([]string, 0)
		for _, fe := range err.(validator.ValidationErrors) {
			fields = append(fields, fe.Field())
		}
		c.JSON(http.StatusBadRequest, apierror.New("Campos requeridos o inválidos: "+strings.Join(fields, ", ")))
		return false
	}
	return true
}

// parseID parses the numeric :id path parameter. Writes the 400 response and
// returns false on failure.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return 0, false
	}
	return uint(id), true
}

// respondError maps a service error to its HTTP status. Unexpected errors are
// logged server-side and returned as an opaque 500.
func respondError(c *gin.Context, err error) {
	status := apierror.Status(err)
	if status == http.StatusInternalServerError {
		log.Error().
			Str("request_id", c.GetString("request_id")).
			Str("path", c.FullPath()).
			Str("method", c.Request.Method).
			Err(err).
			Msg("internal error")
		c.JSON(status, apierror.New("Error interno del servidor"))
		return
	}
	c.JSON(status, apierror.New(err.Error()))
}
