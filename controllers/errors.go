package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ardiente-ken/Lunchmates/services"
	"github.com/ardiente-ken/Lunchmates/utils"
)

var errServer = errors.New("server error")

// respondServiceError maps the service error taxonomy onto HTTP codes.
// Business-rule and validation failures go back verbatim; storage failures
// are logged with detail and answered with a generic 500.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNoOrderFound):
		utils.RespondError(c, http.StatusNotFound, err)
	case errors.Is(err, services.ErrMissingUserID),
		errors.Is(err, services.ErrNoItems),
		errors.Is(err, services.ErrCutoffNotSet),
		errors.Is(err, services.ErrBadTimeFormat):
		utils.RespondError(c, http.StatusBadRequest, err)
	default:
		utils.ErrorLogger.Printf("%s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
		utils.RespondError(c, http.StatusInternalServerError, errServer)
	}
}
