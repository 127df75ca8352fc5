package middlewares

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ardiente-ken/Lunchmates/models"
	"github.com/ardiente-ken/Lunchmates/utils"
)

// HROnly guards the endpoints that curate the menu, set the cut-off and open
// or close the ordering window.
func HROnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole, exists := c.Get("role")
		if !exists {
			utils.RespondError(c, http.StatusUnauthorized, fmt.Errorf("unauthorized"))
			c.Abort()
			return
		}

		if userRole != models.RoleHR {
			utils.RespondError(c, http.StatusForbidden, fmt.Errorf("hr access required"))
			c.Abort()
			return
		}

		c.Next()
	}
}
