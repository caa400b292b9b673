package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/a-team/clinic-booking-api/internal/auth"
)

type dashboardLoginRequest struct {
	Role string `json:"role" binding:"required"`
}

// DashboardLogin redirects staff to the login endpoint for their role.
func (h *Handler) DashboardLogin(c *gin.Context) {
	var req dashboardLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	switch req.Role {
	case auth.RoleClinicAdmin:
		c.Redirect(http.StatusTemporaryRedirect, "/clinic-admins/login")
	case auth.RoleDoctor:
		c.Redirect(http.StatusTemporaryRedirect, "/doctors/login")
	case auth.RoleAssistant:
		c.Redirect(http.StatusTemporaryRedirect, "/assistants/login")
	default:
		badRequest(c, "Unknown role")
	}
}
