package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/a-team/clinic-booking-api/internal/auth"
	"github.com/a-team/clinic-booking-api/internal/handlers"
	"github.com/a-team/clinic-booking-api/internal/middleware"
)

// Register wires the full route table. Public endpoints come first in each
// group; everything else goes through RequireAuth and a per-route gate.
func Register(r *gin.Engine, h *handlers.Handler, tokens *auth.TokenService) {
	r.Use(middleware.ErrorHandler())
	r.NoRoute(middleware.NotFound)

	authed := middleware.RequireAuth(tokens)
	validID := middleware.ValidateIDParam()

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"welcomeMessage": "Welcome To Our Clinic Booking System"})
	})

	// dashboard
	r.GET("/dashboard/login", h.DashboardLogin)

	// clients
	r.POST("/clients/register", h.RegisterClient)
	r.POST("/clients/login", h.LoginClient)
	r.GET("/confirm/:confirmationCode", h.ConfirmEmail)
	r.POST("/forgotPassword", h.ForgotPassword)
	r.POST("/verifyToken/:token", h.ResetPassword)
	r.GET("/clients", authed, middleware.AllowRoles(auth.RoleClient), h.ListClients)
	r.GET("/clients/:id", validID, authed, h.ShowClient)
	r.PATCH("/clients/:id", validID, authed, h.UpdateClient)
	r.PATCH("/clients/:id/password", validID, authed, middleware.RequireSelf(), h.ChangeClientPassword)
	r.DELETE("/clients/:id", validID, authed, middleware.AllowRoles(auth.RoleAdmin), h.DeleteClient)

	// clinics
	r.GET("/clinics", h.ListClinics)
	r.POST("/clinics", h.CreateClinic)
	r.GET("/clinics/search", h.SearchClinics)
	r.GET("/clinic/:id", validID, h.ShowClinic)
	r.PUT("/clinic/:id", validID, h.UpdateClinic)
	r.DELETE("/clinic/:id", validID, h.DeleteClinic)
	r.GET("/clinicAdmin/:adminId/clinic", middleware.ValidateIDParam("adminId"), h.ShowAdminClinic)

	// clinic admins
	r.POST("/clinic-admins", h.CreateClinicAdmin)
	r.POST("/clinic-admins/login", h.LoginClinicAdmin)
	r.GET("/clinic-admins", authed, middleware.AllowRoles(auth.RoleAdmin), h.ListClinicAdmins)
	r.GET("/clinic-admins/:id", validID, h.ShowClinicAdmin)
	r.PATCH("/clinic-admins/:id", validID, authed, h.UpdateClinicAdmin)
	r.PATCH("/clinic-admins/:id/password", validID, authed, middleware.RequireSelf(), h.ChangeClinicAdminPassword)
	r.DELETE("/clinic-admins/:id", validID, authed, middleware.AllowRoles(auth.RoleAdmin), h.DeleteClinicAdmin)

	// doctors
	r.POST("/doctors/register", h.RegisterDoctor)
	r.POST("/doctors/login", h.LoginDoctor)
	r.GET("/doctors", authed, middleware.AllowRoles(auth.RoleAdmin, auth.RoleClinicAdmin), h.ListDoctors)
	r.GET("/doctors/:id", validID, authed,
		middleware.AllowRolesOrSelf(auth.RoleDoctor, auth.RoleAdmin, auth.RoleClinicAdmin), h.ShowDoctor)
	r.GET("/doctors/clinic/:id", validID, authed, h.ShowClinicDoctors)
	r.PUT("/doctors/:id", validID, authed,
		middleware.AllowRoles(auth.RoleAdmin, auth.RoleClinicAdmin), h.UpdateDoctor)
	r.PATCH("/doctors/:id/password", validID, authed,
		middleware.RequireSelfRole(auth.RoleDoctor), h.ChangeDoctorPassword)
	r.DELETE("/doctors/:id", validID, authed,
		middleware.AllowRoles(auth.RoleAdmin, auth.RoleClinicAdmin), h.DeleteDoctor)

	// assistants
	r.POST("/assistants/create", h.CreateAssistant)
	r.POST("/assistants/login", h.LoginAssistant)
	r.GET("/assistants", authed, middleware.AllowRoles(auth.RoleAdmin), h.ListAssistants)
	r.GET("/assistants/:id", validID, authed,
		middleware.AllowRolesOrSelf(auth.RoleAssistant, auth.RoleAdmin, auth.RoleClinicAdmin), h.ShowAssistant)
	r.GET("/assistants/clinic/:id", validID, authed,
		middleware.AllowRoles(auth.RoleAdmin, auth.RoleClinicAdmin), h.ShowClinicAssistants)
	r.PATCH("/assistants/update/:id", validID, authed,
		middleware.AllowRoles(auth.RoleAdmin, auth.RoleClinicAdmin), h.UpdateAssistant)
	r.PATCH("/assistants/:id/password", validID, authed,
		middleware.RequireSelfRole(auth.RoleAssistant), h.ChangeAssistantPassword)
	r.DELETE("/assistants/:id", validID, authed,
		middleware.AllowRoles(auth.RoleAdmin, auth.RoleClinicAdmin), h.DeleteAssistant)

	// reservations
	r.POST("/reservations/clinic", authed, h.ReserveFromClinic)
	r.POST("/reservations/api", authed, h.ReserveFromAPI)
	r.POST("/reservations/reply", authed, h.ReplyToReservation)
	r.POST("/reservations/attend", authed, h.AttendReservation)
	r.GET("/reservations/clinic/:id", validID, authed, h.ShowClinicReservations)
	r.GET("/reservations/:id", validID, authed, h.ShowReservation)
}
