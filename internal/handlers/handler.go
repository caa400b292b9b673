package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/a-team/clinic-booking-api/internal/auth"
	"github.com/a-team/clinic-booking-api/internal/middleware"
	"github.com/a-team/clinic-booking-api/internal/repository"
	"github.com/a-team/clinic-booking-api/internal/services"
)

// Handler carries the repositories and services the route handlers use.
type Handler struct {
	Clients      *repository.ClientRepo
	Clinics      *repository.ClinicRepo
	ClinicAdmins *repository.ClinicAdminRepo
	Doctors      *repository.DoctorRepo
	Assistants   *repository.AssistantRepo
	Reservations *services.ReservationService

	Hasher *auth.PasswordHasher
	Tokens *auth.TokenService
	Mailer *services.Mailer
	Images *services.ImageStore
}

func New(db *mongo.Database, hasher *auth.PasswordHasher, tokens *auth.TokenService,
	mailer *services.Mailer, images *services.ImageStore) *Handler {
	return &Handler{
		Clients:      repository.NewClientRepo(db),
		Clinics:      repository.NewClinicRepo(db),
		ClinicAdmins: repository.NewClinicAdminRepo(db),
		Doctors:      repository.NewDoctorRepo(db),
		Assistants:   repository.NewAssistantRepo(db),
		Reservations: services.NewReservationService(repository.NewReservationRepo(db)),
		Hasher:       hasher,
		Tokens:       tokens,
		Mailer:       mailer,
		Images:       images,
	}
}

// normalizeEmail lowercases an address so lookups and the unique index are
// case-insensitive. Applied wherever an email enters the system.
func normalizeEmail(email string) string {
	return strings.ToLower(email)
}

// idParam parses the ObjectID path param already vetted by ValidateIDParam.
func idParam(c *gin.Context, name string) primitive.ObjectID {
	id, _ := primitive.ObjectIDFromHex(c.Param(name))
	return id
}

func authUserID(c *gin.Context) primitive.ObjectID {
	id, _ := primitive.ObjectIDFromHex(c.GetString(middleware.ContextUserID))
	return id
}

// fail routes an unexpected error to the centralized 500 handler.
func fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"message": message})
}
