package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/a-team/clinic-booking-api/internal/auth"
	"github.com/a-team/clinic-booking-api/internal/middleware"
	"github.com/a-team/clinic-booking-api/internal/models"
)

type createReservationRequest struct {
	AmountPaid float64 `json:"amount_paid" binding:"required,gt=0"`
	Date       string  `json:"date" binding:"required"`
	ClinicID   string  `json:"clinic_id" binding:"required"`
	DoctorID   string  `json:"doctor_id" binding:"required"`
	ClientID   string  `json:"client_id" binding:"required"`
}

func (h *Handler) buildReservation(c *gin.Context) *models.Reservation {
	var req createReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return nil
	}

	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		date, err = time.Parse("2006-01-02", req.Date)
	}
	if err != nil {
		badRequest(c, "Invalid date.")
		return nil
	}

	clinicID, err1 := primitive.ObjectIDFromHex(req.ClinicID)
	doctorID, err2 := primitive.ObjectIDFromHex(req.DoctorID)
	clientID, err3 := primitive.ObjectIDFromHex(req.ClientID)
	if err1 != nil || err2 != nil || err3 != nil {
		badRequest(c, "Not Valid Id")
		return nil
	}

	return &models.Reservation{
		AmountPaid: req.AmountPaid,
		Date:       date,
		Clinic:     clinicID,
		Doctor:     doctorID,
		Client:     clientID,
	}
}

// ReserveFromClinic books a staff-confirmed walk-in; the reservation starts
// out approved.
func (h *Handler) ReserveFromClinic(c *gin.Context) {
	reservation := h.buildReservation(c)
	if reservation == nil {
		return
	}
	reservation, err := h.Reservations.CreateFromClinic(c.Request.Context(), reservation)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"reservation": reservation})
}

// ReserveFromAPI books a self-service reservation; it starts out pending and
// waits for a reply.
func (h *Handler) ReserveFromAPI(c *gin.Context) {
	reservation := h.buildReservation(c)
	if reservation == nil {
		return
	}
	reservation, err := h.Reservations.CreateFromAPI(c.Request.Context(), reservation)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"reservation": reservation})
}

type replyRequest struct {
	ReservationID string `json:"reservationId" binding:"required"`
	Status        string `json:"status" binding:"required"`
}

// ReplyToReservation sets the caller-supplied status, whatever the current
// one is.
func (h *Handler) ReplyToReservation(c *gin.Context) {
	var req replyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	id, err := primitive.ObjectIDFromHex(req.ReservationID)
	if err != nil {
		badRequest(c, "Invalid reservation id.")
		return
	}
	if !models.IsReservationStatus(req.Status) {
		badRequest(c, "Invalid status.")
		return
	}

	reservation, err := h.Reservations.Reply(c.Request.Context(), id, req.Status)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservation": reservation})
}

type attendRequest struct {
	ReservationID string `json:"reservationId" binding:"required"`
}

// AttendReservation marks the reservation completed.
func (h *Handler) AttendReservation(c *gin.Context) {
	var req attendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	id, err := primitive.ObjectIDFromHex(req.ReservationID)
	if err != nil {
		badRequest(c, "Invalid reservation id.")
		return
	}

	reservation, err := h.Reservations.Attend(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservation": reservation})
}

// ShowClinicReservations lists a clinic's reservations. Clinic staff see
// their own clinic regardless of the path id: a clinic admin through the
// clinic they own, an assistant through the clinic on their record.
func (h *Handler) ShowClinicReservations(c *gin.Context) {
	clinicID := idParam(c, "id")

	switch c.GetString(middleware.ContextUserRole) {
	case auth.RoleClinicAdmin, auth.RoleAdmin:
		clinic, err := h.Clinics.FindByAdmin(c.Request.Context(), authUserID(c))
		if err != nil {
			fail(c, err)
			return
		}
		if clinic != nil {
			clinicID = clinic.ID
		}
	case auth.RoleAssistant:
		assistant, err := h.Assistants.FindByID(c.Request.Context(), authUserID(c))
		if err != nil {
			fail(c, err)
			return
		}
		if assistant != nil {
			clinicID = assistant.Clinic
		}
	}

	reservations, err := h.Reservations.GetByClinic(c.Request.Context(), clinicID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservations": reservations})
}

func (h *Handler) ShowReservation(c *gin.Context) {
	reservation, err := h.Reservations.GetOne(c.Request.Context(), idParam(c, "id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservation": reservation})
}
