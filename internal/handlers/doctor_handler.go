package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/a-team/clinic-booking-api/internal/auth"
	"github.com/a-team/clinic-booking-api/internal/models"
)

type registerDoctorRequest struct {
	Name      string    `json:"name" binding:"required"`
	Email     string    `json:"email" binding:"required,email"`
	Password  string    `json:"password" binding:"required,min=8"`
	Phone     string    `json:"phone" binding:"required"`
	StartTime time.Time `json:"startTime" binding:"required"`
	EndTime   time.Time `json:"endTime" binding:"required"`
	Gender    string    `json:"gender" binding:"omitempty,oneof=Male male Female female"`
	Clinic    string    `json:"clinic" binding:"required"`
}

func (h *Handler) RegisterDoctor(c *gin.Context) {
	var req registerDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	if !req.StartTime.Before(req.EndTime) {
		badRequest(c, "start time must be before end time")
		return
	}

	clinicID, err := primitive.ObjectIDFromHex(req.Clinic)
	if err != nil {
		badRequest(c, "Invalid clinic id.")
		return
	}
	clinic, err := h.Clinics.FindByID(c.Request.Context(), clinicID)
	if err != nil {
		fail(c, err)
		return
	}
	if clinic == nil {
		badRequest(c, "This Clinic doesn't exist")
		return
	}

	req.Email = normalizeEmail(req.Email)
	existing, err := h.Doctors.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		fail(c, err)
		return
	}
	if existing != nil {
		c.JSON(http.StatusConflict, gin.H{"message": "E-mail already in use"})
		return
	}

	hashed, err := h.Hasher.Hash(req.Password)
	if err != nil {
		fail(c, err)
		return
	}

	doctor := &models.Doctor{
		Name:      req.Name,
		Email:     req.Email,
		Password:  hashed,
		Phone:     req.Phone,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Gender:    req.Gender,
		Clinic:    clinicID,
	}
	doctor, err = h.Doctors.Create(c.Request.Context(), doctor)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"doctor": doctor})
}

func (h *Handler) LoginDoctor(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request")
		return
	}

	doctor, err := h.Doctors.FindByEmail(c.Request.Context(), normalizeEmail(req.Email))
	if err != nil {
		fail(c, err)
		return
	}
	if doctor == nil || !h.Hasher.Verify(req.Password, doctor.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	token, err := h.Tokens.Issue(doctor.ID.Hex(), doctor.Email, auth.RoleDoctor)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (h *Handler) ListDoctors(c *gin.Context) {
	doctors, err := h.Doctors.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"doctors": doctors})
}

func (h *Handler) ShowDoctor(c *gin.Context) {
	doctor, err := h.Doctors.FindByID(c.Request.Context(), idParam(c, "id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"doctor": doctor})
}

// ShowClinicDoctors returns the directory projection of a clinic's doctors.
func (h *Handler) ShowClinicDoctors(c *gin.Context) {
	doctors, err := h.Doctors.ListByClinic(c.Request.Context(), idParam(c, "id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"doctors": doctors})
}

type updateDoctorRequest struct {
	Name      *string    `json:"name"`
	Email     *string    `json:"email" binding:"omitempty,email"`
	Phone     *string    `json:"phone"`
	StartTime *time.Time `json:"startTime"`
	EndTime   *time.Time `json:"endTime"`
	Gender    *string    `json:"gender" binding:"omitempty,oneof=Male male Female female"`
	Clinic    *string    `json:"clinic"`
	Image     *string    `json:"image"`
}

// UpdateDoctor re-validates the clinic reference whenever it is supplied.
func (h *Handler) UpdateDoctor(c *gin.Context) {
	var req updateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	fields := bson.M{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Email != nil {
		fields["email"] = normalizeEmail(*req.Email)
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.StartTime != nil {
		fields["startTime"] = *req.StartTime
	}
	if req.EndTime != nil {
		fields["endTime"] = *req.EndTime
	}
	if req.Gender != nil {
		fields["gender"] = *req.Gender
	}
	if req.Clinic != nil {
		clinicID, err := primitive.ObjectIDFromHex(*req.Clinic)
		if err != nil {
			badRequest(c, "Invalid clinic id.")
			return
		}
		clinic, err := h.Clinics.FindByID(c.Request.Context(), clinicID)
		if err != nil {
			fail(c, err)
			return
		}
		if clinic == nil {
			badRequest(c, "This Clinic doesn't exist")
			return
		}
		fields["clinic"] = clinicID
	}
	if req.Image != nil {
		fields["image"] = *req.Image
	}
	if len(fields) == 0 {
		badRequest(c, "No update fields provided")
		return
	}

	doctor, err := h.Doctors.Update(c.Request.Context(), idParam(c, "id"), fields)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"doctor": doctor})
}

func (h *Handler) ChangeDoctorPassword(c *gin.Context) {
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	doctor, err := h.Doctors.FindByIDWithPassword(c.Request.Context(), idParam(c, "id"))
	if err != nil {
		fail(c, err)
		return
	}
	if doctor == nil || !h.Hasher.Verify(req.OldPassword, doctor.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	hashed, err := h.Hasher.Hash(req.NewPassword)
	if err != nil {
		fail(c, err)
		return
	}
	updated, err := h.Doctors.UpdatePassword(c.Request.Context(), doctor.ID, hashed)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"doctor": updated})
}

func (h *Handler) DeleteDoctor(c *gin.Context) {
	doctor, err := h.Doctors.Delete(c.Request.Context(), idParam(c, "id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"doctor": doctor})
}
