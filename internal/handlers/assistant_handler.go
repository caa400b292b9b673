package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/a-team/clinic-booking-api/internal/auth"
	"github.com/a-team/clinic-booking-api/internal/models"
)

type createAssistantRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Clinic   string `json:"clinic" binding:"required"`
	Image    string `json:"image"`
}

func (h *Handler) CreateAssistant(c *gin.Context) {
	var req createAssistantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
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
	existing, err := h.Assistants.FindByEmail(c.Request.Context(), req.Email)
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

	assistant := &models.Assistant{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashed,
		Clinic:   clinicID,
		Image:    req.Image,
	}
	assistant, err = h.Assistants.Create(c.Request.Context(), assistant)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"assistant": assistant})
}

func (h *Handler) LoginAssistant(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request")
		return
	}

	assistant, err := h.Assistants.FindByEmail(c.Request.Context(), normalizeEmail(req.Email))
	if err != nil {
		fail(c, err)
		return
	}
	if assistant == nil || !h.Hasher.Verify(req.Password, assistant.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	token, err := h.Tokens.Issue(assistant.ID.Hex(), assistant.Email, auth.RoleAssistant)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (h *Handler) ListAssistants(c *gin.Context) {
	assistants, err := h.Assistants.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"assistants": assistants})
}

func (h *Handler) ShowAssistant(c *gin.Context) {
	assistant, err := h.Assistants.FindByID(c.Request.Context(), idParam(c, "id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"assistant": assistant})
}

func (h *Handler) ShowClinicAssistants(c *gin.Context) {
	assistants, err := h.Assistants.ListByClinic(c.Request.Context(), idParam(c, "id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"assistants": assistants})
}

type updateAssistantRequest struct {
	Name   *string `json:"name"`
	Email  *string `json:"email" binding:"omitempty,email"`
	Clinic *string `json:"clinic"`
	Image  *string `json:"image"`
}

// UpdateAssistant never touches the password field; the clinic reference is
// re-validated whenever it is supplied.
func (h *Handler) UpdateAssistant(c *gin.Context) {
	var req updateAssistantRequest
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

	assistant, err := h.Assistants.Update(c.Request.Context(), idParam(c, "id"), fields)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"assistant": assistant})
}

func (h *Handler) ChangeAssistantPassword(c *gin.Context) {
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	assistant, err := h.Assistants.FindByIDWithPassword(c.Request.Context(), idParam(c, "id"))
	if err != nil {
		fail(c, err)
		return
	}
	if assistant == nil || !h.Hasher.Verify(req.OldPassword, assistant.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials for password"})
		return
	}

	hashed, err := h.Hasher.Hash(req.NewPassword)
	if err != nil {
		fail(c, err)
		return
	}
	updated, err := h.Assistants.UpdatePassword(c.Request.Context(), assistant.ID, hashed)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"assistant": updated})
}

func (h *Handler) DeleteAssistant(c *gin.Context) {
	if err := h.Assistants.Delete(c.Request.Context(), idParam(c, "id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Assistant deleted successfully"})
}
