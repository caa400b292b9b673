package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/a-team/clinic-booking-api/internal/auth"
	"github.com/a-team/clinic-booking-api/internal/models"
)

type createClinicAdminRequest struct {
	Name       string    `json:"name" binding:"required"`
	Email      string    `json:"email" binding:"required,email"`
	Password   string    `json:"password" binding:"required,min=8"`
	Phone      string    `json:"phone" binding:"required"`
	BirthDate  time.Time `json:"birthDate" binding:"required"`
	NationalID string    `json:"nationalId" binding:"required"`
	Image      string    `json:"image" binding:"required"`
}

func (h *Handler) CreateClinicAdmin(c *gin.Context) {
	var req createClinicAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	req.Email = normalizeEmail(req.Email)
	existing, err := h.ClinicAdmins.FindByEmail(c.Request.Context(), req.Email)
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

	admin := &models.ClinicAdmin{
		Name:       req.Name,
		Email:      req.Email,
		Password:   hashed,
		Phone:      req.Phone,
		BirthDate:  req.BirthDate,
		NationalID: req.NationalID,
		Image:      req.Image,
	}
	admin, err = h.ClinicAdmins.Create(c.Request.Context(), admin)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"clinicAdmin": admin})
}

// LoginClinicAdmin issues a token carrying the admin role, which is what the
// privileged gates check for.
func (h *Handler) LoginClinicAdmin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request")
		return
	}

	admin, err := h.ClinicAdmins.FindByEmail(c.Request.Context(), normalizeEmail(req.Email))
	if err != nil {
		fail(c, err)
		return
	}
	if admin == nil || !h.Hasher.Verify(req.Password, admin.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	token, err := h.Tokens.Issue(admin.ID.Hex(), admin.Email, auth.RoleAdmin)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (h *Handler) ListClinicAdmins(c *gin.Context) {
	admins, err := h.ClinicAdmins.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"clinicAdmins": admins})
}

func (h *Handler) ShowClinicAdmin(c *gin.Context) {
	admin, err := h.ClinicAdmins.FindByID(c.Request.Context(), idParam(c, "id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"clinicAdmin": admin})
}

type updateClinicAdminRequest struct {
	Name       *string    `json:"name"`
	Email      *string    `json:"email" binding:"omitempty,email"`
	Phone      *string    `json:"phone"`
	BirthDate  *time.Time `json:"birthDate"`
	NationalID *string    `json:"nationalId"`
	Image      *string    `json:"image"`
}

func (h *Handler) UpdateClinicAdmin(c *gin.Context) {
	var req updateClinicAdminRequest
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
	if req.BirthDate != nil {
		fields["birthDate"] = *req.BirthDate
	}
	if req.NationalID != nil {
		fields["nationalId"] = *req.NationalID
	}
	if req.Image != nil {
		fields["image"] = *req.Image
	}
	if len(fields) == 0 {
		badRequest(c, "No update fields provided")
		return
	}

	admin, err := h.ClinicAdmins.Update(c.Request.Context(), idParam(c, "id"), fields)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"clinicAdmin": admin})
}

func (h *Handler) ChangeClinicAdminPassword(c *gin.Context) {
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	admin, err := h.ClinicAdmins.FindByIDWithPassword(c.Request.Context(), idParam(c, "id"))
	if err != nil {
		fail(c, err)
		return
	}
	if admin == nil || !h.Hasher.Verify(req.OldPassword, admin.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	hashed, err := h.Hasher.Hash(req.NewPassword)
	if err != nil {
		fail(c, err)
		return
	}
	updated, err := h.ClinicAdmins.UpdatePassword(c.Request.Context(), admin.ID, hashed)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"clinicAdmin": updated})
}

func (h *Handler) DeleteClinicAdmin(c *gin.Context) {
	admin, err := h.ClinicAdmins.Delete(c.Request.Context(), idParam(c, "id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"clinicAdmin": admin})
}
