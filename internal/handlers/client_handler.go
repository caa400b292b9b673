package handlers

import (
	"net/http"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/a-team/clinic-booking-api/internal/auth"
	"github.com/a-team/clinic-booking-api/internal/models"
)

var phonePattern = regexp.MustCompile(`^01[0125][0-9]{8}$`)

type registerClientRequest struct {
	FirstName string     `json:"firstName" binding:"required,max=30"`
	LastName  string     `json:"lastName" binding:"required,max=30"`
	Username  string     `json:"username" binding:"omitempty,alphanum,max=30"`
	Email     string     `json:"email" binding:"required,email"`
	Password  string     `json:"password" binding:"required,min=8"`
	Phone     string     `json:"phone" binding:"required"`
	Gender    string     `json:"gender" binding:"omitempty,oneof=Male male Female female"`
	BirthDate *time.Time `json:"birthDate"`
	LastVisit *time.Time `json:"lastVisit"`
}

// RegisterClient creates a pending account and mails the confirmation link.
func (h *Handler) RegisterClient(c *gin.Context) {
	var req registerClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	if !phonePattern.MatchString(req.Phone) {
		badRequest(c, "Invalid phone number.")
		return
	}
	req.Email = normalizeEmail(req.Email)

	existing, err := h.Clients.FindByEmail(c.Request.Context(), req.Email)
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

	client := &models.Client{
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Username:         req.Username,
		Email:            req.Email,
		Password:         hashed,
		Phone:            req.Phone,
		Gender:           req.Gender,
		BirthDate:        req.BirthDate,
		LastVisit:        req.LastVisit,
		Status:           models.StatusPending,
		ConfirmationCode: uuid.NewString(),
	}
	client, err = h.Clients.Create(c.Request.Context(), client)
	if err != nil {
		fail(c, err)
		return
	}

	h.Mailer.SendConfirmationAsync(client.Email, client.FirstName, client.ConfirmationCode)

	c.JSON(http.StatusCreated, gin.H{"client": client})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginClient issues a token for active, verified accounts only.
func (h *Handler) LoginClient(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request")
		return
	}

	client, err := h.Clients.FindByEmail(c.Request.Context(), normalizeEmail(req.Email))
	if err != nil {
		fail(c, err)
		return
	}
	if client == nil || !h.Hasher.Verify(req.Password, client.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}
	if client.Status != models.StatusActive {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Pending Account. Please Verify Your Email!"})
		return
	}

	token, err := h.Tokens.Issue(client.ID.Hex(), client.Email, auth.RoleClient)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// ConfirmEmail activates the account carrying the confirmation code.
func (h *Handler) ConfirmEmail(c *gin.Context) {
	activated, err := h.Clients.ActivateByCode(c.Request.Context(), c.Param("confirmationCode"))
	if err != nil {
		fail(c, err)
		return
	}
	if !activated {
		c.JSON(http.StatusNotFound, gin.H{"message": "Email Can't be verified"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Email verified successfully"})
}

func (h *Handler) ListClients(c *gin.Context) {
	clients, err := h.Clients.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"clients": clients})
}

func (h *Handler) ShowClient(c *gin.Context) {
	client, err := h.Clients.FindByID(c.Request.Context(), idParam(c, "id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"client": client})
}

type updateClientRequest struct {
	FirstName *string    `json:"firstName" binding:"omitempty,max=30"`
	LastName  *string    `json:"lastName" binding:"omitempty,max=30"`
	Username  *string    `json:"username" binding:"omitempty,alphanum,max=30"`
	Email     *string    `json:"email" binding:"omitempty,email"`
	Phone     *string    `json:"phone"`
	Gender    *string    `json:"gender" binding:"omitempty,oneof=Male male Female female"`
	BirthDate *time.Time `json:"birthDate"`
	LastVisit *time.Time `json:"lastVisit"`
	Image     *string    `json:"image"`
}

// UpdateClient applies only the bound, validated fields.
func (h *Handler) UpdateClient(c *gin.Context) {
	var req updateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	fields := bson.M{}
	if req.FirstName != nil {
		fields["firstName"] = *req.FirstName
	}
	if req.LastName != nil {
		fields["lastName"] = *req.LastName
	}
	if req.Username != nil {
		fields["username"] = *req.Username
	}
	if req.Email != nil {
		fields["email"] = normalizeEmail(*req.Email)
	}
	if req.Phone != nil {
		if !phonePattern.MatchString(*req.Phone) {
			badRequest(c, "Invalid phone number.")
			return
		}
		fields["phone"] = *req.Phone
	}
	if req.Gender != nil {
		fields["gender"] = *req.Gender
	}
	if req.BirthDate != nil {
		fields["birthDate"] = *req.BirthDate
	}
	if req.LastVisit != nil {
		fields["lastVisit"] = *req.LastVisit
	}
	if req.Image != nil {
		fields["image"] = *req.Image
	}
	if len(fields) == 0 {
		badRequest(c, "No update fields provided")
		return
	}

	client, err := h.Clients.Update(c.Request.Context(), idParam(c, "id"), fields)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"client": client})
}

type changePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

// ChangeClientPassword swaps the password after the old one checks out.
func (h *Handler) ChangeClientPassword(c *gin.Context) {
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	client, err := h.Clients.FindByIDWithPassword(c.Request.Context(), idParam(c, "id"))
	if err != nil {
		fail(c, err)
		return
	}
	if client == nil || !h.Hasher.Verify(req.OldPassword, client.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	hashed, err := h.Hasher.Hash(req.NewPassword)
	if err != nil {
		fail(c, err)
		return
	}
	updated, err := h.Clients.UpdatePassword(c.Request.Context(), client.ID, hashed)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"client": updated})
}

func (h *Handler) DeleteClient(c *gin.Context) {
	if err := h.Clients.Delete(c.Request.Context(), idParam(c, "id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "client deleted successfully"})
}

type forgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ForgotPassword stores a reset token and mails the reset link.
func (h *Handler) ForgotPassword(c *gin.Context) {
	var req forgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Email should be a valid email")
		return
	}

	client, err := h.Clients.SetResetToken(c.Request.Context(), normalizeEmail(req.Email), uuid.NewString())
	if err != nil {
		fail(c, err)
		return
	}
	if err := h.Mailer.SendPasswordReset(client.Email, client.ForgotPasswordToken); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "please Check your email"})
}

type resetPasswordRequest struct {
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

// ResetPassword sets a new password for the account behind an unexpired reset
// token.
func (h *Handler) ResetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	hashed, err := h.Hasher.Hash(req.NewPassword)
	if err != nil {
		fail(c, err)
		return
	}
	if err := h.Clients.ResetPasswordByToken(c.Request.Context(), c.Param("token"), hashed); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password changed successfully"})
}
