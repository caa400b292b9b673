package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/a-team/clinic-booking-api/internal/models"
)

type createClinicRequest struct {
	Name        string  `form:"name" json:"name" binding:"required"`
	Email       string  `form:"email" json:"email" binding:"required,email"`
	City        string  `form:"city" json:"city" binding:"required"`
	Street      string  `form:"street" json:"street" binding:"required"`
	Building    int     `form:"building" json:"building" binding:"required"`
	WaitingTime int     `form:"waitingTime" json:"waitingTime" binding:"required"`
	OpensAt     *int    `form:"opensAt" json:"opensAt" binding:"required,min=0,max=24"`
	ClosesAt    *int    `form:"closesAt" json:"closesAt" binding:"required,min=0,max=24"`
	Phone       string  `form:"phone" json:"phone" binding:"required"`
	Price       float64 `form:"price" json:"price" binding:"required"`
	ClinicAdmin string  `form:"clinicAdmin" json:"clinicAdmin" binding:"required"`
}

// CreateClinic accepts multipart form data with an optional image upload.
func (h *Handler) CreateClinic(c *gin.Context) {
	var req createClinicRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	if *req.OpensAt > *req.ClosesAt {
		badRequest(c, "start date must be before close date")
		return
	}
	if !phonePattern.MatchString(req.Phone) {
		badRequest(c, "phone must be a valid egyptian phone number")
		return
	}

	adminID, err := primitive.ObjectIDFromHex(req.ClinicAdmin)
	if err != nil {
		badRequest(c, "please enter a valid admin id")
		return
	}
	admin, err := h.ClinicAdmins.FindByID(c.Request.Context(), adminID)
	if err != nil {
		fail(c, err)
		return
	}
	if admin == nil {
		badRequest(c, "Enter a valid System Admin")
		return
	}

	req.Email = normalizeEmail(req.Email)
	existing, err := h.Clinics.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		fail(c, err)
		return
	}
	if existing != nil {
		c.JSON(http.StatusConflict, gin.H{"message": "This email already exist"})
		return
	}

	clinic := &models.Clinic{
		Name:  req.Name,
		Email: req.Email,
		Location: models.Location{
			City:     req.City,
			Street:   req.Street,
			Building: req.Building,
		},
		WaitingTime: req.WaitingTime,
		OpensAt:     *req.OpensAt,
		ClosesAt:    *req.ClosesAt,
		Phone:       req.Phone,
		Price:       req.Price,
		ClinicAdmin: adminID,
	}

	if file, err := c.FormFile("image"); err == nil {
		name, err := h.Images.Save("clinic", file)
		if err != nil {
			fail(c, err)
			return
		}
		clinic.Image = name
	}

	clinic, err = h.Clinics.Create(c.Request.Context(), clinic)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, clinic)
}

func (h *Handler) ListClinics(c *gin.Context) {
	clinics, err := h.Clinics.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, clinics)
}

func (h *Handler) ShowClinic(c *gin.Context) {
	clinic, err := h.Clinics.FindByID(c.Request.Context(), idParam(c, "id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, clinic)
}

type updateClinicRequest struct {
	Name        *string  `json:"name"`
	City        *string  `json:"city"`
	Street      *string  `json:"street"`
	Building    *int     `json:"building"`
	WaitingTime *int     `json:"waitingTime"`
	OpensAt     *int     `json:"opensAt" binding:"omitempty,min=0,max=24"`
	ClosesAt    *int     `json:"closesAt" binding:"omitempty,min=0,max=24"`
	Phone       *string  `json:"phone"`
	Price       *float64 `json:"price"`
	Image       *string  `json:"image"`
}

func (h *Handler) UpdateClinic(c *gin.Context) {
	var req updateClinicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	if req.OpensAt != nil && req.ClosesAt != nil && *req.OpensAt > *req.ClosesAt {
		badRequest(c, "start date must be before close date")
		return
	}

	fields := bson.M{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.City != nil {
		fields["location.city"] = *req.City
	}
	if req.Street != nil {
		fields["location.street"] = *req.Street
	}
	if req.Building != nil {
		fields["location.building"] = *req.Building
	}
	if req.WaitingTime != nil {
		fields["waitingTime"] = *req.WaitingTime
	}
	if req.OpensAt != nil {
		fields["opensAt"] = *req.OpensAt
	}
	if req.ClosesAt != nil {
		fields["closesAt"] = *req.ClosesAt
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.Price != nil {
		fields["price"] = *req.Price
	}
	if req.Image != nil {
		fields["image"] = *req.Image
	}
	if len(fields) == 0 {
		badRequest(c, "No update fields provided")
		return
	}

	clinic, err := h.Clinics.Update(c.Request.Context(), idParam(c, "id"), fields)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, clinic)
}

func (h *Handler) DeleteClinic(c *gin.Context) {
	if err := h.Clinics.Delete(c.Request.Context(), idParam(c, "id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Clinic is deleted successfully"})
}

// SearchClinics runs the text search over name and city.
func (h *Handler) SearchClinics(c *gin.Context) {
	text := c.Query("search")
	if text == "" {
		c.JSON(http.StatusNotFound, gin.H{"message": "Invalid query"})
		return
	}
	clinics, err := h.Clinics.Search(c.Request.Context(), text)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, clinics)
}

// ShowAdminClinic returns the clinic owned by a clinic admin.
func (h *Handler) ShowAdminClinic(c *gin.Context) {
	clinic, err := h.Clinics.FindByAdmin(c.Request.Context(), idParam(c, "adminId"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, clinic)
}
