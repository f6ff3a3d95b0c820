package handlers

import (
	"net/http"

	"buslink/internal/domain"
	"buslink/internal/domain/models"
	"buslink/internal/repositories"

	"github.com/gin-gonic/gin"
)

type vendorPayload struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Status  string `json:"status"`
	LogoURL string `json:"logoUrl"`
}

// GET /api/vendors
func GetVendors(c *gin.Context) {
	vendors, err := repositories.VendorRepository{}.FindAll()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vendors": vendors})
}

// GET /api/vendors/:id
func GetVendorByID(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	vendor, err := repositories.VendorRepository{}.FindOne(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, vendor)
}

// POST /api/vendors
func CreateVendor(c *gin.Context) {
	var req vendorPayload
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.Status != "" && !models.ValidVendorStatus(req.Status) {
		RespondDomainError(c, domain.ValidationError{Field: "status", Msg: "unknown status"})
		return
	}

	vendor, err := repositories.VendorRepository{}.Create(models.Vendor{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Status:  req.Status,
		LogoURL: req.LogoURL,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, vendor)
}

// PUT /api/vendors/:id
func UpdateVendor(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	var req vendorPayload
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.Status != "" && !models.ValidVendorStatus(req.Status) {
		RespondDomainError(c, domain.ValidationError{Field: "status", Msg: "unknown status"})
		return
	}

	vendor, err := repositories.VendorRepository{}.Update(id, models.Vendor{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Status:  req.Status,
		LogoURL: req.LogoURL,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, vendor)
}

// DELETE /api/vendors/:id
func DeleteVendor(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	vendor, err := repositories.VendorRepository{}.Remove(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "vendor deleted", "vendor": vendor})
}
