package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/alumnihub/internal/app/models/dto"
	"github.com/yigit/alumnihub/internal/app/services"
	"github.com/yigit/alumnihub/internal/middleware"
)

// InquiryController handles the contact form and its admin inbox
type InquiryController struct {
	inquiryService services.InquiryService
}

// NewInquiryController creates a new InquiryController
func NewInquiryController(inquiryService services.InquiryService) *InquiryController {
	return &InquiryController{inquiryService: inquiryService}
}

// CreateInquiry godoc
// @Summary Submit the contact form
// @Tags inquiries
// @Accept json
// @Produce json
// @Param request body dto.CreateInquiryRequest true "Inquiry"
// @Success 201 {object} models.Inquiry
// @Failure 400 {object} dto.ErrorResponse "Please provide all fields"
// @Router /inquiries [post]
func (c *InquiryController) CreateInquiry(ctx *gin.Context) {
	var req dto.CreateInquiryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}
	if err := middleware.ValidateStruct(&req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	inquiry, err := c.inquiryService.CreateInquiry(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, inquiry)
}

// GetInquiries godoc
// @Summary List inquiries
// @Tags inquiries
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Inquiry
// @Failure 401 {object} dto.ErrorResponse
// @Router /inquiries [get]
func (c *InquiryController) GetInquiries(ctx *gin.Context) {
	identity, ok := requireIdentity(ctx)
	if !ok {
		return
	}

	inquiries, err := c.inquiryService.ListInquiries(ctx.Request.Context(), identity)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, inquiries)
}

// GetInquiry godoc
// @Summary Get an inquiry
// @Tags inquiries
// @Produce json
// @Security BearerAuth
// @Param id path string true "Inquiry ID"
// @Success 200 {object} models.Inquiry
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /inquiries/{id} [get]
func (c *InquiryController) GetInquiry(ctx *gin.Context) {
	identity, ok := requireIdentity(ctx)
	if !ok {
		return
	}

	inquiry, err := c.inquiryService.GetInquiry(ctx.Request.Context(), identity, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, inquiry)
}

// UpdateInquiryStatus godoc
// @Summary Mark an inquiry read or replied
// @Tags inquiries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Inquiry ID"
// @Param request body dto.UpdateInquiryStatusRequest true "New status"
// @Success 200 {object} models.Inquiry
// @Failure 400 {object} dto.ErrorResponse "Invalid status transition"
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /inquiries/{id}/status [patch]
func (c *InquiryController) UpdateInquiryStatus(ctx *gin.Context) {
	identity, ok := requireIdentity(ctx)
	if !ok {
		return
	}

	var req dto.UpdateInquiryStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	inquiry, err := c.inquiryService.UpdateStatus(ctx.Request.Context(), identity, ctx.Param("id"), req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, inquiry)
}
