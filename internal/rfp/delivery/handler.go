package delivery

import (
	"net/http"

	"github.com/Real-Streeter/liberty-command/internal/httperr"
	"github.com/Real-Streeter/liberty-command/internal/rfp/dto"
	"github.com/Real-Streeter/liberty-command/internal/rfp/usecase"

	"github.com/gin-gonic/gin"
)

// RfpHandler handles RFP tracking requests
type RfpHandler struct {
	rfpUsecase usecase.RfpUsecase
}

func NewRfpHandler(rfpUsecase usecase.RfpUsecase) *RfpHandler {
	return &RfpHandler{rfpUsecase: rfpUsecase}
}

func (h *RfpHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.ListRfps)
	rg.POST("", h.CreateRfp)
	rg.PUT("/:id", h.UpdateRfp)
	rg.DELETE("/:id", h.DeleteRfp)
}

// ListRfps
// GET /api/rfps
func (h *RfpHandler) ListRfps(c *gin.Context) {
	rfps, err := h.rfpUsecase.ListRfps(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, rfps)
}

// CreateRfp
// POST /api/rfps
func (h *RfpHandler) CreateRfp(c *gin.Context) {
	var req dto.CreateRfpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err)
		return
	}

	rfp, err := h.rfpUsecase.CreateRfp(c.Request.Context(), req)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, rfp)
}

// UpdateRfp
// PUT /api/rfps/:id
func (h *RfpHandler) UpdateRfp(c *gin.Context) {
	var req dto.UpdateRfpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err)
		return
	}

	if _, err := h.rfpUsecase.UpdateRfp(c.Request.Context(), c.Param("id"), req); err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Updated"})
}

// DeleteRfp
// DELETE /api/rfps/:id
func (h *RfpHandler) DeleteRfp(c *gin.Context) {
	if err := h.rfpUsecase.DeleteRfp(c.Request.Context(), c.Param("id")); err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}
