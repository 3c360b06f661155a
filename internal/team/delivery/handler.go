package delivery

import (
	"net/http"

	authdelivery "github.com/Real-Streeter/liberty-command/internal/auth/delivery"
	authdto "github.com/Real-Streeter/liberty-command/internal/auth/dto"
	"github.com/Real-Streeter/liberty-command/internal/httperr"
	"github.com/Real-Streeter/liberty-command/internal/team/dto"
	"github.com/Real-Streeter/liberty-command/internal/team/usecase"

	"github.com/gin-gonic/gin"
)

// TeamHandler handles roster requests
type TeamHandler struct {
	teamUsecase usecase.TeamUsecase
}

func NewTeamHandler(teamUsecase usecase.TeamUsecase) *TeamHandler {
	return &TeamHandler{teamUsecase: teamUsecase}
}

// Register mounts the roster routes on an authenticated group. Adding and
// removing members additionally needs requireAdmin.
func (h *TeamHandler) Register(rg *gin.RouterGroup, requireAdmin gin.HandlerFunc) {
	rg.GET("", h.ListMembers)
	rg.POST("", requireAdmin, h.CreateMember)
	rg.PUT("/:id", h.UpdateMember)
	rg.DELETE("/:id", requireAdmin, h.DeleteMember)
}

// ListMembers
// GET /api/team
func (h *TeamHandler) ListMembers(c *gin.Context) {
	members, err := h.teamUsecase.ListMembers(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, members)
}

// CreateMember
// POST /api/team
func (h *TeamHandler) CreateMember(c *gin.Context) {
	var req dto.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err)
		return
	}

	member, err := h.teamUsecase.CreateMember(c.Request.Context(), req)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, authdto.NewMemberResponse(member))
}

// UpdateMember
// PUT /api/team/:id
func (h *TeamHandler) UpdateMember(c *gin.Context) {
	var req dto.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err)
		return
	}

	if _, err := h.teamUsecase.UpdateMember(c.Request.Context(), c.Param("id"), req); err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Updated"})
}

// DeleteMember
// DELETE /api/team/:id
func (h *TeamHandler) DeleteMember(c *gin.Context) {
	actor := authdelivery.CurrentMember(c)
	actorID := ""
	if actor != nil {
		actorID = actor.ID
	}

	if err := h.teamUsecase.DeleteMember(c.Request.Context(), actorID, c.Param("id")); err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}
