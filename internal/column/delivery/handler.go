package delivery

import (
	"net/http"

	"github.com/Real-Streeter/liberty-command/internal/column/usecase"
	"github.com/Real-Streeter/liberty-command/internal/httperr"

	"github.com/gin-gonic/gin"
)

// ColumnHandler serves the board
type ColumnHandler struct {
	boardUsecase usecase.BoardUsecase
}

func NewColumnHandler(boardUsecase usecase.BoardUsecase) *ColumnHandler {
	return &ColumnHandler{boardUsecase: boardUsecase}
}

// GetColumns returns all columns with their tasks. ?q= keeps only matching
// tasks.
// GET /api/columns
func (h *ColumnHandler) GetColumns(c *gin.Context) {
	board, err := h.boardUsecase.SearchBoard(c.Request.Context(), c.Query("q"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, board)
}
