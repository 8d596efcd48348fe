package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"avatar-mint-backend/internal/apperr"
	"avatar-mint-backend/internal/models"
)

// MintRecorder is the server boundary behind POST /api/mint.
type MintRecorder interface {
	HandleMintConfirmed(req models.MintConfirmRequest) (*models.MintConfirmResponse, error)
}

type MintHandler struct {
	service MintRecorder
}

func NewMintHandler(service MintRecorder) *MintHandler {
	return &MintHandler{service: service}
}

// Confirm records a completed on-chain mint reported by the client.
func (h *MintHandler) Confirm(c *gin.Context) {
	var req models.MintConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}

	resp, err := h.service.HandleMintConfirmed(req)
	if err != nil {
		if apperr.IsKind(err, apperr.KindValidation) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: apperr.Message(err)})
			return
		}
		log.Printf("[mint] error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "internal server error"})
		return
	}

	c.JSON(http.StatusOK, resp)
}
