package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"avatar-mint-backend/internal/apperr"
	"avatar-mint-backend/internal/models"
)

// Generator is the server boundary behind POST /api/generate-character.
type Generator interface {
	HandleGenerate(req models.GenerateRequest) (*models.GenerateResponse, error)
}

type GenerateHandler struct {
	service Generator
}

func NewGenerateHandler(service Generator) *GenerateHandler {
	return &GenerateHandler{service: service}
}

// Generate accepts a source profile image plus identity claim and returns the
// generation handle. Validation failures map to 400; everything else is
// logged in full and reported as a generic 500.
func (h *GenerateHandler) Generate(c *gin.Context) {
	var req models.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}

	resp, err := h.service.HandleGenerate(req)
	if err != nil {
		if apperr.IsKind(err, apperr.KindValidation) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: apperr.Message(err)})
			return
		}
		log.Printf("[generate-character] error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "internal server error"})
		return
	}

	c.JSON(http.StatusOK, resp)
}
