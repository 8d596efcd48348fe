package handlers

import (
	"database/sql"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"avatar-mint-backend/internal/models"
)

// ImageReader is the read side of the persistence gateway used by the
// image status endpoint.
type ImageReader interface {
	GetGeneratedImage(imageID uuid.UUID) (*models.GeneratedImage, error)
	GetUser(userID uuid.UUID) (*models.User, error)
	ListMintsForImage(imageID uuid.UUID) ([]models.MintRecord, error)
}

type ImagesHandler struct {
	store ImageReader
}

func NewImagesHandler(store ImageReader) *ImagesHandler {
	return &ImagesHandler{store: store}
}

// GetImage returns a generated image together with its owner and any mints
// recorded for it.
func (h *ImagesHandler) GetImage(c *gin.Context) {
	imageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid image id"})
		return
	}

	image, err := h.store.GetGeneratedImage(imageID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "image not found"})
			return
		}
		log.Printf("[images] error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "internal server error"})
		return
	}

	user, err := h.store.GetUser(image.UserID)
	if err != nil {
		log.Printf("[images] error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "internal server error"})
		return
	}

	mints, err := h.store.ListMintsForImage(imageID)
	if err != nil {
		log.Printf("[images] error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "internal server error"})
		return
	}

	resp := models.ImageStatusResponse{
		GeneratedImageID:  image.ID.String(),
		GeneratedImageURL: image.GeneratedImageURL,
		UserID:            user.ID.String(),
		FarcasterFID:      user.FarcasterFID,
		Mints:             make([]models.MintSummary, 0, len(mints)),
	}
	for _, mint := range mints {
		resp.Mints = append(resp.Mints, models.MintSummary{
			MintID:   mint.ID.String(),
			TxHash:   mint.TxHash,
			Network:  mint.Network,
			PriceEth: mint.PriceEth,
		})
	}

	c.JSON(http.StatusOK, resp)
}
