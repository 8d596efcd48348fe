package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"avatar-mint-backend/internal/apperr"
	"avatar-mint-backend/internal/handlers"
	"avatar-mint-backend/internal/models"
)

type stubGenerator struct {
	resp *models.GenerateResponse
	err  error
}

func (s *stubGenerator) HandleGenerate(req models.GenerateRequest) (*models.GenerateResponse, error) {
	return s.resp, s.err
}

type stubRecorder struct {
	resp *models.MintConfirmResponse
	err  error
}

func (s *stubRecorder) HandleMintConfirmed(req models.MintConfirmRequest) (*models.MintConfirmResponse, error) {
	return s.resp, s.err
}

func generateRouter(svc handlers.Generator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/generate-character", handlers.NewGenerateHandler(svc).Generate)
	return router
}

func mintRouter(svc handlers.MintRecorder) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/mint", handlers.NewMintHandler(svc).Confirm)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req, _ := http.NewRequest("POST", path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/health", handlers.HealthHandler)

	req, _ := http.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}

func TestGenerate_Success(t *testing.T) {
	svc := &stubGenerator{resp: &models.GenerateResponse{
		GeneratedImageID:  uuid.NewString(),
		GeneratedImageURL: "data:image/png;base64,aGk=",
		UserID:            uuid.NewString(),
	}}
	router := generateRouter(svc)

	w := postJSON(t, router, "/api/generate-character", models.GenerateRequest{
		SourceProfileImageURL: "https://example.com/pfp.png",
		FarcasterFID:          "12345",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.GenerateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, svc.resp.GeneratedImageID, resp.GeneratedImageID)
	assert.Equal(t, svc.resp.GeneratedImageURL, resp.GeneratedImageURL)
	assert.Equal(t, svc.resp.UserID, resp.UserID)
}

func TestGenerate_MalformedBody(t *testing.T) {
	router := generateRouter(&stubGenerator{})

	req, _ := http.NewRequest("POST", "/api/generate-character", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestGenerate_ValidationErrorReturns400(t *testing.T) {
	svc := &stubGenerator{err: apperr.Validation("sourceProfileImageUrl is required")}
	router := generateRouter(svc)

	w := postJSON(t, router, "/api/generate-character", models.GenerateRequest{})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "sourceProfileImageUrl is required", resp.Error)
}

func TestGenerate_UpstreamErrorReturnsGeneric500(t *testing.T) {
	svc := &stubGenerator{err: apperr.Wrap(apperr.KindUpstreamProvider,
		"image provider returned status 500", errors.New("boom"))}
	router := generateRouter(svc)

	w := postJSON(t, router, "/api/generate-character", models.GenerateRequest{
		SourceProfileImageURL: "https://example.com/pfp.png",
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "internal server error", resp.Error)
	assert.NotContains(t, w.Body.String(), "boom")
}

func TestMintConfirm_Success(t *testing.T) {
	svc := &stubRecorder{resp: &models.MintConfirmResponse{OK: true, MintID: uuid.NewString()}}
	router := mintRouter(svc)

	w := postJSON(t, router, "/api/mint", models.MintConfirmRequest{
		GeneratedImageID: uuid.NewString(),
		UserID:           uuid.NewString(),
		TxHash:           "0xabc",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.MintConfirmResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.Equal(t, svc.resp.MintID, resp.MintID)
}

func TestMintConfirm_ValidationErrorReturns400(t *testing.T) {
	svc := &stubRecorder{err: apperr.Validation("generatedImageId, userId and txHash are required")}
	router := mintRouter(svc)

	w := postJSON(t, router, "/api/mint", models.MintConfirmRequest{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "generatedImageId, userId and txHash are required")
}

func TestMintConfirm_PersistenceErrorReturnsGeneric500(t *testing.T) {
	svc := &stubRecorder{err: apperr.Wrap(apperr.KindPersistence,
		"failed to insert mint record", errors.New("connection refused"))}
	router := mintRouter(svc)

	w := postJSON(t, router, "/api/mint", models.MintConfirmRequest{
		GeneratedImageID: uuid.NewString(),
		UserID:           uuid.NewString(),
		TxHash:           "0xabc",
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
	assert.NotContains(t, w.Body.String(), "connection refused")
}
