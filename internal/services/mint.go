package services

import (
	"log"

	"github.com/google/uuid"

	"avatar-mint-backend/internal/apperr"
	"avatar-mint-backend/internal/models"
	"avatar-mint-backend/internal/supabase"
)

// Fixed bookkeeping values recorded with every confirmed mint.
const (
	MintNetwork  = "base-mainnet"
	MintPriceEth = "0.001"
)

// TxVerifier checks a reported transaction hash against the chain.
type TxVerifier interface {
	VerifyMint(txHash string) error
}

type MintService struct {
	store    Store
	verifier TxVerifier     // optional; nil trusts the caller's report
	events   EventPublisher // optional
}

func NewMintService(store Store, verifier TxVerifier, events EventPublisher) *MintService {
	return &MintService{
		store:    store,
		verifier: verifier,
		events:   events,
	}
}

// HandleMintConfirmed records a client-reported mint. Without a verifier the
// hash is taken at face value; the record is bookkeeping, not proof.
func (s *MintService) HandleMintConfirmed(req models.MintConfirmRequest) (*models.MintConfirmResponse, error) {
	if req.GeneratedImageID == "" || req.UserID == "" || req.TxHash == "" {
		return nil, apperr.Validation("generatedImageId, userId and txHash are required")
	}

	imageID, err := uuid.Parse(req.GeneratedImageID)
	if err != nil {
		return nil, apperr.Validation("generatedImageId is not a valid id")
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, apperr.Validation("userId is not a valid id")
	}

	if s.verifier != nil {
		if err := s.verifier.VerifyMint(req.TxHash); err != nil {
			return nil, apperr.Wrap(apperr.KindValidation, "transaction failed verification", err)
		}
	}

	mint, err := s.store.InsertMintRecord(userID, imageID, req.TxHash, MintNetwork, MintPriceEth)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindPersistence, "failed to insert mint record", err)
	}

	if s.events != nil {
		if err := s.events.PublishUserEvent(userID, "mint_recorded",
			supabase.MintRecordedPayload(userID, mint.ID, mint.TxHash)); err != nil {
			log.Printf("failed to publish mint event: %v", err)
		}
	}

	return &models.MintConfirmResponse{
		OK:     true,
		MintID: mint.ID.String(),
	}, nil
}
