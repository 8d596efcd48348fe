package services

import (
	"log"

	"github.com/google/uuid"

	"avatar-mint-backend/internal/apperr"
	"avatar-mint-backend/internal/avatargen"
	"avatar-mint-backend/internal/models"
	"avatar-mint-backend/internal/supabase"
)

// FallbackFID stands in when the client supplies no Farcaster identity.
const FallbackFID = "unknown-fid"

// Store is the slice of the persistence gateway the services depend on.
type Store interface {
	UpsertUserByFarcasterFID(fid string, walletAddress *string) (*models.User, error)
	InsertGeneratedImage(userID uuid.UUID, sourceURL, generatedURL string) (*models.GeneratedImage, error)
	InsertMintRecord(userID, generatedImageID uuid.UUID, txHash, network, priceEth string) (*models.MintRecord, error)
}

// AvatarGenerator produces a stylized image reference from a source image.
type AvatarGenerator interface {
	Generate(sourceImageURL, userID string) (string, error)
}

// AvatarStorage hosts generated image bytes and returns a public URL.
type AvatarStorage interface {
	UploadAvatar(userID, imageID uuid.UUID, contentType string, data []byte) (string, error)
	DeleteAvatar(userID, imageID uuid.UUID) error
}

// EventPublisher pushes realtime notifications to the user's channel.
type EventPublisher interface {
	PublishUserEvent(userID uuid.UUID, event string, payload map[string]interface{}) error
}

type GenerationService struct {
	store     Store
	generator AvatarGenerator
	storage   AvatarStorage  // optional
	events    EventPublisher // optional
}

func NewGenerationService(store Store, generator AvatarGenerator, storage AvatarStorage, events EventPublisher) *GenerationService {
	return &GenerationService{
		store:     store,
		generator: generator,
		storage:   storage,
		events:    events,
	}
}

// HandleGenerate runs the generation sequence: validate input, upsert the
// user, call the provider, persist the result. Each step requires the
// previous one; a failure after the upsert leaves the user row in place.
func (s *GenerationService) HandleGenerate(req models.GenerateRequest) (*models.GenerateResponse, error) {
	if req.SourceProfileImageURL == "" {
		return nil, apperr.Validation("sourceProfileImageUrl is required")
	}

	fid := req.FarcasterFID
	if fid == "" {
		fid = FallbackFID
	}

	var wallet *string
	if req.WalletAddress != "" {
		wallet = &req.WalletAddress
	}

	user, err := s.store.UpsertUserByFarcasterFID(fid, wallet)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindPersistence, "failed to upsert user", err)
	}

	generatedURL, err := s.generator.Generate(req.SourceProfileImageURL, user.ID.String())
	if err != nil {
		return nil, err
	}

	generatedURL, hostedID := s.hostImage(user.ID, generatedURL)

	image, err := s.store.InsertGeneratedImage(user.ID, req.SourceProfileImageURL, generatedURL)
	if err != nil {
		if hostedID != uuid.Nil {
			if delErr := s.storage.DeleteAvatar(user.ID, hostedID); delErr != nil {
				log.Printf("failed to delete orphaned avatar upload: %v", delErr)
			}
		}
		return nil, apperr.Wrap(apperr.KindPersistence, "failed to insert generated image", err)
	}

	if s.events != nil {
		if err := s.events.PublishUserEvent(user.ID, "generation_completed",
			supabase.GenerationCompletedPayload(user.ID, image.ID, image.GeneratedImageURL)); err != nil {
			log.Printf("failed to publish generation event: %v", err)
		}
	}

	return &models.GenerateResponse{
		GeneratedImageID:  image.ID.String(),
		GeneratedImageURL: image.GeneratedImageURL,
		UserID:            user.ID.String(),
	}, nil
}

// hostImage uploads a data-URI result to the storage bucket and returns its
// public URL plus the id of the hosted object, uuid.Nil when nothing was
// uploaded. Hosting is best effort: on any failure the data URI is kept so a
// storage outage cannot fail an otherwise successful generation.
func (s *GenerationService) hostImage(userID uuid.UUID, generatedURL string) (string, uuid.UUID) {
	if s.storage == nil || !avatargen.IsDataURI(generatedURL) {
		return generatedURL, uuid.Nil
	}

	contentType, data, err := avatargen.DecodeDataURI(generatedURL)
	if err != nil {
		log.Printf("failed to decode generated image data uri: %v", err)
		return generatedURL, uuid.Nil
	}

	hostedID := uuid.New()
	publicURL, err := s.storage.UploadAvatar(userID, hostedID, contentType, data)
	if err != nil {
		log.Printf("failed to upload generated image to storage: %v", err)
		return generatedURL, uuid.Nil
	}

	return publicURL, hostedID
}
