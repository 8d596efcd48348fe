package services_test

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"avatar-mint-backend/internal/models"
)

// fakeStore mirrors the gateway's SQL semantics in memory: user upsert keyed
// by fid with COALESCE wallet handling, append-only images and mints.
type fakeStore struct {
	users  map[string]*models.User
	images []models.GeneratedImage
	mints  []models.MintRecord

	upsertCalls     int
	failUpsert      error
	failImageInsert error
	failMintInsert  error
}

func newFakeStore() *fakeStore {
	return &fakeStore{users: make(map[string]*models.User)}
}

func (f *fakeStore) UpsertUserByFarcasterFID(fid string, walletAddress *string) (*models.User, error) {
	f.upsertCalls++
	if f.failUpsert != nil {
		return nil, f.failUpsert
	}

	user, ok := f.users[fid]
	if !ok {
		user = &models.User{
			ID:           uuid.New(),
			FarcasterFID: fid,
			CreatedAt:    time.Now(),
		}
		f.users[fid] = user
	}
	if walletAddress != nil {
		user.WalletAddress = sql.NullString{String: *walletAddress, Valid: true}
	}

	copied := *user
	return &copied, nil
}

func (f *fakeStore) InsertGeneratedImage(userID uuid.UUID, sourceURL, generatedURL string) (*models.GeneratedImage, error) {
	if f.failImageInsert != nil {
		return nil, f.failImageInsert
	}

	image := models.GeneratedImage{
		ID:                    uuid.New(),
		UserID:                userID,
		SourceProfileImageURL: sourceURL,
		GeneratedImageURL:     generatedURL,
		CreatedAt:             time.Now(),
	}
	f.images = append(f.images, image)
	return &image, nil
}

func (f *fakeStore) InsertMintRecord(userID, generatedImageID uuid.UUID, txHash, network, priceEth string) (*models.MintRecord, error) {
	if f.failMintInsert != nil {
		return nil, f.failMintInsert
	}

	mint := models.MintRecord{
		ID:               uuid.New(),
		UserID:           userID,
		GeneratedImageID: generatedImageID,
		TxHash:           txHash,
		Network:          network,
		PriceEth:         priceEth,
		CreatedAt:        time.Now(),
	}
	f.mints = append(f.mints, mint)
	return &mint, nil
}

type fakeGenerator struct {
	result string
	err    error
	calls  int
}

func (f *fakeGenerator) Generate(sourceImageURL, userID string) (string, error) {
	f.calls++
	return f.result, f.err
}

type fakeStorage struct {
	publicURL string
	err       error
	calls     int
	lastData  []byte

	deleteCalls  int
	lastDeleteID uuid.UUID
}

func (f *fakeStorage) UploadAvatar(userID, imageID uuid.UUID, contentType string, data []byte) (string, error) {
	f.calls++
	f.lastData = data
	if f.err != nil {
		return "", f.err
	}
	return f.publicURL, nil
}

func (f *fakeStorage) DeleteAvatar(userID, imageID uuid.UUID) error {
	f.deleteCalls++
	f.lastDeleteID = imageID
	return nil
}

type fakeEvents struct {
	events []string
}

func (f *fakeEvents) PublishUserEvent(userID uuid.UUID, event string, payload map[string]interface{}) error {
	f.events = append(f.events, event)
	return nil
}

type fakeVerifier struct {
	err   error
	calls int
}

func (f *fakeVerifier) VerifyMint(txHash string) error {
	f.calls++
	return f.err
}
