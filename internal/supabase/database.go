package supabase

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"avatar-mint-backend/internal/models"
)

type DatabaseClient struct {
	db *sql.DB
}

func NewDatabaseClient(connectionString string) (*DatabaseClient, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DatabaseClient{db: db}, nil
}

// UpsertUserByFarcasterFID inserts a user keyed by fid or, on conflict,
// refreshes the wallet address. COALESCE keeps the stored wallet when the
// caller passes none, so a wallet is never cleared by a null.
func (d *DatabaseClient) UpsertUserByFarcasterFID(fid string, walletAddress *string) (*models.User, error) {
	var user models.User
	err := d.db.QueryRow(`
		INSERT INTO users (farcaster_fid, wallet_address)
		VALUES ($1, $2)
		ON CONFLICT (farcaster_fid)
		DO UPDATE SET wallet_address = COALESCE(EXCLUDED.wallet_address, users.wallet_address)
		RETURNING id, farcaster_fid, wallet_address, created_at
	`, fid, walletAddress).Scan(
		&user.ID, &user.FarcasterFID, &user.WalletAddress, &user.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}

	return &user, nil
}

func (d *DatabaseClient) GetUser(userID uuid.UUID) (*models.User, error) {
	var user models.User
	err := d.db.QueryRow(`
		SELECT id, farcaster_fid, wallet_address, created_at
		FROM users
		WHERE id = $1
	`, userID).Scan(
		&user.ID, &user.FarcasterFID, &user.WalletAddress, &user.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

func (d *DatabaseClient) InsertGeneratedImage(userID uuid.UUID, sourceURL, generatedURL string) (*models.GeneratedImage, error) {
	var image models.GeneratedImage
	err := d.db.QueryRow(`
		INSERT INTO generated_images (user_id, source_profile_image_url, generated_image_url)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, source_profile_image_url, generated_image_url, created_at
	`, userID, sourceURL, generatedURL).Scan(
		&image.ID, &image.UserID, &image.SourceProfileImageURL,
		&image.GeneratedImageURL, &image.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert generated image: %w", err)
	}

	return &image, nil
}

func (d *DatabaseClient) GetGeneratedImage(imageID uuid.UUID) (*models.GeneratedImage, error) {
	var image models.GeneratedImage
	err := d.db.QueryRow(`
		SELECT id, user_id, source_profile_image_url, generated_image_url, created_at
		FROM generated_images
		WHERE id = $1
	`, imageID).Scan(
		&image.ID, &image.UserID, &image.SourceProfileImageURL,
		&image.GeneratedImageURL, &image.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get generated image: %w", err)
	}

	return &image, nil
}

func (d *DatabaseClient) InsertMintRecord(userID, generatedImageID uuid.UUID, txHash, network, priceEth string) (*models.MintRecord, error) {
	var mint models.MintRecord
	err := d.db.QueryRow(`
		INSERT INTO mints (user_id, generated_image_id, tx_hash, network, price_eth)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, generated_image_id, tx_hash, network, price_eth, created_at
	`, userID, generatedImageID, txHash, network, priceEth).Scan(
		&mint.ID, &mint.UserID, &mint.GeneratedImageID,
		&mint.TxHash, &mint.Network, &mint.PriceEth, &mint.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert mint record: %w", err)
	}

	return &mint, nil
}

func (d *DatabaseClient) ListMintsForImage(generatedImageID uuid.UUID) ([]models.MintRecord, error) {
	rows, err := d.db.Query(`
		SELECT id, user_id, generated_image_id, tx_hash, network, price_eth, created_at
		FROM mints
		WHERE generated_image_id = $1
		ORDER BY created_at DESC
	`, generatedImageID)
	if err != nil {
		return nil, fmt.Errorf("failed to list mints: %w", err)
	}
	defer rows.Close()

	var mints []models.MintRecord
	for rows.Next() {
		var mint models.MintRecord
		err := rows.Scan(
			&mint.ID, &mint.UserID, &mint.GeneratedImageID,
			&mint.TxHash, &mint.Network, &mint.PriceEth, &mint.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan mint: %w", err)
		}
		mints = append(mints, mint)
	}

	return mints, nil
}

func (d *DatabaseClient) Close() error {
	return d.db.Close()
}
