package supabase

import (
	"bytes"
	"fmt"

	"github.com/google/uuid"
	storage "github.com/supabase-community/storage-go"
)

type StorageClient struct {
	client  *storage.Client
	bucket  string
	baseURL string
}

func NewStorageClient(supabaseURL, serviceKey, bucket string) (*StorageClient, error) {
	baseURL := supabaseURL
	if len(baseURL) > 0 && baseURL[len(baseURL)-1] == '/' {
		baseURL = baseURL[:len(baseURL)-1]
	}
	client := storage.NewClient(baseURL+"/storage/v1", serviceKey, nil)

	return &StorageClient{
		client:  client,
		bucket:  bucket,
		baseURL: baseURL,
	}, nil
}

func avatarPath(userID, imageID uuid.UUID) string {
	return fmt.Sprintf("users/%s/avatars/%s.png", userID.String(), imageID.String())
}

// UploadAvatar stores a generated avatar under
// users/{user_id}/avatars/{image_id}.png and returns the public URL.
func (s *StorageClient) UploadAvatar(userID, imageID uuid.UUID, contentType string, data []byte) (string, error) {
	storagePath := avatarPath(userID, imageID)

	upsert := true
	_, err := s.client.UploadFile(s.bucket, storagePath, bytes.NewReader(data), storage.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload avatar: %w", err)
	}

	return s.GetPublicURL(storagePath), nil
}

func (s *StorageClient) GetPublicURL(storagePath string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s",
		s.baseURL, s.bucket, storagePath)
}

// DeleteAvatar removes a previously uploaded avatar, e.g. one orphaned by a
// failed database insert.
func (s *StorageClient) DeleteAvatar(userID, imageID uuid.UUID) error {
	_, err := s.client.RemoveFile(s.bucket, []string{avatarPath(userID, imageID)})
	if err != nil {
		return fmt.Errorf("failed to delete avatar: %w", err)
	}
	return nil
}
