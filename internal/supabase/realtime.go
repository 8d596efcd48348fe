package supabase

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/supabase-community/supabase-go"
)

type RealtimeClient struct {
	client *supabase.Client
}

func NewRealtimeClient(client *supabase.Client) *RealtimeClient {
	return &RealtimeClient{
		client: client,
	}
}

func (r *RealtimeClient) PublishEvent(channel string, event string, payload map[string]interface{}) error {
	// The Supabase Go client has no direct Realtime publish; row writes on the
	// users/generated_images/mints tables already trigger Realtime changefeeds.
	// Kept as the seam for explicit event publishing via the Realtime REST API.
	return nil
}

func (r *RealtimeClient) PublishUserEvent(userID uuid.UUID, event string, payload map[string]interface{}) error {
	channel := fmt.Sprintf("user:%s", userID.String())
	return r.PublishEvent(channel, event, payload)
}

// Event payloads

func GenerationCompletedPayload(userID, imageID uuid.UUID, imageURL string) map[string]interface{} {
	return map[string]interface{}{
		"user_id":             userID.String(),
		"generated_image_id":  imageID.String(),
		"generated_image_url": imageURL,
		"status":              "generated",
	}
}

func MintRecordedPayload(userID, mintID uuid.UUID, txHash string) map[string]interface{} {
	return map[string]interface{}{
		"user_id": userID.String(),
		"mint_id": mintID.String(),
		"tx_hash": txHash,
		"status":  "minted",
	}
}
