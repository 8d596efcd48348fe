package flow

// State is the position of one generate-and-mint cycle.
type State string

const (
	StateIdle        State = "idle"
	StateGenerating  State = "generating"
	StateReadyToMint State = "readyToMint"
	StateMinting     State = "minting"
	StateMintSuccess State = "mintSuccess"
	StateMintError   State = "mintError"
)

// Action is the primary action the presentation layer should offer.
type Action string

const (
	ActionGenerate Action = "generate"
	ActionMint     Action = "mint"
	ActionNone     Action = "none"
)

// Session is the serializable snapshot of the controller's state. It is
// passed by value so transitions can be unit tested without a live UI.
type Session struct {
	State             State  `json:"state"`
	GeneratedImageURL string `json:"generatedImageUrl,omitempty"`
	GeneratedImageID  string `json:"generatedImageId,omitempty"`
	UserID            string `json:"userId,omitempty"`
	TxHash            string `json:"txHash,omitempty"`
	ErrorMessage      string `json:"errorMessage,omitempty"`
}
