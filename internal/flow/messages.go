package flow

// Messages holds the user-facing strings the controller surfaces. Localized
// message loading is an external concern; callers pass their own translation
// or keep the English defaults.
type Messages struct {
	Generate       string
	Generating     string
	Mint           string
	Minting        string
	Success        string
	Subtitle       string
	GeneratedReady string

	GenericError     string
	ConnectWallet    string
	NoGeneratedImage string
	MissingContract  string
}

func DefaultMessages() Messages {
	return Messages{
		Generate:       "Generate avatar",
		Generating:     "Generating...",
		Mint:           "Mint NFT",
		Minting:        "Minting...",
		Success:        "Minted!",
		Subtitle:       "Turn your profile picture into a Disney-style avatar and mint it as an NFT.",
		GeneratedReady: "Your avatar is ready to mint.",

		GenericError:     "Something went wrong. Please try again.",
		ConnectWallet:    "Connect your wallet first.",
		NoGeneratedImage: "No generated image to mint.",
		MissingContract:  "Missing NFT contract address.",
	}
}
