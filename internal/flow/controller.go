// Package flow drives the user journey from avatar generation through mint
// confirmation as an explicit state machine. The controller owns a single
// session, permits one outstanding operation at a time, and exposes state,
// status text, label and primary action to the presentation layer.
package flow

import (
	"errors"
	"sync"

	"avatar-mint-backend/internal/minttx"
	"avatar-mint-backend/internal/models"
)

// Demo identity used when no Farcaster miniapp context is available.
const (
	DemoProfileImageURL = "https://images.unsplash.com/photo-1527980965255-d3b416303d12?w=800"
	DemoFID             = "demo-fid"
	fallbackUserID      = "unknown-user"
)

var (
	ErrClosed           = errors.New("flow: controller is closed")
	ErrActionNotAllowed = errors.New("flow: action not allowed in current state")

	ErrWalletNotConnected    = errors.New("flow: wallet address missing")
	ErrNoGeneratedImage      = errors.New("flow: no generated image to mint")
	ErrContractNotConfigured = errors.New("flow: contract address not configured")
)

// Generator is the generation server boundary.
type Generator interface {
	Generate(req models.GenerateRequest) (*models.GenerateResponse, error)
}

// WalletSigner submits the mint call to the user's wallet and returns the
// transaction hash, or an error on rejection or signing failure.
type WalletSigner interface {
	SignMint(cfg *minttx.CallConfig) (string, error)
}

// MintRecorder is the mint-confirmation server boundary.
type MintRecorder interface {
	RecordMint(req models.MintConfirmRequest) (string, error)
}

// ControllerConfig wires the controller's collaborators and identity.
type ControllerConfig struct {
	Generator Generator
	Signer    WalletSigner
	Recorder  MintRecorder

	ContractAddress string
	ProfileImageURL string
	FarcasterFID    string
	WalletAddress   string
	Messages        *Messages
}

type Controller struct {
	mu      sync.Mutex
	session Session
	closed  bool

	generator Generator
	signer    WalletSigner
	recorder  MintRecorder

	contractAddress string
	profileImageURL string
	fid             string
	wallet          string
	msgs            Messages
}

func NewController(cfg ControllerConfig) *Controller {
	msgs := DefaultMessages()
	if cfg.Messages != nil {
		msgs = *cfg.Messages
	}

	profileImageURL := cfg.ProfileImageURL
	if profileImageURL == "" {
		profileImageURL = DemoProfileImageURL
	}

	fid := cfg.FarcasterFID
	if fid == "" {
		fid = DemoFID
	}

	return &Controller{
		session:         Session{State: StateIdle},
		generator:       cfg.Generator,
		signer:          cfg.Signer,
		recorder:        cfg.Recorder,
		contractAddress: cfg.ContractAddress,
		profileImageURL: profileImageURL,
		fid:             fid,
		wallet:          cfg.WalletAddress,
		msgs:            msgs,
	}
}

// RestoreController rebuilds a controller around a previously captured
// session snapshot, e.g. one persisted across a page reload.
func RestoreController(cfg ControllerConfig, session Session) *Controller {
	c := NewController(cfg)
	if session.State == "" {
		session.State = StateIdle
	}
	c.session = session
	return c
}

// SetWalletAddress updates the connected wallet. An empty address means the
// wallet disconnected; the stored session is otherwise untouched.
func (c *Controller) SetWalletAddress(addr string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.wallet = addr
}

// Snapshot returns a copy of the current session.
func (c *Controller) Snapshot() Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session.State
}

// PrimaryAction reports which of the two actions the current state enables.
func (c *Controller) PrimaryAction() Action {
	switch c.State() {
	case StateIdle, StateMintSuccess:
		return ActionGenerate
	case StateReadyToMint, StateMintError:
		return ActionMint
	default:
		return ActionNone
	}
}

// StateText returns the card status line for the current state: ready /
// success / error feedback in those states, the subtitle otherwise. In
// mintError the session's specific guard message wins over the generic one.
func (c *Controller) StateText() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.session.State {
	case StateReadyToMint:
		return c.msgs.GeneratedReady
	case StateMintSuccess:
		return c.msgs.Success
	case StateMintError:
		if c.session.ErrorMessage != "" {
			return c.session.ErrorMessage
		}
		return c.msgs.GenericError
	default:
		return c.msgs.Subtitle
	}
}

// Label returns the primary button text for the current state.
func (c *Controller) Label() string {
	switch c.State() {
	case StateGenerating:
		return c.msgs.Generating
	case StateReadyToMint, StateMintError:
		return c.msgs.Mint
	case StateMinting:
		return c.msgs.Minting
	case StateMintSuccess:
		return c.msgs.Success
	default:
		return c.msgs.Generate
	}
}

// Generate starts a new generation cycle. Allowed from idle and mintSuccess;
// a cycle started from mintSuccess supersedes the previous image and hash.
func (c *Controller) Generate() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	switch c.session.State {
	case StateIdle, StateMintSuccess:
	default:
		c.mu.Unlock()
		return ErrActionNotAllowed
	}

	c.session = Session{State: StateGenerating}
	req := models.GenerateRequest{
		SourceProfileImageURL: c.profileImageURL,
		FarcasterFID:          c.fid,
		WalletAddress:         c.wallet,
	}
	c.mu.Unlock()

	resp, err := c.generator.Generate(req)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		// Session was torn down while the request was in flight.
		return ErrClosed
	}

	if err != nil {
		c.session.State = StateIdle
		c.session.ErrorMessage = c.msgs.GenericError
		return err
	}

	c.session.GeneratedImageURL = resp.GeneratedImageURL
	c.session.GeneratedImageID = resp.GeneratedImageID
	c.session.UserID = resp.UserID
	c.session.State = StateReadyToMint
	return nil
}

// Mint signs and records a mint for the generated image. Allowed from
// readyToMint and, as a retry, from mintError. The guards run in order:
// wallet, image, contract; the first failure sets mintError with its
// specific message and the signer is never called.
func (c *Controller) Mint() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	switch c.session.State {
	case StateReadyToMint, StateMintError:
	default:
		c.mu.Unlock()
		return ErrActionNotAllowed
	}

	c.session.ErrorMessage = ""

	if c.wallet == "" {
		c.session.State = StateMintError
		c.session.ErrorMessage = c.msgs.ConnectWallet
		c.mu.Unlock()
		return ErrWalletNotConnected
	}
	if c.session.GeneratedImageURL == "" || c.session.GeneratedImageID == "" {
		c.session.State = StateMintError
		c.session.ErrorMessage = c.msgs.NoGeneratedImage
		c.mu.Unlock()
		return ErrNoGeneratedImage
	}
	if c.contractAddress == "" {
		c.session.State = StateMintError
		c.session.ErrorMessage = c.msgs.MissingContract
		c.mu.Unlock()
		return ErrContractNotConfigured
	}

	cfg, err := minttx.BuildMintCall(c.session.GeneratedImageURL, c.contractAddress, c.wallet)
	if err != nil {
		c.session.State = StateMintError
		c.session.ErrorMessage = c.msgs.GenericError
		c.mu.Unlock()
		return err
	}

	c.session.State = StateMinting
	imageID := c.session.GeneratedImageID
	userID := c.session.UserID
	if userID == "" {
		userID = fallbackUserID
	}
	c.mu.Unlock()

	hash, err := c.signer.SignMint(cfg)
	if err != nil {
		c.failMint()
		return err
	}

	_, recordErr := c.recorder.RecordMint(models.MintConfirmRequest{
		GeneratedImageID: imageID,
		UserID:           userID,
		TxHash:           hash,
	})

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}

	c.session.TxHash = hash
	if recordErr != nil {
		c.session.State = StateMintError
		c.session.ErrorMessage = c.msgs.GenericError
		return recordErr
	}

	c.session.State = StateMintSuccess
	return nil
}

func (c *Controller) failMint() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.session.State = StateMintError
	c.session.ErrorMessage = c.msgs.GenericError
}

// NotifyTxPending receives the wallet's "transaction pending" signal. It is
// informational only: while minting the state already reflects it, and a
// settled cycle (mintError, mintSuccess) is never overridden by it.
func (c *Controller) NotifyTxPending() {
	c.mu.Lock()
	defer c.mu.Unlock()
	// No transition. The signal never moves the machine.
}

// Close freezes the controller. Results of operations still in flight are
// discarded instead of being applied to a torn-down session.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
}
