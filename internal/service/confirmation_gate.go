package service

import (
	"context"
	"errors"
	"sync"
)

var ErrNoActiveConfirmation = errors.New("no confirmation is active")

// GateState is the visibility of the confirmation prompt.
type GateState string

const (
	GateClosed GateState = "closed"
	GateOpen   GateState = "open"
)

// Severity hints how the prompt should be rendered.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// ConfirmConfig describes one confirmation prompt. OnConfirm runs the guarded
// action; closing the gate afterwards is the action's responsibility.
type ConfirmConfig struct {
	Title       string                          `json:"title"`
	Message     string                          `json:"message"`
	Severity    Severity                        `json:"severity"`
	ConfirmText string                          `json:"confirmText"`
	CancelText  string                          `json:"cancelText"`
	OnConfirm   func(ctx context.Context) error `json:"-"`
}

// ConfirmationGate coordinates "are you sure" prompts ahead of destructive
// actions. At most one config is active; Show while open replaces it.
type ConfirmationGate struct {
	mu     sync.Mutex
	state  GateState
	config ConfirmConfig
}

func NewConfirmationGate() *ConfirmationGate {
	return &ConfirmationGate{state: GateClosed}
}

// Show opens the gate with the given config. Last caller wins.
func (g *ConfirmationGate) Show(config ConfirmConfig) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if config.Severity == "" {
		config.Severity = SeverityWarning
	}
	if config.ConfirmText == "" {
		config.ConfirmText = "Confirm"
	}
	if config.CancelText == "" {
		config.CancelText = "Cancel"
	}
	g.config = config
	g.state = GateOpen
}

// Confirm runs the active config's OnConfirm. The gate stays open until the
// guarded action hides it, so a failed action may keep the prompt visible.
func (g *ConfirmationGate) Confirm(ctx context.Context) error {
	g.mu.Lock()
	if g.state != GateOpen {
		g.mu.Unlock()
		return ErrNoActiveConfirmation
	}
	onConfirm := g.config.OnConfirm
	g.mu.Unlock()

	if onConfirm == nil {
		return nil
	}
	// Invoked outside the lock: the guarded action calls Hide on completion.
	return onConfirm(ctx)
}

// Cancel closes the gate without invoking OnConfirm.
func (g *ConfirmationGate) Cancel() {
	g.Hide()
}

// Hide closes the gate and clears the active config. Idempotent.
func (g *ConfirmationGate) Hide() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.state = GateClosed
	g.config = ConfirmConfig{}
}

func (g *ConfirmationGate) State() GateState {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.state
}

func (g *ConfirmationGate) IsOpen() bool {
	return g.State() == GateOpen
}

// Active returns the current config; zero-valued when closed.
func (g *ConfirmationGate) Active() ConfirmConfig {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.config
}
