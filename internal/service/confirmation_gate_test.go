package service_test

import (
	"context"
	"errors"
	"testing"

	"medibook-portal/internal/service"
)

func TestShowLastWriterWins(t *testing.T) {
	gate := service.NewConfirmationGate()

	gate.Show(service.ConfirmConfig{Title: "first", Message: "a"})
	gate.Show(service.ConfirmConfig{Title: "second", Message: "b"})

	if gate.State() != service.GateOpen {
		t.Fatalf("expected open gate, got %s", gate.State())
	}
	if got := gate.Active().Title; got != "second" {
		t.Errorf("expected the second config to win, got %q", got)
	}
}

func TestShowFillsDefaults(t *testing.T) {
	gate := service.NewConfirmationGate()
	gate.Show(service.ConfirmConfig{Title: "t", Message: "m"})

	cfg := gate.Active()
	if cfg.Severity != service.SeverityWarning {
		t.Errorf("expected warning severity default, got %s", cfg.Severity)
	}
	if cfg.ConfirmText != "Confirm" || cfg.CancelText != "Cancel" {
		t.Errorf("expected default button labels, got %q/%q", cfg.ConfirmText, cfg.CancelText)
	}
}

func TestConfirmInvokesOnConfirm(t *testing.T) {
	gate := service.NewConfirmationGate()

	invoked := false
	gate.Show(service.ConfirmConfig{
		Title: "t",
		OnConfirm: func(ctx context.Context) error {
			invoked = true
			gate.Hide()
			return nil
		},
	})

	if err := gate.Confirm(context.Background()); err != nil {
		t.Fatalf("Confirm: %v", err)
	}
	if !invoked {
		t.Error("OnConfirm should have been invoked")
	}
	if gate.State() != service.GateClosed {
		t.Error("the guarded action closed the gate; state should be closed")
	}
}

func TestConfirmPropagatesActionError(t *testing.T) {
	gate := service.NewConfirmationGate()
	boom := errors.New("boom")
	gate.Show(service.ConfirmConfig{
		Title:     "t",
		OnConfirm: func(ctx context.Context) error { return boom },
	})

	if err := gate.Confirm(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected the action error, got %v", err)
	}
}

func TestCancelDoesNotInvokeOnConfirm(t *testing.T) {
	gate := service.NewConfirmationGate()

	invoked := false
	gate.Show(service.ConfirmConfig{
		Title:     "t",
		OnConfirm: func(ctx context.Context) error { invoked = true; return nil },
	})

	gate.Cancel()
	if invoked {
		t.Error("Cancel must not invoke OnConfirm")
	}
	if gate.State() != service.GateClosed {
		t.Errorf("expected closed gate, got %s", gate.State())
	}
}

func TestHideIsIdempotent(t *testing.T) {
	gate := service.NewConfirmationGate()

	gate.Hide()
	if gate.State() != service.GateClosed {
		t.Fatalf("expected closed gate, got %s", gate.State())
	}
	gate.Hide()
	if gate.State() != service.GateClosed {
		t.Fatalf("expected closed gate after a second hide, got %s", gate.State())
	}
}

func TestConfirmWithoutActivePrompt(t *testing.T) {
	gate := service.NewConfirmationGate()

	if err := gate.Confirm(context.Background()); !errors.Is(err, service.ErrNoActiveConfirmation) {
		t.Fatalf("expected ErrNoActiveConfirmation, got %v", err)
	}
}
