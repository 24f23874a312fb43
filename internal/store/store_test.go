package store_test

import (
	"testing"

	"medibook-portal/internal/domain/entity"
	"medibook-portal/internal/store"
)

func TestSessionStoreLoginDefaults(t *testing.T) {
	s := store.NewSessionStore()

	s.Login(entity.Session{Email: "a@x.com"})

	current := s.Current()
	if !current.LoggedIn {
		t.Error("login should set the logged-in flag")
	}
	if current.Role != entity.RoleUser {
		t.Errorf("role should default to user, got %s", current.Role)
	}
	if s.IsAdmin() {
		t.Error("a default session is not an admin")
	}
}

func TestSessionStoreLogoutClearsEverything(t *testing.T) {
	s := store.NewSessionStore()
	s.Login(entity.Session{Email: "a@x.com", Role: entity.RoleAdmin, Token: "tok"})

	s.Logout()

	if s.IsAuthenticated() {
		t.Error("logout should clear the logged-in flag")
	}
	if got := s.Current(); got.Email != "" || got.Token != "" {
		t.Errorf("logout should clear identity, got %+v", got)
	}
}

func TestSessionStoreUpdateIdentityPatches(t *testing.T) {
	s := store.NewSessionStore()
	s.Login(entity.Session{Email: "a@x.com", Username: "alice"})

	s.UpdateIdentity("b@x.com", "", entity.RoleAdmin)

	current := s.Current()
	if current.Email != "b@x.com" {
		t.Errorf("email should be patched, got %q", current.Email)
	}
	if current.Username != "alice" {
		t.Errorf("empty username must leave the old value, got %q", current.Username)
	}
	if !s.IsAdmin() {
		t.Error("role should be patched to admin")
	}
}

func TestCatalogStoreSelection(t *testing.T) {
	s := store.NewCatalogStore()
	s.SetAll([]entity.Doctor{
		{DocumentID: "doc1", Name: "Grace Miller"},
		{DocumentID: "doc2", Name: "James Wong"},
	})

	if !s.SelectByID("doc2") {
		t.Fatal("expected selection to succeed")
	}
	selected, ok := s.Selected()
	if !ok || selected.Name != "James Wong" {
		t.Fatalf("unexpected selection: %+v", selected)
	}

	if s.SelectByID("missing") {
		t.Error("selecting an unknown id should fail")
	}
	if selected, _ := s.Selected(); selected.DocumentID != "doc2" {
		t.Error("a failed selection must keep the previous one")
	}
}

func TestCatalogStoreSetAllDropsStaleSelection(t *testing.T) {
	s := store.NewCatalogStore()
	s.SetAll([]entity.Doctor{{DocumentID: "doc1"}})
	s.SelectByID("doc1")

	s.SetAll([]entity.Doctor{{DocumentID: "doc9"}})

	if _, ok := s.Selected(); ok {
		t.Error("selection should be dropped when the doctor is gone")
	}
}

func TestCatalogStoreAllReturnsCopy(t *testing.T) {
	s := store.NewCatalogStore()
	s.SetAll([]entity.Doctor{{DocumentID: "doc1", Name: "Grace Miller"}})

	doctors := s.All()
	doctors[0].Name = "mutated"

	if got := s.All()[0].Name; got != "Grace Miller" {
		t.Errorf("readers must not be able to mutate the store, got %q", got)
	}
}
