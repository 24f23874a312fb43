package usecase_test

import (
	"context"
	"encoding/json"
	"testing"

	"medibook-portal/internal/domain/entity"
	"medibook-portal/internal/domain/gateway"
	"medibook-portal/internal/store"
	"medibook-portal/internal/usecase"
	"medibook-portal/pkg/apierror"
)

func newTestAuth(fake *fakeGateway) (usecase.AuthUsecase, *store.SessionStore) {
	session := store.NewSessionStore()
	auth := usecase.NewAuthUsecase(fake, testLogger(), session, nil)
	return auth, session
}

func TestLoginPopulatesSessionStore(t *testing.T) {
	fake := &fakeGateway{}
	fake.handler = func(call recordedCall) (*gateway.Result, error) {
		if call.Method != "POST" || call.Path != "/auth/local" {
			t.Errorf("unexpected call %s %s", call.Method, call.Path)
		}
		return &gateway.Result{Data: json.RawMessage(`{"user":{"id":4,"username":"alice","email":"a@x.com","isAdmin":true},"jwt":"tok-123"}`)}, nil
	}
	auth, sessionStore := newTestAuth(fake)

	session, err := auth.Login(context.Background(), "a@x.com", "secret123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if session.Role != entity.RoleAdmin || session.Email != "a@x.com" {
		t.Errorf("unexpected session: %+v", session)
	}
	if !sessionStore.IsAuthenticated() {
		t.Error("login should populate the session store")
	}
	if sessionStore.Token() != "tok-123" {
		t.Errorf("token not adopted, got %q", sessionStore.Token())
	}
}

func TestLoginFailureLeavesStoreLoggedOut(t *testing.T) {
	fake := &fakeGateway{}
	fake.handler = func(recordedCall) (*gateway.Result, error) {
		return nil, apierror.FromStatus(400, []byte(`{"error":{"message":"Invalid identifier or password"}}`))
	}
	auth, sessionStore := newTestAuth(fake)

	_, err := auth.Login(context.Background(), "a@x.com", "wrong")
	if err == nil {
		t.Fatal("expected an error")
	}
	if err.Error() != "Invalid identifier or password" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if sessionStore.IsAuthenticated() {
		t.Error("a failed login must not populate the session store")
	}
}

func TestCurrentUserInvalidatesSessionOn401(t *testing.T) {
	fake := &fakeGateway{}
	fake.handler = func(call recordedCall) (*gateway.Result, error) {
		if call.Token != "stale-token" {
			t.Errorf("expected the session bearer, got %q", call.Token)
		}
		return nil, apierror.FromStatus(401, nil)
	}
	auth, sessionStore := newTestAuth(fake)
	sessionStore.Login(entity.Session{Email: "a@x.com", Token: "stale-token"})

	_, err := auth.CurrentUser(context.Background())
	if err == nil {
		t.Fatal("expected an error")
	}
	if sessionStore.IsAuthenticated() {
		t.Error("an HTTP 401 must clear the local session")
	}
}

func TestCurrentUserKeepsSessionOnOtherFailures(t *testing.T) {
	fake := &fakeGateway{}
	fake.handler = func(recordedCall) (*gateway.Result, error) {
		return nil, apierror.FromStatus(500, nil)
	}
	auth, sessionStore := newTestAuth(fake)
	sessionStore.Login(entity.Session{Email: "a@x.com", Token: "tok"})

	if _, err := auth.CurrentUser(context.Background()); err == nil {
		t.Fatal("expected an error")
	}
	if !sessionStore.IsAuthenticated() {
		t.Error("a server error must not clear the session")
	}
}

func TestRestoreRejectsExpiredToken(t *testing.T) {
	fake := &fakeGateway{}
	auth, sessionStore := newTestAuth(fake)

	err := auth.Restore(context.Background(), entity.Session{Email: "a@x.com", Token: "not-a-jwt"})
	if err == nil {
		t.Fatal("expected an error")
	}
	if sessionStore.IsAuthenticated() {
		t.Error("an unusable token must not leave a session behind")
	}
	if fake.callCount() != 0 {
		t.Error("no backend call expected for a locally rejected token")
	}
}
