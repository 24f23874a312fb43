package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"medibook-portal/internal/converter"
	"medibook-portal/internal/domain/entity"
	"medibook-portal/internal/domain/gateway"
	"medibook-portal/internal/service"
	"medibook-portal/internal/store"
	"medibook-portal/pkg/apierror"
	"medibook-portal/pkg/token"

	"github.com/sirupsen/logrus"
)

var ErrSessionExpired = errors.New("session token has expired")

type AuthUsecase interface {
	Login(ctx context.Context, identifier, password string) (entity.Session, error)
	Register(ctx context.Context, username, email, password string) (entity.Session, error)
	CurrentUser(ctx context.Context) (*converter.UserRecord, error)
	Restore(ctx context.Context, session entity.Session) error
	Logout(ctx context.Context)
}

type authUsecase struct {
	gw      gateway.Gateway
	log     *logrus.Logger
	session *store.SessionStore
	keeper  *service.SessionKeeper // nil when persistence is disabled
}

func NewAuthUsecase(gw gateway.Gateway, log *logrus.Logger, session *store.SessionStore, keeper *service.SessionKeeper) AuthUsecase {
	return &authUsecase{
		gw:      gw,
		log:     log,
		session: session,
		keeper:  keeper,
	}
}

// authPayload is the backend's auth response: the user record plus a JWT,
// without the usual data envelope.
type authPayload struct {
	User json.RawMessage `json:"user"`
	JWT  string          `json:"jwt"`
}

// Login authenticates with a username-or-email identifier and populates the
// session store on success.
func (u *authUsecase) Login(ctx context.Context, identifier, password string) (entity.Session, error) {
	body := map[string]string{"identifier": identifier, "password": password}
	result, err := u.gw.Call(ctx, http.MethodPost, "/auth/local", body, nil)
	if err != nil {
		u.log.Warnf("Login failed for %s: %v", identifier, err)
		return entity.Session{}, err
	}

	return u.adoptAuthResponse(ctx, result)
}

// Register creates a new account and logs it in.
func (u *authUsecase) Register(ctx context.Context, username, email, password string) (entity.Session, error) {
	body := map[string]string{"username": username, "email": email, "password": password}
	result, err := u.gw.Call(ctx, http.MethodPost, "/auth/local/register", body, nil)
	if err != nil {
		u.log.Warnf("Registration failed for %s: %v", email, err)
		return entity.Session{}, err
	}

	return u.adoptAuthResponse(ctx, result)
}

func (u *authUsecase) adoptAuthResponse(ctx context.Context, result *gateway.Result) (entity.Session, error) {
	var payload authPayload
	if err := json.Unmarshal(result.Data, &payload); err != nil {
		return entity.Session{}, apierror.New(apierror.KindUnknown, "Unexpected response from the authentication service.")
	}

	user, err := converter.UserFromJSON(payload.User)
	if err != nil {
		return entity.Session{}, apierror.New(apierror.KindUnknown, "Unexpected response from the authentication service.")
	}

	session := converter.SessionFromUser(user, payload.JWT)
	u.session.Login(session)
	u.persist(ctx, session)

	u.log.Infof("Session established for %s (role=%s)", session.Email, session.Role)
	return session, nil
}

// CurrentUser verifies the session against the backend. An HTTP 401 means
// the token is no longer valid: the local session is cleared before the
// error is returned.
func (u *authUsecase) CurrentUser(ctx context.Context) (*converter.UserRecord, error) {
	bearer := u.session.Token()
	if bearer == "" {
		return nil, ErrNotAuthenticated
	}

	result, err := u.gw.CallWithToken(ctx, bearer, http.MethodGet, "/users/me", nil, nil)
	if err != nil {
		if apierror.IsAuth(err) {
			u.log.Info("Session token rejected by backend, clearing local session")
			u.invalidate(ctx)
		}
		return nil, err
	}

	user, err := converter.UserFromJSON(result.Data)
	if err != nil {
		return nil, err
	}

	role := entity.RoleUser
	if user.IsAdmin {
		role = entity.RoleAdmin
	}
	u.session.UpdateIdentity(user.Email, user.Username, role)
	return user, nil
}

// Restore re-adopts a persisted session. Tokens that are already expired are
// rejected locally; otherwise the backend has the final say via CurrentUser.
func (u *authUsecase) Restore(ctx context.Context, session entity.Session) error {
	if session.Token == "" || token.IsExpired(session.Token) {
		u.invalidate(ctx)
		return ErrSessionExpired
	}

	u.session.Login(session)
	if _, err := u.CurrentUser(ctx); err != nil {
		return err
	}

	u.log.Infof("Session restored for %s", session.Email)
	return nil
}

// Logout clears the session locally; the backend holds no server-side session.
func (u *authUsecase) Logout(ctx context.Context) {
	u.invalidate(ctx)
	u.log.Info("Session cleared")
}

func (u *authUsecase) invalidate(ctx context.Context) {
	u.session.Logout()
	if u.keeper != nil {
		if err := u.keeper.Clear(ctx); err != nil {
			u.log.Warnf("Failed to clear persisted session (non-fatal): %v", err)
		}
	}
}

func (u *authUsecase) persist(ctx context.Context, session entity.Session) {
	if u.keeper == nil {
		return
	}
	if err := u.keeper.Save(ctx, session); err != nil {
		u.log.Warnf("Failed to persist session (non-fatal): %v", err)
	}
}
