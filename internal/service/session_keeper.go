package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"medibook-portal/internal/domain/entity"
	"medibook-portal/pkg/token"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	sessionKey        = "medibook:session"
	defaultSessionTTL = 24 * time.Hour
)

// SessionKeeper persists the portal session in Redis so a restart does not
// log the user out. The stores never touch it; it is the caller-side
// persistence collaborator for the session data.
type SessionKeeper struct {
	client *redis.Client
	log    *logrus.Logger
}

func NewSessionKeeper(client *redis.Client, log *logrus.Logger) *SessionKeeper {
	return &SessionKeeper{
		client: client,
		log:    log,
	}
}

// Save stores the session until its token expires (24h when the token has no
// expiry claim).
func (k *SessionKeeper) Save(ctx context.Context, session entity.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return err
	}

	ttl := defaultSessionTTL
	if exp, ok := token.ExpiresAt(session.Token); ok {
		if remaining := time.Until(exp); remaining > 0 {
			ttl = remaining
		}
	}

	return k.client.Set(ctx, sessionKey, payload, ttl).Err()
}

// Load returns the persisted session, or nil when none is stored.
func (k *SessionKeeper) Load(ctx context.Context) (*entity.Session, error) {
	raw, err := k.client.Get(ctx, sessionKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var session entity.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		k.log.Warnf("Dropping unreadable persisted session: %v", err)
		return nil, nil
	}
	return &session, nil
}

// Clear removes the persisted session.
func (k *SessionKeeper) Clear(ctx context.Context) error {
	return k.client.Del(ctx, sessionKey).Err()
}
