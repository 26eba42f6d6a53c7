package draft

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// slotKeyPrefix is the fixed name of the draft slot. The slot is scoped to a
// browser session, not to an authenticated identity: it has to hold the form
// before an identity exists.
const slotKeyPrefix = "reservation:draft:"

// Store is a single best-effort slot holding one in-progress reservation per
// session. Stash overwrites; Pop is single-use.
type Store interface {
	// Stash saves the draft, replacing any prior one for the session.
	Stash(ctx context.Context, sessionID string, d *ReservationDraft) error
	// Pop reads and atomically clears the slot. A second Pop for the same
	// session returns nil. A corrupt stored value is cleared and reported as
	// nil rather than as an error, so a bad draft can never block the
	// authentication flow. Concurrent Pops race benignly: one wins, the rest
	// observe nil.
	Pop(ctx context.Context, sessionID string) (*ReservationDraft, error)
}

// envelope is the persisted slot layout. The serviceId/serviceType duplication
// next to formData matches what the booking form hands off, keeping the slot
// readable without decoding the whole form.
type envelope struct {
	FormData    ReservationDraft `json:"formData"`
	ServiceID   string           `json:"serviceId"`
	ServiceType string           `json:"serviceType"`
}

type redisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a Store backed by a redis key per session.
func NewRedisStore(client *redis.Client, ttl time.Duration) Store {
	return &redisStore{client: client, ttl: ttl}
}

func slotKey(sessionID string) string {
	return slotKeyPrefix + sessionID
}

func (s *redisStore) Stash(ctx context.Context, sessionID string, d *ReservationDraft) error {
	env := envelope{
		FormData:    *d,
		ServiceID:   d.ServiceID,
		ServiceType: string(d.Category),
	}

	payload, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal reservation draft failed: %w", err)
	}

	if err := s.client.Set(ctx, slotKey(sessionID), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("stash reservation draft failed: %w", err)
	}
	return nil
}

func (s *redisStore) Pop(ctx context.Context, sessionID string) (*ReservationDraft, error) {
	// GETDEL reads and clears in one step, which is what makes Pop single-use
	// even across concurrent tabs.
	payload, err := s.client.GetDel(ctx, slotKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("pop reservation draft failed: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		// The slot is already cleared by GETDEL; a corrupt draft self-heals
		// into an empty slot instead of surfacing a parse error.
		log.Warn().Err(err).Str("session_id", sessionID).Msg("discarding corrupt reservation draft")
		return nil, nil
	}

	d := env.FormData
	return &d, nil
}
