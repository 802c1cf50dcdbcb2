package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Apurer/go-gin-storefront/internal/domains/accounts/ports"
)

// SessionStore persists shopper logins in PostgreSQL.
type SessionStore struct {
	db  *gorm.DB
	ttl time.Duration
	now func() time.Time
}

// DefaultSessionTTL provides the fallback TTL when none is configured.
const DefaultSessionTTL = 24 * time.Hour

// NewSessionStore wires a PostgreSQL-backed session store. Caller owns DB lifecycle.
func NewSessionStore(db *gorm.DB, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionStore{db: db, ttl: ttl, now: time.Now}
}

// WithClock overrides the time source used for expiry.
func (s *SessionStore) WithClock(now func() time.Time) *SessionStore {
	if now != nil {
		s.now = now
	}
	return s
}

type sessionRecord struct {
	SessionID string    `gorm:"primaryKey;column:session_id;size:64"`
	Subject   string    `gorm:"column:subject;index"`
	ExpiresAt time.Time `gorm:"column:expires_at;index"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (sessionRecord) TableName() string { return "shopper_sessions" }

// Save upserts the login for sessionID and restarts its TTL.
func (s *SessionStore) Save(ctx context.Context, sessionID, subject string) error {
	if err := s.ensureDB(); err != nil {
		return err
	}
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return errors.New("session id is required")
	}
	rec := sessionRecord{SessionID: sessionID, Subject: subject, ExpiresAt: s.now().Add(s.ttl)}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "session_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"subject", "expires_at", "updated_at"}),
		}).
		Create(&rec).Error
}

func (s *SessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.ensureDB(); err != nil {
		return err
	}
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil
	}
	return s.db.WithContext(ctx).Delete(&sessionRecord{}, "session_id = ?", sessionID).Error
}

// Lookup returns the subject of a live session. Expired rows count as missing.
func (s *SessionStore) Lookup(ctx context.Context, sessionID string) (string, error) {
	if err := s.ensureDB(); err != nil {
		return "", err
	}
	var rec sessionRecord
	err := s.db.WithContext(ctx).
		First(&rec, "session_id = ? AND expires_at > ?", strings.TrimSpace(sessionID), s.now()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ports.ErrSessionNotFound
		}
		return "", err
	}
	return rec.Subject, nil
}

// PurgeExpired removes expired sessions and reports how many were deleted.
func (s *SessionStore) PurgeExpired(ctx context.Context) (int64, error) {
	if err := s.ensureDB(); err != nil {
		return 0, err
	}
	result := s.db.WithContext(ctx).Where("expires_at <= ?", s.now()).Delete(&sessionRecord{})
	return result.RowsAffected, result.Error
}

func (s *SessionStore) ensureDB() error {
	if s == nil || s.db == nil {
		return errors.New("postgres session store not configured")
	}
	return nil
}

var _ ports.SessionStore = (*SessionStore)(nil)
