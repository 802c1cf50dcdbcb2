package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Apurer/go-gin-storefront/internal/domains/cart/ports"
)

var _ ports.KeyValueStore = (*KeyValueStore)(nil)

// KeyValueStore persists session-scoped blobs in PostgreSQL using GORM.
type KeyValueStore struct {
	db *gorm.DB
}

// NewKeyValueStore wires a PostgreSQL-backed store. Caller manages DB lifecycle.
func NewKeyValueStore(db *gorm.DB) *KeyValueStore {
	return &KeyValueStore{db: db}
}

// entryRecord stores the raw value as text so malformed payloads survive
// round trips and are rejected by the reader, not the database.
type entryRecord struct {
	Namespace string    `gorm:"primaryKey;column:namespace;size:128"`
	Key       string    `gorm:"primaryKey;column:key;size:128"`
	Value     string    `gorm:"column:value;type:text"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;index"`
}

func (entryRecord) TableName() string { return "session_kv" }

func (s *KeyValueStore) Get(ctx context.Context, namespace, key string) ([]byte, error) {
	if err := s.ensureDB(); err != nil {
		return nil, err
	}
	var record entryRecord
	err := s.db.WithContext(ctx).First(&record, "namespace = ? AND key = ?", namespace, key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrKeyNotFound
		}
		return nil, err
	}
	return []byte(record.Value), nil
}

// Set upserts the value for (namespace, key).
func (s *KeyValueStore) Set(ctx context.Context, namespace, key string, value []byte) error {
	if err := s.ensureDB(); err != nil {
		return err
	}
	if strings.TrimSpace(namespace) == "" || strings.TrimSpace(key) == "" {
		return errors.New("namespace and key are required")
	}
	record := entryRecord{Namespace: namespace, Key: key, Value: string(value)}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "namespace"}, {Name: "key"}},
			DoUpdates: clause.Assignments(map[string]any{
				"value":      record.Value,
				"updated_at": gorm.Expr("NOW()"),
			}),
		}).
		Create(&record).Error
}

// PurgeBefore deletes entries not written since cutoff.
func (s *KeyValueStore) PurgeBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	if err := s.ensureDB(); err != nil {
		return 0, err
	}
	result := s.db.WithContext(ctx).Where("updated_at < ?", cutoff).Delete(&entryRecord{})
	return result.RowsAffected, result.Error
}

func (s *KeyValueStore) ensureDB() error {
	if s == nil || s.db == nil {
		return errors.New("postgres key-value store not configured")
	}
	return nil
}
