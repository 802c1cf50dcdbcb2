package migrations

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Run applies the storefront schema. Adapters never migrate on their own.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(
		&productRecord{},
		&sessionValueRecord{},
		&shopperSessionRecord{},
	)
}

// Product schema mirrors the catalog Postgres adapter.
type productRecord struct {
	ID               string         `gorm:"primaryKey;column:id;size:64"`
	Position         int            `gorm:"column:position;index"`
	Name             string         `gorm:"column:name"`
	Category         string         `gorm:"column:category;type:varchar(32);index"`
	Description      string         `gorm:"column:description"`
	Price            float64        `gorm:"column:price;type:numeric(10,2)"`
	Colors           pq.StringArray `gorm:"column:colors;type:text[]"`
	Sizes            pq.StringArray `gorm:"column:sizes;type:text[]"`
	Image            string         `gorm:"column:image"`
	AdditionalImages pq.StringArray `gorm:"column:additional_images;type:text[]"`
	Weight           string         `gorm:"column:weight"`
	Dimensions       string         `gorm:"column:dimensions"`
	CreatedAt        time.Time      `gorm:"column:created_at"`
	UpdatedAt        time.Time      `gorm:"column:updated_at"`
}

func (productRecord) TableName() string { return "products" }

// Session value schema mirrors the cart key-value store.
type sessionValueRecord struct {
	Namespace string    `gorm:"primaryKey;column:namespace;size:128"`
	Key       string    `gorm:"primaryKey;column:key;size:128"`
	Value     string    `gorm:"column:value;type:text"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;index"`
}

func (sessionValueRecord) TableName() string { return "session_kv" }

// Shopper session schema mirrors the accounts session store.
type shopperSessionRecord struct {
	SessionID string    `gorm:"primaryKey;column:session_id;size:64"`
	Subject   string    `gorm:"column:subject;index"`
	ExpiresAt time.Time `gorm:"column:expires_at;index"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (shopperSessionRecord) TableName() string { return "shopper_sessions" }
