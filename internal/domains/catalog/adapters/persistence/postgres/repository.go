package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Apurer/go-gin-storefront/internal/domains/catalog/domain"
	"github.com/Apurer/go-gin-storefront/internal/domains/catalog/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository serves the product catalog from PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed catalog. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// productRecord maps a catalog product to a relational row. Position keeps
// the display order stable across queries.
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

// List returns every product ordered by display position.
func (r *Repository) List(ctx context.Context) ([]domain.Product, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []productRecord
	if err := r.db.WithContext(ctx).Order("position ASC, id ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	products := make([]domain.Product, 0, len(records))
	for i := range records {
		products = append(products, records[i].toDomain())
	}
	return products, nil
}

// GetByID fetches a product by identifier.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record productRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	product := record.toDomain()
	return &product, nil
}

// Seed upserts the products, assigning positions in slice order.
func (r *Repository) Seed(ctx context.Context, products []domain.Product) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	if len(products) == 0 {
		return nil
	}
	records := make([]productRecord, 0, len(products))
	for i, p := range products {
		if err := p.Validate(); err != nil {
			return err
		}
		records = append(records, toRecord(p, i))
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"position", "name", "category", "description", "price", "colors",
				"sizes", "image", "additional_images", "weight", "dimensions", "updated_at",
			}),
		}).
		Create(&records).Error
}

// SeedIfEmpty seeds the table only when it holds no products.
func (r *Repository) SeedIfEmpty(ctx context.Context, products []domain.Product) (bool, error) {
	if err := r.ensureDB(); err != nil {
		return false, err
	}
	var count int64
	if err := r.db.WithContext(ctx).Model(&productRecord{}).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}
	return true, r.Seed(ctx, products)
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres catalog repository not configured")
	}
	return nil
}

func toRecord(p domain.Product, position int) productRecord {
	return productRecord{
		ID:               p.ID,
		Position:         position,
		Name:             p.Name,
		Category:         string(p.Category),
		Description:      p.Description,
		Price:            p.Price,
		Colors:           pq.StringArray(p.Colors),
		Sizes:            pq.StringArray(p.SizeCodes()),
		Image:            p.Image,
		AdditionalImages: pq.StringArray(p.AdditionalImages),
		Weight:           p.Weight,
		Dimensions:       p.Dimensions,
	}
}

func (r productRecord) toDomain() domain.Product {
	sizes := make([]domain.Size, 0, len(r.Sizes))
	for _, s := range r.Sizes {
		sizes = append(sizes, domain.Size(s))
	}
	return domain.Product{
		ID:               r.ID,
		Name:             r.Name,
		Category:         domain.Category(r.Category),
		Description:      r.Description,
		Price:            r.Price,
		Colors:           append([]string(nil), r.Colors...),
		Sizes:            sizes,
		Image:            r.Image,
		AdditionalImages: append([]string(nil), r.AdditionalImages...),
		Weight:           r.Weight,
		Dimensions:       r.Dimensions,
	}
}
