package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel mirrors the 'products' table. The composite unique index over
// all descriptive fields makes the exact-match get-or-create policy a real
// store-level constraint, so concurrent identical inserts resolve via
// ON CONFLICT instead of producing duplicates.
type ProductModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name               string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_products_fields"`
	Platform           string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_products_fields"`
	Price              string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_products_fields"`
	VerificationStatus string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_products_fields"`
	ImageURL           string    `gorm:"type:text;not null;uniqueIndex:idx_products_fields"`
	CreatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// CollectionEntryModel mirrors the 'collection_entries' table. One row links a
// user to a product for one collection kind; the unique index enforces at most
// one link per (user, product, kind).
type CollectionEntryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_collection_entries_link"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_collection_entries_link"`
	Kind      string    `gorm:"type:varchar(16);not null;uniqueIndex:idx_collection_entries_link"`
	CreatedAt time.Time

	Product *ProductModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (CollectionEntryModel) TableName() string {
	return "collection_entries"
}
