package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"truefind/internal/domain/entity"
	domainerrors "truefind/internal/domain/errors"
	"truefind/internal/domain/repository"
	"truefind/internal/infra/persistence/model"
)

// collectionLinkColumns are the columns of the link uniqueness index.
var collectionLinkColumns = []clause.Column{
	{Name: "user_id"},
	{Name: "product_id"},
	{Name: "kind"},
}

// collectionRepository implements the repository.CollectionRepository interface.
type collectionRepository struct {
	db *gorm.DB
}

// NewCollectionRepository is the constructor for collectionRepository.
func NewCollectionRepository(db *gorm.DB) repository.CollectionRepository {
	return &collectionRepository{db: db}
}

// ListByUser retrieves all entries of one collection kind owned by the given
// user, each with its product preloaded. Only the owner's rows are returned.
func (repo *collectionRepository) ListByUser(ctx context.Context, userID uuid.UUID, kind entity.CollectionKind) ([]*entity.CollectionEntry, error) {
	var entryModels []*model.CollectionEntryModel

	if err := repo.db.WithContext(ctx).
		Preload("Product").
		Where("user_id = ? AND kind = ?", userID, kind.String()).
		Order("created_at ASC").
		Find(&entryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list collection entries")
	}

	entries := make([]*entity.CollectionEntry, 0, len(entryModels))
	for _, entryM := range entryModels {
		entries = append(entries, toCollectionEntryDomain(entryM))
	}

	return entries, nil
}

// GetOrCreateLink ensures a single link row exists for the (user, product, kind)
// triple, tolerating concurrent identical inserts via ON CONFLICT DO NOTHING.
func (repo *collectionRepository) GetOrCreateLink(ctx context.Context, userID, productID uuid.UUID, kind entity.CollectionKind) (*entity.CollectionEntry, error) {
	entryM := &model.CollectionEntryModel{
		UserID:    userID,
		ProductID: productID,
		Kind:      kind.String(),
	}

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   collectionLinkColumns,
			DoNothing: true,
		}).
		Create(entryM)

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return nil, domainerrors.NewDatabaseExecuteError(result.Error, "link references a missing user or product")
		}

		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to create collection entry")
	}

	if result.RowsAffected == 0 {
		// The triple is already linked; fetch the existing row.
		return repo.findLink(ctx, userID, productID, kind)
	}

	return toCollectionEntryDomain(entryM), nil
}

// findLink retrieves an existing link row for the triple.
func (repo *collectionRepository) findLink(ctx context.Context, userID, productID uuid.UUID, kind entity.CollectionKind) (*entity.CollectionEntry, error) {
	var entryM model.CollectionEntryModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ? AND kind = ?", userID, productID, kind.String()).
		First(&entryM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find collection entry")
	}

	return toCollectionEntryDomain(&entryM), nil
}

// --- Mapper Functions ---

// toCollectionEntryDomain converts a GORM CollectionEntryModel to a domain CollectionEntry.
func toCollectionEntryDomain(data *model.CollectionEntryModel) *entity.CollectionEntry {
	if data == nil {
		return nil
	}

	return &entity.CollectionEntry{
		ID:        data.ID,
		UserID:    data.UserID,
		ProductID: data.ProductID,
		Kind:      entity.CollectionKind(data.Kind),
		Product:   toProductDomain(data.Product),
		CreatedAt: data.CreatedAt,
	}
}
