package postgres

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"truefind/internal/domain/entity"
	domainerrors "truefind/internal/domain/errors"
	"truefind/internal/domain/repository"
	"truefind/internal/infra/persistence/model"
)

// productFieldColumns are the columns of the products dedup index, in index order.
var productFieldColumns = []clause.Column{
	{Name: "name"},
	{Name: "platform"},
	{Name: "price"},
	{Name: "verification_status"},
	{Name: "image_url"},
}

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// GetOrCreate inserts the product with ON CONFLICT DO NOTHING on the dedup
// index and falls back to fetching the existing row when the insert hit a
// conflict. Check-then-insert would race under concurrent identical requests.
func (repo *productRepository) GetOrCreate(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	productM := fromProductDomain(product)

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   productFieldColumns,
			DoNothing: true,
		}).
		Create(productM)

	if result.Error != nil {
		if isNotNullConstraintViolation(result.Error) {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("missing required product fields")
		}

		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to create product")
	}

	if result.RowsAffected == 0 {
		// Conflict with an identical row; fetch it.
		return repo.findByFields(ctx, product)
	}

	return toProductDomain(productM), nil
}

// ListNames returns the names of all stored products in insertion order.
func (repo *productRepository) ListNames(ctx context.Context) ([]string, error) {
	var names []string

	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Order("created_at ASC").
		Pluck("name", &names).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list product names")
	}

	return names, nil
}

// findByFields retrieves the product matching every descriptive field.
func (repo *productRepository) findByFields(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("name = ? AND platform = ? AND price = ? AND verification_status = ? AND image_url = ?",
			product.Name, product.Platform, product.Price, product.VerificationStatus, product.ImageURL).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by fields")
	}

	return toProductDomain(&productM), nil
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:                 data.ID,
		Name:               data.Name,
		Platform:           data.Platform,
		Price:              data.Price,
		VerificationStatus: data.VerificationStatus,
		ImageURL:           data.ImageURL,
		CreatedAt:          data.CreatedAt,
	}
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:                 data.ID,
		Name:               data.Name,
		Platform:           data.Platform,
		Price:              data.Price,
		VerificationStatus: data.VerificationStatus,
		ImageURL:           data.ImageURL,
	}
}
