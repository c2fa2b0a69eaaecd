package postgres

import (
	"context"

	"registry/internal/domain/entity"
	"registry/internal/domain/repository"
	"registry/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the domain.ProductRepository interface using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// ListByProfile returns the products of a vendor in insertion order.
func (repo *productRepository) ListByProfile(ctx context.Context, profileID uuid.UUID) ([]*entity.Product, error) {
	var productMs []*model.ProductModel
	if err := repo.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		Order("seq ASC").
		Find(&productMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productMs))
	for _, productM := range productMs {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// Create persists a new product.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := &model.ProductModel{
		ProfileID:   product.ProfileID,
		ProductID:   product.ProductID,
		Price:       int64(product.Price),
		Description: product.Description,
		CreatedAt:   product.CreatedAt,
	}
	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateProduct
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProfileNotFound
		}

		return errors.Wrap(err, "failed to create product")
	}

	return nil
}

// Delete removes a product from a vendor.
func (repo *productRepository) Delete(ctx context.Context, profileID uuid.UUID, productID string) error {
	result := repo.db.WithContext(ctx).
		Where("profile_id = ? AND product_id = ?", profileID, productID).
		Delete(&model.ProductModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toProductDomain(data *model.ProductModel) *entity.Product {
	return &entity.Product{
		ProfileID:   data.ProfileID,
		ProductID:   data.ProductID,
		Price:       uint64(data.Price),
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
	}
}
