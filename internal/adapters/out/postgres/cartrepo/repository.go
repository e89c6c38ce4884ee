package cartrepo

import (
	"context"
	"errors"

	"storefront/internal/adapters/out/postgres/pgerr"
	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// lockNamespace separates cart lock keys from any other advisory locks.
const lockNamespace = "cart:"

// GormCartRepository implements CartRepository using GORM.
type GormCartRepository struct {
	db *gorm.DB
}

// NewGormCartRepository creates a new GORM cart repository.
func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// Add saves a new cart item.
func (r *GormCartRepository) Add(ctx context.Context, item *cart.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate(err, "cart item")
	}
	return nil
}

// Get retrieves a cart item by ID.
func (r *GormCartRepository) Get(ctx context.Context, id kernel.UUID) (*cart.Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CartItemDTO
	if err := r.db.WithContext(ctx).Take(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("cartItem", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Update saves the quantity of an existing cart item.
func (r *GormCartRepository) Update(ctx context.Context, item *cart.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&CartItemDTO{}).
		Where("id = ?", item.ID().Bytes()).
		Update("quantity", item.Quantity())
	if result.Error != nil {
		return pgerr.Translate(result.Error, "cart item")
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("cartItem", item.ID().String())
	}
	return nil
}

// Remove deletes a cart item.
func (r *GormCartRepository) Remove(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Where("id = ?", id.Bytes()).Delete(&CartItemDTO{})
	if result.Error != nil {
		return pgerr.Translate(result.Error, "cart item")
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("cartItem", id.String())
	}
	return nil
}

// LockUserCart takes a transaction-scoped advisory lock keyed by the user.
// Outside a transaction the lock is released as soon as the statement ends.
func (r *GormCartRepository) LockUserCart(ctx context.Context, userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	err := r.db.WithContext(ctx).
		Exec("SELECT pg_advisory_xact_lock(hashtextextended(?, 0))", lockNamespace+userID.String()).
		Error
	return pgerr.Translate(err, "cart")
}

// ListByUserForUpdate retrieves the user's cart items, oldest first, and locks their rows.
func (r *GormCartRepository) ListByUserForUpdate(ctx context.Context, userID kernel.UUID) ([]*cart.Item, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dtos []CartItemDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", userID.Bytes()).
		Order("created_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, pgerr.Translate(err, "cart")
	}

	items := make([]*cart.Item, 0, len(dtos))
	for _, dto := range dtos {
		item, mapErr := toDomain(dto)
		if mapErr != nil {
			return nil, mapErr
		}
		items = append(items, item)
	}
	return items, nil
}

// RemoveItems deletes exactly the given items of the user and reports how many rows went away.
func (r *GormCartRepository) RemoveItems(ctx context.Context, userID kernel.UUID, ids []kernel.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	result := r.db.WithContext(ctx).
		Where("user_id = ? AND id IN ?", userID.Bytes(), idStrings(ids)).
		Delete(&CartItemDTO{})
	if result.Error != nil {
		return 0, pgerr.Translate(result.Error, "cart")
	}
	return result.RowsAffected, nil
}
