package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/mrachkov/shop_cart/internal/models"
)

var ErrCartItemExists = errors.New("cart item already exists")

func (r *GormRepo) GetCartProducts(ctx context.Context, memberID uint) ([]models.Product, error) {
	var products []models.Product
	err := r.DB.WithContext(ctx).
		Model(&models.Product{}).
		Joins("JOIN cart_items ON cart_items.product_id = products.id").
		Where("cart_items.member_id = ?", memberID).
		Order("cart_items.id ASC").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// AddToCart inserts the (member, product) pair. The composite unique index
// backs the duplicate check, so two concurrent adds cannot both succeed.
func (r *GormRepo) AddToCart(ctx context.Context, item *models.CartItem) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.CartItem
		err := tx.Where("member_id = ? AND product_id = ?", item.MemberID, item.ProductID).First(&existing).Error
		if err == nil {
			return ErrCartItemExists
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := tx.Create(item).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrCartItemExists
			}
			return err
		}
		return nil
	})
}

// DeleteFromCart removes the pair if present. Zero rows affected is fine,
// removal is idempotent on this path.
func (r *GormRepo) DeleteFromCart(ctx context.Context, memberID, productID uint) error {
	return r.DB.WithContext(ctx).
		Where("member_id = ? AND product_id = ?", memberID, productID).
		Delete(&models.CartItem{}).Error
}
