package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/mrachkov/shop_cart/internal/models"
	"github.com/mrachkov/shop_cart/internal/transport"
)

func (r *GormRepo) GetProducts(ctx context.Context) ([]models.Product, error) {
	var items []models.Product
	if err := r.DB.WithContext(ctx).Model(&models.Product{}).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) CreateProduct(ctx context.Context, prod *models.Product) (*models.Product, error) {
	if err := r.DB.WithContext(ctx).Create(prod).Error; err != nil {
		return nil, err
	}
	return prod, nil
}

// UpdateProduct merges the patch onto the stored row inside one transaction,
// then double-checks the write really touched a row. The row can disappear
// between First and Save when a concurrent delete wins.
func (r *GormRepo) UpdateProduct(ctx context.Context, req transport.UpdateProductRequest, id uint) (*models.Product, error) {
	var prod models.Product
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&prod, id).Error; err != nil {
			return err
		}

		if req.Name != nil {
			prod.Name = *req.Name
		}
		if req.Price != nil {
			prod.Price = *req.Price
		}
		if req.Image != nil {
			prod.Image = *req.Image
		}

		res := tx.Model(&models.Product{}).Where("id = ?", id).Updates(map[string]any{
			"name":  prod.Name,
			"price": prod.Price,
			"image": prod.Image,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &prod, nil
}

func (r *GormRepo) DeleteProduct(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&models.Product{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
