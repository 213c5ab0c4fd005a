package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mrachkov/shop_cart/internal/models"
	"github.com/mrachkov/shop_cart/internal/repo"
	"github.com/mrachkov/shop_cart/internal/transport"
)

type ProductService struct {
	Repo *repo.GormRepo
}

func (s *ProductService) GetProducts(ctx context.Context) ([]models.Product, error) {
	return s.Repo.GetProducts(ctx)
}

func (s *ProductService) CreateProduct(ctx context.Context, name string, price int, image string) (*models.Product, error) {
	prod := models.Product{
		Name:  name,
		Price: price,
		Image: image,
	}
	return s.Repo.CreateProduct(ctx, &prod)
}

func (s *ProductService) UpdateProduct(ctx context.Context, req transport.UpdateProductRequest, id uint) (*models.Product, error) {
	prod, err := s.Repo.UpdateProduct(ctx, req, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("the target product does not exist: %w", ErrNotFound)
	}
	return prod, err
}

func (s *ProductService) DeleteProduct(ctx context.Context, id uint) error {
	err := s.Repo.DeleteProduct(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("the target product does not exist: %w", ErrNoRows)
	}
	return err
}
