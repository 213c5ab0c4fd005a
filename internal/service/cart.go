package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mrachkov/shop_cart/internal/models"
	"github.com/mrachkov/shop_cart/internal/repo"
)

type CartService struct {
	Repo *repo.GormRepo
}

// ResolveMember does not tell a wrong password apart from an unknown email.
func (s *CartService) ResolveMember(ctx context.Context, email, password string) (*models.Member, error) {
	member, err := s.Repo.FindMemberByCredentials(ctx, email, password)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("invalid credentials: %w", ErrMemberLookup)
	}
	return member, err
}

func (s *CartService) GetMembers(ctx context.Context) ([]models.Member, error) {
	return s.Repo.GetMembers(ctx)
}

func (s *CartService) GetCartProducts(ctx context.Context, memberID uint) ([]models.Product, error) {
	return s.Repo.GetCartProducts(ctx, memberID)
}

func (s *CartService) AddToCart(ctx context.Context, memberID, productID uint) error {
	item := models.CartItem{
		MemberID:  memberID,
		ProductID: productID,
	}
	err := s.Repo.AddToCart(ctx, &item)
	if errors.Is(err, repo.ErrCartItemExists) {
		return fmt.Errorf("the product is already in the cart: %w", ErrDuplicate)
	}
	return err
}

func (s *CartService) DeleteFromCart(ctx context.Context, memberID, productID uint) error {
	return s.Repo.DeleteFromCart(ctx, memberID, productID)
}
