package repo

import (
	"context"

	"github.com/mrachkov/shop_cart/internal/models"
)

func (r *GormRepo) GetMembers(ctx context.Context) ([]models.Member, error) {
	var members []models.Member
	if err := r.DB.WithContext(ctx).Model(&models.Member{}).Order("id ASC").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// FindMemberByCredentials matches the (email, password) pair exactly.
func (r *GormRepo) FindMemberByCredentials(ctx context.Context, email, password string) (*models.Member, error) {
	var member models.Member
	if err := r.DB.WithContext(ctx).Where("email = ? AND password = ?", email, password).First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}
