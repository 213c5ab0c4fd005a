package service

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mrachkov/shop_cart/internal/models"
	"github.com/mrachkov/shop_cart/internal/repo"
	"github.com/mrachkov/shop_cart/internal/transport"
)

func initTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.AutoMigrate(&models.Product{}, &models.Member{}, &models.CartItem{}); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	return db
}

func newServices(t *testing.T) (*ProductService, *CartService, *gorm.DB) {
	db := initTestDB(t)
	r := &repo.GormRepo{DB: db}
	return &ProductService{Repo: r}, &CartService{Repo: r}, db
}

func TestProductService_CreateThenList(t *testing.T) {
	products, _, _ := newServices(t)
	ctx := context.Background()

	created, err := products.CreateProduct(ctx, "치킨", 10000, "치킨 사진")
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	items, err := products.GetProducts(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "치킨", items[0].Name)
	assert.Equal(t, 10000, items[0].Price)
	assert.Equal(t, "치킨 사진", items[0].Image)
}

func TestProductService_PartialUpdateKeepsUnsetFields(t *testing.T) {
	products, _, _ := newServices(t)
	ctx := context.Background()

	created, err := products.CreateProduct(ctx, "치킨", 10000, "치킨 사진")
	require.NoError(t, err)

	price := 1000
	updated, err := products.UpdateProduct(ctx, transport.UpdateProductRequest{Price: &price}, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "치킨", updated.Name)
	assert.Equal(t, 1000, updated.Price)
	assert.Equal(t, "치킨 사진", updated.Image)
}

func TestProductService_UpdateMissingIDFails(t *testing.T) {
	products, _, _ := newServices(t)

	name := "피자"
	_, err := products.UpdateProduct(context.Background(), transport.UpdateProductRequest{Name: &name}, 99)
	require.ErrorIs(t, err, ErrNotFound)
	require.True(t, IsBusinessError(err))
}

func TestProductService_DeleteMissingIDFails(t *testing.T) {
	products, _, _ := newServices(t)

	err := products.DeleteProduct(context.Background(), 99)
	require.ErrorIs(t, err, ErrNoRows)
	require.True(t, IsBusinessError(err))
}

func TestCartService_ResolveMember(t *testing.T) {
	_, cart, db := newServices(t)
	ctx := context.Background()

	member := models.Member{Email: "a@a.com", Password: "password1"}
	require.NoError(t, db.Create(&member).Error)

	resolved, err := cart.ResolveMember(ctx, "a@a.com", "password1")
	require.NoError(t, err)
	assert.Equal(t, member.ID, resolved.ID)

	// wrong password and unknown email fail identically
	_, badPass := cart.ResolveMember(ctx, "a@a.com", "nope")
	_, badMail := cart.ResolveMember(ctx, "b@b.com", "password1")
	require.ErrorIs(t, badPass, ErrMemberLookup)
	require.ErrorIs(t, badMail, ErrMemberLookup)
	assert.Equal(t, badPass.Error(), badMail.Error())
}

func TestCartService_AddDuplicateFails(t *testing.T) {
	products, cart, db := newServices(t)
	ctx := context.Background()

	member := models.Member{Email: "a@a.com", Password: "password1"}
	require.NoError(t, db.Create(&member).Error)
	prod, err := products.CreateProduct(ctx, "치킨", 10000, "치킨 사진")
	require.NoError(t, err)

	require.NoError(t, cart.AddToCart(ctx, member.ID, prod.ID))

	err = cart.AddToCart(ctx, member.ID, prod.ID)
	require.ErrorIs(t, err, ErrDuplicate)
	require.True(t, IsBusinessError(err))

	items, err := cart.GetCartProducts(ctx, member.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
}

func TestCartService_RemoveAbsentPairIsSilent(t *testing.T) {
	products, cart, db := newServices(t)
	ctx := context.Background()

	member := models.Member{Email: "a@a.com", Password: "password1"}
	require.NoError(t, db.Create(&member).Error)
	prod, err := products.CreateProduct(ctx, "치킨", 10000, "치킨 사진")
	require.NoError(t, err)

	require.NoError(t, cart.DeleteFromCart(ctx, member.ID, prod.ID))

	items, err := cart.GetCartProducts(ctx, member.ID)
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestCartService_GetMembers(t *testing.T) {
	_, cart, db := newServices(t)

	require.NoError(t, db.Create(&models.Member{Email: "a@a.com", Password: "password1"}).Error)
	require.NoError(t, db.Create(&models.Member{Email: "b@b.com", Password: "password2"}).Error)

	members, err := cart.GetMembers(context.Background())
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, "a@a.com", members[0].Email)
	assert.Equal(t, "b@b.com", members[1].Email)
}
