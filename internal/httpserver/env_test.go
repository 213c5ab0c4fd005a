package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mrachkov/shop_cart/internal/models"
	"github.com/mrachkov/shop_cart/internal/repo"
	"github.com/mrachkov/shop_cart/internal/service"
)

type testEnv struct {
	T  *testing.T
	E  *echo.Echo
	DB *gorm.DB
}

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

func newTestEnv(t *testing.T) *testEnv {
	db := initTestDB(t)

	gormRepo := &repo.GormRepo{DB: db}
	productService := &service.ProductService{Repo: gormRepo}
	cartService := &service.CartService{Repo: gormRepo}

	e := echo.New()
	Register(e, &Deps{
		ProductHandler: &ProductHTTP{Svc: productService},
		CartHandler:    &CartHTTP{Svc: cartService},
		MemberHandler:  &MemberHTTP{Svc: cartService},
		CartService:    cartService,
	})

	return &testEnv{T: t, E: e, DB: db}
}

func (env *testEnv) seedMember(email, password string) models.Member {
	env.T.Helper()
	member := models.Member{Email: email, Password: password}
	require.NoError(env.T, env.DB.Create(&member).Error)
	return member
}

func (env *testEnv) doJSON(method, path string, body any, creds ...string) *httptest.ResponseRecorder {
	env.T.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if len(creds) == 2 {
		req.SetBasicAuth(creds[0], creds[1])
	}

	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

func (env *testEnv) doRaw(method, path, body string) *httptest.ResponseRecorder {
	env.T.Helper()

	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

func (env *testEnv) listProducts() []models.Product {
	env.T.Helper()

	rec := env.doJSON(http.MethodGet, "/products", nil)
	require.Equal(env.T, http.StatusOK, rec.Code)

	var items []models.Product
	require.NoError(env.T, json.Unmarshal(rec.Body.Bytes(), &items))
	return items
}
