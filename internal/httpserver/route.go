package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mrachkov/shop_cart/internal/service"
)

type Deps struct {
	ProductHandler *ProductHTTP
	CartHandler    *CartHTTP
	MemberHandler  *MemberHTTP
	CartService    *service.CartService
}

func Register(e *echo.Echo, d *Deps) {
	e.HTTPErrorHandler = ErrorHandler

	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	products := e.Group("/products")
	products.GET("", d.ProductHandler.GetProducts)
	products.POST("", d.ProductHandler.CreateProduct)
	products.PUT("/:id", d.ProductHandler.UpdateProduct)
	products.DELETE("/:id", d.ProductHandler.DeleteProduct)

	e.GET("/members", d.MemberHandler.GetMembers)

	cart := e.Group("/cart")
	cart.Use(BasicAuth(d.CartService))
	cart.GET("", d.CartHandler.GetCart)
	cart.POST("/items/:productId", d.CartHandler.AddToCart)
	cart.DELETE("/items/:productId", d.CartHandler.DeleteFromCart)
}
