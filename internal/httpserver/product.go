package httpserver

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mrachkov/shop_cart/internal/events"
	"github.com/mrachkov/shop_cart/internal/logging"
	"github.com/mrachkov/shop_cart/internal/service"
	"github.com/mrachkov/shop_cart/internal/transport"
)

type ProductHTTP struct {
	Svc      *service.ProductService
	Producer *events.Producer
}

func (h *ProductHTTP) publish(c echo.Context, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, events.TopicProductEvents, fmt.Sprint(event["productID"]), event); err != nil {
		logging.FromContext(c.Request().Context()).Error("kafka_publish_error", "error", err)
	}
}

func (h *ProductHTTP) GetProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_products")

	items, err := h.Svc.GetProducts(ctx)
	if err != nil {
		l.Error("get_products_error", "error", err)
		return err
	}

	l.Info("get_products_success")
	return c.JSON(http.StatusOK, items)
}

func (h *ProductHTTP) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.create_product")

	var req transport.CreateProductRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("product_create_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := req.Validate(); err != nil {
		l.Warn("product_create_error", "status", 400, "reason", "validation failed", "error", err)
		return err
	}

	prod, err := h.Svc.CreateProduct(ctx, *req.Name, *req.Price, *req.Image)
	if err != nil {
		l.Error("product_create_error", "error", err)
		return err
	}

	h.publish(c, map[string]any{
		"type":      "product_created",
		"productID": prod.ID,
		"name":      prod.Name,
	})

	l.Info("create_product_success")
	// Location points at the collection, not the new resource.
	c.Response().Header().Set(echo.HeaderLocation, "/products")
	return c.NoContent(http.StatusCreated)
}

func (h *ProductHTTP) UpdateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.update_product")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		l.Warn("product_update_error", "status", 400, "reason", "id is not an integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not an integer")
	}

	var req transport.UpdateProductRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("product_update_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	prod, err := h.Svc.UpdateProduct(ctx, req, uint(id))
	if err != nil {
		l.Warn("product_update_error", "error", err)
		return err
	}

	h.publish(c, map[string]any{
		"type":      "product_updated",
		"productID": prod.ID,
		"name":      prod.Name,
	})

	l.Info("update_product_success")
	return c.NoContent(http.StatusOK)
}

func (h *ProductHTTP) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.delete_product")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		l.Warn("product_delete_error", "status", 400, "reason", "id is not an integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not an integer")
	}

	if err := h.Svc.DeleteProduct(ctx, uint(id)); err != nil {
		l.Warn("product_delete_error", "error", err)
		return err
	}

	h.publish(c, map[string]any{
		"type":      "product_deleted",
		"productID": id,
	})

	l.Info("delete_product_success")
	return c.NoContent(http.StatusOK)
}
