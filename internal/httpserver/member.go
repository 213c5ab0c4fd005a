package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mrachkov/shop_cart/internal/logging"
	"github.com/mrachkov/shop_cart/internal/service"
)

type MemberHTTP struct {
	Svc *service.CartService
}

func (h *MemberHTTP) GetMembers(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "member.get_members")

	members, err := h.Svc.GetMembers(ctx)
	if err != nil {
		l.Error("get_members_error", "error", err)
		return err
	}

	l.Info("get_members_success")
	return c.JSON(http.StatusOK, members)
}
