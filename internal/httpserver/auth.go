package httpserver

import (
	"errors"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/mrachkov/shop_cart/internal/logging"
	"github.com/mrachkov/shop_cart/internal/service"
)

const memberIDKey = "member_id"

// BasicAuth resolves the basic-auth pair to a member and stores its id on the
// echo context. Unknown email and wrong password both end in the same 401.
func BasicAuth(svc *service.CartService) echo.MiddlewareFunc {
	return middleware.BasicAuth(func(email, password string, c echo.Context) (bool, error) {
		ctx := c.Request().Context()

		member, err := svc.ResolveMember(ctx, email, password)
		if err != nil {
			if errors.Is(err, service.ErrMemberLookup) {
				return false, nil
			}
			logging.FromContext(ctx).Error("member_resolve_error", "error", err)
			return false, err
		}

		c.Set(memberIDKey, member.ID)
		return true, nil
	})
}

func memberID(c echo.Context) (uint, error) {
	v := c.Get(memberIDKey)
	id, ok := v.(uint)
	if !ok {
		return 0, errors.New("unauthorized")
	}
	return id, nil
}
