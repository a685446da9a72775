package http

import (
	"net/http"

	"orders/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// ownerContextKey is the echo context key the verified caller identity is
// stored under.
const ownerContextKey = "ownerID"

// identityHeader carries the caller identity established by the fronting
// gateway. The service trusts it as-is.
const identityHeader = "X-User-Id"

// RequireOwner rejects requests without a caller identity and exposes the
// identity to the handlers. Every order operation is owner-scoped, so there
// is nothing useful to do for an anonymous request.
func RequireOwner(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		ownerID := ctx.Request().Header.Get(identityHeader)
		if ownerID == "" {
			return ctx.JSON(http.StatusUnauthorized, servers.Error{
				Code:    http.StatusUnauthorized,
				Message: "missing " + identityHeader + " header",
			})
		}

		ctx.Set(ownerContextKey, ownerID)
		return next(ctx)
	}
}

// OwnerID returns the verified caller identity set by RequireOwner.
func OwnerID(ctx echo.Context) string {
	ownerID, _ := ctx.Get(ownerContextKey).(string)
	return ownerID
}
