package middleware

import "github.com/labstack/echo/v4"

const sessionHeader = "X-Session-Id"

// fallback for local development without the hosted auth provider in front
const demoSessionID = "demo-user-001"

// SessionMiddleware trusts the session id set by the hosted auth layer
// upstream. The same id scopes the cart, notifications, addresses, and
// order history.
func SessionMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sessionID := c.Request().Header.Get(sessionHeader)
			if sessionID == "" {
				sessionID = demoSessionID
			}
			c.Set("session_id", sessionID)
			return next(c)
		}
	}
}

func SessionID(c echo.Context) string {
	sessionID, _ := c.Get("session_id").(string)
	return sessionID
}
