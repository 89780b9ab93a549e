// Package http exposes the order flow over a JSON API served by echo.
package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

// NewEcho returns an echo instance with panic recovery and request logging and every
// route of s registered.
func NewEcho(s *Server) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(log.INFO)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Skipper: func(c echo.Context) bool { return c.Path() == "/health" },
		Format:  "method=${method} uri=${uri} status=${status} latency=${latency_human} id=${id}\n",
	}))

	RegisterHandlers(e, s)
	return e
}
