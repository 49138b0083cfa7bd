package server

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/nguyentantai21042004/note-digest/internal/logger"
	"github.com/nguyentantai21042004/note-digest/internal/models"
)

type localsKey string

const localsRequestID localsKey = "requestid"

const kindForbiddenOrigin = "forbidden_origin"

var localHosts = map[string]bool{
	"localhost": true,
	"127.0.0.1": true,
	"::1":       true,
}

// isLocalOrigin accepts http(s) origins on a loopback host, any port.
func isLocalOrigin(origin string) bool {
	u, err := url.Parse(strings.TrimSpace(origin))
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return localHosts[strings.ToLower(u.Hostname())]
}

// originGuard rejects browser requests from non-local origins. Requests
// without an Origin header are not browser CORS requests and pass.
func (s *implServer) originGuard(c *fiber.Ctx) error {
	origin := c.Get(fiber.HeaderOrigin)
	if origin == "" || isLocalOrigin(origin) {
		return c.Next()
	}

	s.logger.Warn(s.requestContext(c), "Rejected request from origin %q", origin)
	return c.Status(fiber.StatusForbidden).JSON(models.ErrorEnvelope{
		Error: "origin not allowed",
		Kind:  kindForbiddenOrigin,
	})
}

func (s *implServer) accessLog(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	if err != nil {
		// Let the error handler write the response before logging its status.
		if herr := c.App().ErrorHandler(c, err); herr != nil {
			_ = c.SendStatus(fiber.StatusInternalServerError)
		}
	}
	s.logger.Info(s.requestContext(c), "%s %s -> %d in %s",
		c.Method(), c.Path(), c.Response().StatusCode(), time.Since(start).Round(time.Millisecond))
	return nil
}

// requestContext returns a context carrying the request id that is detached
// from the client connection, so outbound calls finish even if it drops.
func (s *implServer) requestContext(c *fiber.Ctx) context.Context {
	ctx := context.WithoutCancel(c.UserContext())
	if id, ok := c.Locals(localsRequestID).(string); ok {
		ctx = logger.WithRequestID(ctx, id)
	}
	return ctx
}
