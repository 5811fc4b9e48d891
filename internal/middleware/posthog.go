package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// EventTracker is the subset of the analytics client the middleware needs.
type EventTracker interface {
	IsInitialized() bool
	Enqueue(distinctID string, event string, properties map[string]any)
}

// untrackedPrefixes are routes that never produce analytics events.
var untrackedPrefixes = []string{"/health", "/metrics", "/swagger"}

// PosthogMiddleware reports successful authenticated API calls as analytics events.
// The event name is derived from the route template, e.g.
// "/api/businesses/:businessId/invoices" -> "api_businesses_invoices".
func PosthogMiddleware(tracker EventTracker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tracker == nil || !tracker.IsInitialized() || isUntracked(c.Request.URL.Path) {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		userID, ok := GetUserIDFromContext(c)
		if !ok {
			return
		}
		eventName := eventNameForRoute(c.FullPath())
		if eventName == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"status_code": c.Writer.Status(),
		}
		if businessID := c.Param("businessId"); businessID != "" {
			props["business_id"] = businessID
		}
		tracker.Enqueue(userID, eventName, props)
	}
}

func isUntracked(path string) bool {
	for _, prefix := range untrackedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func eventNameForRoute(route string) string {
	segments := strings.Split(strings.Trim(route, "/"), "/")
	kept := segments[:0]
	for _, s := range segments {
		if s == "" || strings.HasPrefix(s, ":") || strings.HasPrefix(s, "*") {
			continue
		}
		kept = append(kept, strings.ReplaceAll(s, "-", "_"))
	}
	return strings.Join(kept, "_")
}
