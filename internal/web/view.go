package web

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"pcconcept/internal/catalog"
	"pcconcept/internal/logging"
	"pcconcept/internal/models"
	"pcconcept/internal/ui"
)

type ViewData map[string]any

// withShell adds what the header, navigation, toast layer and footer need.
func (s *Server) withShell(c *gin.Context, lock *ui.ScrollLock, data ViewData) ViewData {
	if data == nil {
		data = ViewData{}
	}
	toasts, err := s.notifier(c).Pending()
	if err != nil {
		s.log.Warn("read toasts", zap.Error(err), zap.String("request_id", c.GetString(logging.RequestIDKey)))
	}
	data["Toasts"] = toasts
	data["Categories"] = s.grouping.Categories()
	data["Query"] = catalog.QueryFromValues(c.Request.URL.Query())
	data["Path"] = c.Request.URL.Path
	data["CurrentURL"] = c.Request.URL.RequestURI()
	data["ScrollLocked"] = lock != nil && lock.Locked()
	data["RequestID"] = c.GetString(logging.RequestIDKey)
	data["Year"] = time.Now().Year()
	if _, ok := data["Links"]; !ok {
		data["Links"] = links{u: c.Request.URL}
	}
	return data
}

func (s *Server) render(c *gin.Context, status int, name string, lock *ui.ScrollLock, data ViewData) {
	c.HTML(status, name, s.withShell(c, lock, data))
}

func (s *Server) notifier(c *gin.Context) *ui.Notifier {
	return ui.NewNotifier(sessions.Default(c))
}

// fail renders the generic error page for a page whose data could not be
// loaded.
func (s *Server) fail(c *gin.Context, what string, err error) {
	s.log.Error("page load failed",
		zap.String("path", c.Request.URL.Path),
		zap.String("what", what),
		zap.String("request_id", c.GetString(logging.RequestIDKey)),
		zap.Error(err),
	)
	s.render(c, http.StatusBadGateway, "error.tmpl", nil, ViewData{
		"Title":   "Something went wrong",
		"Message": fmt.Sprintf("Failed to load %s. Please try again later.", what),
	})
}

func (s *Server) notFound(c *gin.Context) {
	s.render(c, http.StatusNotFound, "error.tmpl", nil, ViewData{
		"Title":   "Page not found",
		"Message": "The page you are looking for does not exist.",
	})
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(logging.RequestIDKey, id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// links builds modal URLs relative to the page being rendered so the
// current filters survive opening and closing a dialog.
type links struct {
	u *url.URL
}

func (l links) Product(id models.ID) string {
	return withParams(l.u, map[string]string{"product": id.String()}, "review")
}

func (l links) Review(id models.ID) string {
	return withParams(l.u, map[string]string{"review": id.String()}, "product")
}

// Close drops both modal parameters.
func (l links) Close() string {
	return withParams(l.u, nil, "product", "review")
}

func (l links) Category(name string) string {
	return "/products?" + url.Values{"category": {name}}.Encode()
}

func withParams(u *url.URL, set map[string]string, drop ...string) string {
	q := u.Query()
	for _, k := range drop {
		q.Del(k)
	}
	for k, v := range set {
		q.Set(k, v)
	}
	out := u.Path
	if enc := q.Encode(); enc != "" {
		out += "?" + enc
	}
	return out
}

// safeReturn accepts only local absolute paths.
func safeReturn(raw, fallback string) string {
	if raw == "" || !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") || strings.HasPrefix(raw, "/\\") {
		return fallback
	}
	return raw
}
