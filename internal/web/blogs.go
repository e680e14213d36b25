package web

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pcconcept/internal/logging"
)

func (s *Server) blogsPage(c *gin.Context) {
	page, err := s.blogs.List(c.Request.Context(), 1, s.cfg.Pages.BlogsPerPage)
	if err != nil {
		s.fail(c, "blogs", err)
		return
	}
	s.render(c, http.StatusOK, "blogs.tmpl", nil, ViewData{
		"Title": "Blogs",
		"Blogs": page.Blogs,
	})
}

// blogDetail sends the visitor back to the listing when the id cannot be
// resolved, whatever the reason.
func (s *Server) blogDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.Redirect(http.StatusSeeOther, "/blogs")
		return
	}
	blog, err := s.blogs.Get(c.Request.Context(), id)
	if err != nil {
		s.log.Warn("blog not resolved",
			zap.Int("blog_id", id),
			zap.String("request_id", c.GetString(logging.RequestIDKey)),
			zap.Error(err),
		)
		c.Redirect(http.StatusSeeOther, "/blogs")
		return
	}
	s.render(c, http.StatusOK, "blog_detail.tmpl", nil, ViewData{
		"Title": blog.Title,
		"Blog":  blog,
	})
}
