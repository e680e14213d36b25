package web

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"pcconcept/internal/logging"
	"pcconcept/internal/models"
	"pcconcept/internal/ui"
)

// home loads the product cards and the blog list concurrently. A failure of
// either fails the whole page.
func (s *Server) home(c *gin.Context) {
	var (
		cards []models.ProductCard
		blogs []models.Blog
	)
	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		page, err := s.products.Cards(ctx, 1, s.cfg.Pages.HomeProducts)
		if err != nil {
			return fmt.Errorf("home products: %w", err)
		}
		cards = page.Products
		return nil
	})
	g.Go(func() error {
		page, err := s.blogs.List(ctx, 1, s.cfg.Pages.HomeBlogs)
		if err != nil {
			return fmt.Errorf("home blogs: %w", err)
		}
		blogs = page.Blogs
		return nil
	})
	if err := g.Wait(); err != nil {
		s.fail(c, "content", err)
		return
	}

	lock := &ui.ScrollLock{}
	data := ViewData{
		"Title":      "Home",
		"Promotions": promotions(blogs, s.cfg.Pages.PromotionBlogIDs),
		"OnSale":     models.FromCards(window(cards, s.cfg.Pages.OnSaleOffset, s.cfg.Pages.OnSaleCount)),
	}
	if !s.attachModals(c, lock, data) {
		return
	}
	s.render(c, http.StatusOK, "home.tmpl", lock, data)
}

// promotions keeps the blogs whose id is listed, in list order.
func promotions(blogs []models.Blog, ids []int) []models.Blog {
	byID := make(map[int]models.Blog, len(blogs))
	for _, b := range blogs {
		byID[b.ID] = b
	}
	out := make([]models.Blog, 0, len(ids))
	for _, id := range ids {
		if b, ok := byID[id]; ok {
			out = append(out, b)
		}
	}
	return out
}

func window[T any](items []T, offset, count int) []T {
	if offset < 0 || offset >= len(items) || count <= 0 {
		return nil
	}
	end := min(offset+count, len(items))
	return items[offset:end]
}

func (s *Server) static(name, title string) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.render(c, http.StatusOK, name, nil, ViewData{"Title": title})
	}
}

func (s *Server) dismissToasts(c *gin.Context) {
	if err := s.notifier(c).Dismiss(); err != nil {
		s.log.Warn("dismiss toasts", zap.Error(err), zap.String("request_id", c.GetString(logging.RequestIDKey)))
	}
	c.Redirect(http.StatusSeeOther, safeReturn(c.PostForm("return"), "/"))
}
