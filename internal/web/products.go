package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pcconcept/internal/catalog"
	"pcconcept/internal/services"
	"pcconcept/internal/ui"
)

func (s *Server) productsPage(c *gin.Context) {
	ctx := c.Request.Context()
	q := catalog.QueryFromValues(c.Request.URL.Query())
	params := services.ListParams{Page: 1, PerPage: s.cfg.Pages.ProductsPerPage}

	var (
		page *services.ProductPage
		err  error
	)
	if q.Search != "" {
		page, err = s.products.Search(ctx, q.Search, params)
	} else {
		page, err = s.products.List(ctx, params)
	}
	if err != nil {
		s.fail(c, "products", err)
		return
	}

	listing := catalog.Build(page.Products, q, s.grouping, catalog.ProductEntry, s.cfg.Pages.ProductGroupLimit)
	lock := &ui.ScrollLock{}
	data := ViewData{
		"Title":        listing.Title,
		"Listing":      listing,
		"EmptyMessage": listing.EmptyMessage("products"),
	}
	if !s.attachModals(c, lock, data) {
		return
	}
	s.render(c, http.StatusOK, "products.tmpl", lock, data)
}
