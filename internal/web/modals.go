package web

import (
	"github.com/gin-gonic/gin"

	"pcconcept/internal/models"
	"pcconcept/internal/ui"
)

type productModal struct {
	Product  models.Product
	Modal    *ui.Modal
	CloseURL string
	// ReviewURL swaps the detail dialog for the review dialog of the same product.
	ReviewURL string
}

type reviewModal struct {
	Form     *ui.ReviewForm
	Return   string
	CloseURL string
}

// attachModals opens the dialogs requested through the product and review
// query parameters. It reports false when it already rendered an error page.
func (s *Server) attachModals(c *gin.Context, lock *ui.ScrollLock, data ViewData) bool {
	l := links{u: c.Request.URL}
	ctx := c.Request.Context()

	if id := c.Query("product"); id != "" {
		p, err := s.products.Get(ctx, id)
		if err != nil {
			s.fail(c, "product details", err)
			return false
		}
		m := ui.NewModal(lock)
		_ = m.Open()
		data["ProductModal"] = productModal{
			Product:   *p,
			Modal:     m,
			CloseURL:  l.Close(),
			ReviewURL: l.Review(p.ID),
		}
	}

	if id := c.Query("review"); id != "" {
		p, err := s.products.Get(ctx, id)
		if err != nil {
			s.fail(c, "product details", err)
			return false
		}
		m := ui.NewModal(lock)
		_ = m.Open()
		data["ReviewModal"] = reviewModal{
			Form:     ui.NewReviewForm(*p, s.grouping, m),
			Return:   l.Close(),
			CloseURL: l.Close(),
		}
	}
	return true
}
