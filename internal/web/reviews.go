package web

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pcconcept/internal/catalog"
	"pcconcept/internal/logging"
	"pcconcept/internal/services"
	"pcconcept/internal/ui"
)

const (
	reviewsTitle        = "WHAT OUR CUSTOMERS SAY"
	msgReviewSubmitted  = "Thank you! Your review has been submitted."
	msgReviewNoProduct  = "Please choose a product to review."
	msgReviewNoProdLoad = "Failed to load product details. Please try again later."
)

func (s *Server) reviewsPage(c *gin.Context) {
	q := catalog.QueryFromValues(c.Request.URL.Query())
	page, err := s.reviews.List(c.Request.Context(), services.ReviewListParams{
		Page:               1,
		PerPage:            s.cfg.Pages.ReviewsPerPage,
		IncludeProductName: true,
	})
	if err != nil {
		s.fail(c, "reviews", err)
		return
	}

	listing := catalog.Build(page.Reviews, q, s.grouping, catalog.ReviewEntry, s.cfg.Pages.ReviewGroupLimit)
	empty := "No reviews available yet"
	if q.Category != "" || q.Search != "" {
		empty = listing.EmptyMessage("reviews")
	}
	lock := &ui.ScrollLock{}
	data := ViewData{
		"Title":        "Reviews",
		"Heading":      reviewsTitle,
		"Listing":      listing,
		"EmptyMessage": empty,
	}
	if !s.attachModals(c, lock, data) {
		return
	}
	s.render(c, http.StatusOK, "reviews.tmpl", lock, data)
}

// submitReview posts the review dialog. On success it queues a toast and
// redirects back; on failure the dialog is rendered again, still open, with
// the visitor's input and the backend's message.
func (s *Server) submitReview(c *gin.Context) {
	ctx := c.Request.Context()
	ret := safeReturn(c.PostForm("return"), "/reviews")
	notifier := s.notifier(c)
	reqID := c.GetString(logging.RequestIDKey)

	productID := strings.TrimSpace(c.PostForm("product_id"))
	if productID == "" {
		_ = notifier.Error(msgReviewNoProduct)
		c.Redirect(http.StatusSeeOther, ret)
		return
	}
	product, err := s.products.Get(ctx, productID)
	if err != nil {
		s.log.Warn("review product lookup", zap.String("product_id", productID), zap.String("request_id", reqID), zap.Error(err))
		_ = notifier.Error(msgReviewNoProdLoad)
		c.Redirect(http.StatusSeeOther, ret)
		return
	}

	lock := &ui.ScrollLock{}
	modal := ui.NewModal(lock)
	_ = modal.Open()
	form := ui.NewReviewForm(*product, s.grouping, modal)
	form.Alias = c.PostForm("user_alias")
	form.Text = c.PostForm("review_text")
	if r, err := strconv.Atoi(c.PostForm("rating")); err == nil && r >= 1 && r <= 5 {
		form.Rating = r
	}

	err = form.Submit(ctx, s.reviews, func(created *services.ReviewCreated) {
		if created != nil {
			s.log.Info("review created",
				zap.Int("review_id", created.ID),
				zap.String("product_id", productID),
				zap.String("request_id", reqID),
			)
		}
		if err := notifier.Success(msgReviewSubmitted); err != nil {
			s.log.Warn("queue toast", zap.Error(err), zap.String("request_id", reqID))
		}
	})
	if err == nil {
		c.Redirect(http.StatusSeeOther, ret)
		return
	}

	s.log.Warn("review rejected", zap.String("product_id", productID), zap.String("request_id", reqID), zap.Error(err))
	s.render(c, http.StatusUnprocessableEntity, "review_form.tmpl", lock, ViewData{
		"Title":       "Write a review",
		"ReviewModal": reviewModal{Form: form, Return: ret, CloseURL: ret},
	})
}
