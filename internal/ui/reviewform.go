package ui

import (
	"context"
	"errors"
	"strings"

	"pcconcept/internal/apiclient"
	"pcconcept/internal/catalog"
	"pcconcept/internal/models"
	"pcconcept/internal/services"
)

const (
	DefaultRating = 5

	msgIncomplete   = "Please enter your name and your review."
	msgSubmitFailed = "Failed to submit review. Please try again."
)

var ErrIncompleteReview = errors.New("ui: reviewer name and review text are required")

type ReviewCreator interface {
	Create(ctx context.Context, in services.CreateReviewRequest) (*services.ReviewCreated, error)
}

// ReviewForm is the state of the "write a review" dialog for one product.
type ReviewForm struct {
	Product models.Product
	Alias   string
	Text    string
	Rating  int
	Error   string

	modal    *Modal
	grouping *catalog.Grouping
}

func NewReviewForm(product models.Product, grouping *catalog.Grouping, modal *Modal) *ReviewForm {
	return &ReviewForm{
		Product:  product,
		Rating:   DefaultRating,
		modal:    modal,
		grouping: grouping,
	}
}

func (f *ReviewForm) Modal() *Modal { return f.modal }

// ShowBrand reports whether the product's brand is part of the review.
func (f *ReviewForm) ShowBrand() bool {
	return f.Product.Brand != "" && f.grouping.ModeFor(f.Product.Category) == catalog.GroupByBrand
}

func (f *ReviewForm) ShowSubcategory() bool {
	return f.Product.Subcategory != "" && f.grouping.ModeFor(f.Product.Category) == catalog.GroupBySubcategory
}

// CanSubmit mirrors the submit button: enabled only while the dialog is open
// and not already submitting, with both required fields filled.
func (f *ReviewForm) CanSubmit() bool {
	return f.modal.State() == Open &&
		strings.TrimSpace(f.Alias) != "" &&
		strings.TrimSpace(f.Text) != ""
}

func (f *ReviewForm) Request() services.CreateReviewRequest {
	rating := f.Rating
	if rating < 1 || rating > 5 {
		rating = DefaultRating
	}
	req := services.CreateReviewRequest{
		ProductID:   f.Product.ID,
		ProductName: f.Product.Name,
		UserAlias:   strings.TrimSpace(f.Alias),
		ReviewText:  strings.TrimSpace(f.Text),
		Rating:      rating,
		Category:    f.Product.Category,
	}
	if f.ShowBrand() {
		req.Brand = f.Product.Brand
	}
	if f.ShowSubcategory() {
		req.Subcategory = f.Product.Subcategory
	}
	return req
}

// Submit sends the review once. On success the fields are cleared, the dialog
// closes and onSuccess runs exactly once. On failure the dialog stays open,
// the fields are kept and Error holds the backend's message when it sent one.
func (f *ReviewForm) Submit(ctx context.Context, creator ReviewCreator, onSuccess func(*services.ReviewCreated)) error {
	if !f.CanSubmit() {
		if f.modal.State() != Open {
			return ErrInvalidTransition
		}
		f.Error = msgIncomplete
		return ErrIncompleteReview
	}
	if err := f.modal.BeginSubmit(); err != nil {
		return err
	}
	f.Error = ""

	created, err := creator.Create(ctx, f.Request())
	if err != nil {
		f.Error = apiclient.ErrorMessage(err, msgSubmitFailed)
		_ = f.modal.Fail()
		return err
	}

	f.Alias, f.Text, f.Rating = "", "", DefaultRating
	f.modal.Close()
	if onSuccess != nil {
		onSuccess(created)
	}
	return nil
}
