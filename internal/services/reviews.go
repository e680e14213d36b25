package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/tidwall/gjson"

	"pcconcept/internal/apiclient"
	"pcconcept/internal/models"
)

type ReviewPage struct {
	Reviews []models.Review `json:"reviews"`
	Pagination
	CurrentPage int       `json:"current_page,omitempty"`
	ProductID   models.ID `json:"product_id,omitempty"`
	ProductName string    `json:"product_name,omitempty"`
}

type ReviewListParams struct {
	Page               int
	PerPage            int
	IncludeProductName bool
}

// ReviewFilter maps onto GET /reviews/filter. The backend only accepts Brand
// for Laptops and Subcategory for subcategory-based categories.
type ReviewFilter struct {
	Category           string
	Brand              string
	Subcategory        string
	Page               int
	PerPage            int
	IncludeProductName bool
}

type CreateReviewRequest struct {
	ProductID   models.ID `json:"product_id"`
	ProductName string    `json:"product_name,omitempty"`
	UserAlias   string    `json:"user_alias"`
	ReviewText  string    `json:"review_text"`
	Rating      int       `json:"rating,omitempty"`
	Category    string    `json:"category"`
	Brand       string    `json:"brand,omitempty"`
	Subcategory string    `json:"subcategory,omitempty"`
}

// ReviewUpdate is a partial update; empty fields are not sent.
type ReviewUpdate struct {
	UserAlias  string `json:"user_alias,omitempty"`
	ReviewText string `json:"review_text,omitempty"`
	Rating     int    `json:"rating,omitempty"`
}

type ReviewCreated struct {
	Message string `json:"message"`
	ID      int    `json:"review_id"`
}

// Reviews wraps the /reviews resource.
type Reviews struct {
	api *apiclient.Client
}

func NewReviews(api *apiclient.Client) *Reviews {
	return &Reviews{api: api}
}

func (s *Reviews) List(ctx context.Context, p ReviewListParams) (*ReviewPage, error) {
	q := pageValues(p.Page, p.PerPage)
	q.Set("include_product_name", strconv.FormatBool(p.IncludeProductName))
	return s.getPage(ctx, "/reviews/", q)
}

func (s *Reviews) Get(ctx context.Context, id int) (*models.Review, error) {
	var out models.Review
	if err := s.api.Get(ctx, reviewPath(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Reviews) ByProduct(ctx context.Context, productID string, page, perPage int) (*ReviewPage, error) {
	out, err := s.getPage(ctx, "/reviews/product/"+url.PathEscape(productID), pageValues(page, perPage))
	if err != nil {
		return nil, err
	}
	if out.ProductID == "" {
		out.ProductID = models.ID(productID)
	}
	return out, nil
}

func (s *Reviews) Filter(ctx context.Context, f ReviewFilter) (*ReviewPage, error) {
	q := pageValues(f.Page, f.PerPage)
	if f.Category != "" {
		q.Set("category", f.Category)
	}
	if f.Brand != "" {
		q.Set("brand", f.Brand)
	}
	if f.Subcategory != "" {
		q.Set("subcategory", f.Subcategory)
	}
	q.Set("include_product_name", strconv.FormatBool(f.IncludeProductName))
	return s.getPage(ctx, "/reviews/filter", q)
}

func (s *Reviews) Create(ctx context.Context, in CreateReviewRequest) (*ReviewCreated, error) {
	var out ReviewCreated
	if err := s.api.Post(ctx, "/reviews/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Reviews) Update(ctx context.Context, id int, in ReviewUpdate) (*Ack, error) {
	var out Ack
	if err := s.api.Put(ctx, reviewPath(id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Reviews) Delete(ctx context.Context, id int) (*Ack, error) {
	var out Ack
	if err := s.api.Delete(ctx, reviewPath(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// getPage accepts both the paginated envelope and the bare array some
// review endpoints answer with.
func (s *Reviews) getPage(ctx context.Context, path string, q url.Values) (*ReviewPage, error) {
	var raw json.RawMessage
	if err := s.api.Get(ctx, path, q, &raw); err != nil {
		return nil, err
	}
	return decodeReviewPage(raw)
}

func decodeReviewPage(raw []byte) (*ReviewPage, error) {
	var out ReviewPage
	if len(raw) == 0 {
		return &out, nil
	}

	if gjson.ParseBytes(raw).IsArray() {
		if err := json.Unmarshal(raw, &out.Reviews); err != nil {
			return nil, fmt.Errorf("decode review list: %w", err)
		}
		out.Total = len(out.Reviews)
		out.PerPage = len(out.Reviews)
		out.Page, out.Pages = 1, 1
		return &out, nil
	}

	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode review page: %w", err)
	}
	if out.Page == 0 {
		out.Page = out.CurrentPage
	}
	return &out, nil
}

func reviewPath(id int) string {
	return "/reviews/" + strconv.Itoa(id)
}
