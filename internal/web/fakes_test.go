package web

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"pcconcept/internal/apiclient"
	"pcconcept/internal/catalog"
	"pcconcept/internal/config"
	"pcconcept/internal/models"
	"pcconcept/internal/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeProducts struct {
	mu       sync.Mutex
	all      []models.Product
	cards    []models.ProductCard
	err      error
	searched []string
}

func (f *fakeProducts) List(ctx context.Context, p services.ListParams) (*services.ProductPage, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &services.ProductPage{Products: f.all}, nil
}

func (f *fakeProducts) Cards(ctx context.Context, page, perPage int) (*services.CardPage, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &services.CardPage{Products: f.cards}, nil
}

func (f *fakeProducts) Get(ctx context.Context, id string) (*models.Product, error) {
	for _, p := range f.all {
		if p.ID.String() == id {
			return &p, nil
		}
	}
	return nil, &apiclient.APIError{Status: http.StatusNotFound, Message: "Product not found"}
}

func (f *fakeProducts) Search(ctx context.Context, term string, p services.ListParams) (*services.ProductPage, error) {
	f.mu.Lock()
	f.searched = append(f.searched, term)
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Product
	for _, p := range f.all {
		if strings.Contains(strings.ToLower(p.Name), strings.ToLower(term)) {
			out = append(out, p)
		}
	}
	return &services.ProductPage{Products: out, SearchTerm: term}, nil
}

type fakeBlogs struct {
	all []models.Blog
	err error
}

func (f *fakeBlogs) List(ctx context.Context, page, perPage int) (*services.BlogPage, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &services.BlogPage{Blogs: f.all}, nil
}

func (f *fakeBlogs) Get(ctx context.Context, id int) (*models.Blog, error) {
	for _, b := range f.all {
		if b.ID == id {
			return &b, nil
		}
	}
	return nil, &apiclient.APIError{Status: http.StatusNotFound, Message: "Blog not found"}
}

type fakeReviews struct {
	mu        sync.Mutex
	all       []models.Review
	err       error
	createErr error
	created   []services.CreateReviewRequest
}

func (f *fakeReviews) List(ctx context.Context, p services.ReviewListParams) (*services.ReviewPage, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &services.ReviewPage{Reviews: f.all}, nil
}

func (f *fakeReviews) Create(ctx context.Context, in services.CreateReviewRequest) (*services.ReviewCreated, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, in)
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &services.ReviewCreated{Message: "Review created", ID: len(f.created)}, nil
}

type fakePinger struct{ err error }

func (f fakePinger) Ping(context.Context) error { return f.err }

var errBackendDown = errors.New("connection refused")

type harness struct {
	engine   *gin.Engine
	products *fakeProducts
	blogs    *fakeBlogs
	reviews  *fakeReviews
}

func testConfig() config.Config {
	return config.Config{
		SessionSecret:    "test-secret",
		Currency:         "₱",
		PlaceholderImage: "/static/placeholder.svg",
		Pages: config.Pages{
			HomeProducts:      100,
			HomeBlogs:         20,
			ProductsPerPage:   100,
			BlogsPerPage:      20,
			ReviewsPerPage:    100,
			ProductGroupLimit: 5,
			ReviewGroupLimit:  3,
			PromotionBlogIDs:  []int{7, 8, 9, 10, 11},
			OnSaleOffset:      40,
			OnSaleCount:       5,
		},
	}
}

func testGrouping(t *testing.T) *catalog.Grouping {
	t.Helper()
	g, err := catalog.NewGrouping([]catalog.Category{
		{Name: "Laptops", Label: "LAPTOPS", Title: "FOR LAPTOPS", GroupBy: catalog.GroupByBrand},
		{Name: "Components", Label: "COMPONENTS", Title: "FOR PC COMPONENTS", GroupBy: catalog.GroupBySubcategory},
	})
	require.NoError(t, err)
	return g
}

func product(id, name, category, brand, sub string) models.Product {
	return models.Product{
		ProductCard: models.ProductCard{ID: models.ID(id), Name: name, Price: decimal.NewFromInt(1000)},
		Category:    category,
		Brand:       brand,
		Subcategory: sub,
	}
}

func newHarness(t *testing.T, pinger Pinger) *harness {
	t.Helper()
	h := &harness{
		products: &fakeProducts{},
		blogs:    &fakeBlogs{},
		reviews:  &fakeReviews{},
	}
	if pinger == nil {
		pinger = fakePinger{}
	}
	engine, err := NewServer(Deps{
		Config:   testConfig(),
		Grouping: testGrouping(t),
		Products: h.products,
		Blogs:    h.blogs,
		Reviews:  h.reviews,
		Backend:  pinger,
		Log:      zap.NewNop(),
	})
	require.NoError(t, err)
	h.engine = engine
	return h
}

func (h *harness) get(t *testing.T, target string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	h.engine.ServeHTTP(rec, req)
	return rec
}

func (h *harness) post(t *testing.T, target string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	h.engine.ServeHTTP(rec, req)
	return rec
}
