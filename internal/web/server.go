package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"pcconcept/internal/catalog"
	"pcconcept/internal/config"
	"pcconcept/internal/logging"
	"pcconcept/internal/models"
	"pcconcept/internal/render"
	"pcconcept/internal/services"
)

//go:embed templates static
var assets embed.FS

const sessionName = "pc_session"

type ProductService interface {
	List(ctx context.Context, p services.ListParams) (*services.ProductPage, error)
	Cards(ctx context.Context, page, perPage int) (*services.CardPage, error)
	Get(ctx context.Context, id string) (*models.Product, error)
	Search(ctx context.Context, term string, p services.ListParams) (*services.ProductPage, error)
}

type BlogService interface {
	List(ctx context.Context, page, perPage int) (*services.BlogPage, error)
	Get(ctx context.Context, id int) (*models.Blog, error)
}

type ReviewService interface {
	List(ctx context.Context, p services.ReviewListParams) (*services.ReviewPage, error)
	Create(ctx context.Context, in services.CreateReviewRequest) (*services.ReviewCreated, error)
}

type Pinger interface {
	Ping(ctx context.Context) error
}

type Deps struct {
	Config   config.Config
	Grouping *catalog.Grouping
	Products ProductService
	Blogs    BlogService
	Reviews  ReviewService
	Backend  Pinger
	Log      *zap.Logger
}

// Server holds the page handlers. Every page fetches its own data on every
// request; nothing is shared between requests.
type Server struct {
	cfg      config.Config
	grouping *catalog.Grouping
	products ProductService
	blogs    BlogService
	reviews  ReviewService
	backend  Pinger
	log      *zap.Logger
}

// NewServer wires the application shell: middleware, sessions, templates,
// static assets and routes.
func NewServer(d Deps) (*gin.Engine, error) {
	if d.Grouping == nil || d.Products == nil || d.Blogs == nil || d.Reviews == nil || d.Backend == nil {
		return nil, errors.New("web: missing dependency")
	}
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	s := &Server{
		cfg:      d.Config,
		grouping: d.Grouping,
		products: d.Products,
		blogs:    d.Blogs,
		reviews:  d.Reviews,
		backend:  d.Backend,
		log:      d.Log,
	}

	tmpl, err := template.New("").Funcs(s.funcs()).ParseFS(assets, "templates/*.tmpl", "templates/partials/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	static, err := fs.Sub(assets, "static")
	if err != nil {
		return nil, fmt.Errorf("static assets: %w", err)
	}

	r := gin.New()
	r.Use(requestID(), logging.Middleware(s.log), logging.Recovery(s.log))

	store := cookie.NewStore([]byte(d.Config.SessionSecret))
	store.Options(sessions.Options{Path: "/", HttpOnly: true, SameSite: http.SameSiteLaxMode})
	r.Use(sessions.Sessions(sessionName, store))

	r.SetHTMLTemplate(tmpl)
	r.StaticFS("/static", http.FS(static))

	r.GET("/health", s.health)

	r.GET("/", s.home)
	r.GET("/products", s.productsPage)
	r.GET("/blog", s.blogsPage)
	r.GET("/blogs", s.blogsPage)
	r.GET("/blogs/:id", s.blogDetail)
	r.GET("/reviews", s.reviewsPage)
	r.POST("/reviews", s.submitReview)
	r.GET("/about", s.static("about.tmpl", "About Us"))
	r.GET("/contact", s.static("contact.tmpl", "Contact Us"))
	r.POST("/toasts/dismiss", s.dismissToasts)

	r.NoRoute(s.notFound)
	return r, nil
}

func (s *Server) funcs() template.FuncMap {
	return template.FuncMap{
		"price": func(d decimal.Decimal) string { return render.Price(d, s.cfg.Currency) },
		"date":  render.Date,
		"md":    render.Markdown,
		"image": func(url string) string { return models.ImageOr(url, s.cfg.PlaceholderImage) },
		"upper": strings.ToUpper,
		"card": func(p models.Product, link string) map[string]any {
			return map[string]any{"Product": p, "Link": link}
		},
		"stars":   func(n int) []struct{} { return make([]struct{}, max(0, min(n, 5))) },
		"ratings": func() []int { return []int{5, 4, 3, 2, 1} },
	}
}

func (s *Server) health(c *gin.Context) {
	if err := s.backend.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "backend": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
