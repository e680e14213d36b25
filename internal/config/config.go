package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"pcconcept/internal/catalog"
)

const (
	configFileEnvName = "PCCONCEPT_CONFIG_FILE"
	envPrefix         = "PCCONCEPT"
)

type API struct {
	BaseURL string            `mapstructure:"base_url"`
	Headers map[string]string `mapstructure:"headers"`
}

type Pages struct {
	HomeProducts      int   `mapstructure:"home_products"`
	HomeBlogs         int   `mapstructure:"home_blogs"`
	ProductsPerPage   int   `mapstructure:"products_per_page"`
	BlogsPerPage      int   `mapstructure:"blogs_per_page"`
	ReviewsPerPage    int   `mapstructure:"reviews_per_page"`
	ProductGroupLimit int   `mapstructure:"product_group_limit"`
	ReviewGroupLimit  int   `mapstructure:"review_group_limit"`
	PromotionBlogIDs  []int `mapstructure:"promotion_blog_ids"`
	OnSaleOffset      int   `mapstructure:"on_sale_offset"`
	OnSaleCount       int   `mapstructure:"on_sale_count"`
}

type Category struct {
	Name    string `mapstructure:"name"`
	Label   string `mapstructure:"label"`
	Title   string `mapstructure:"title"`
	GroupBy string `mapstructure:"group_by"`
}

type Config struct {
	LogLevel         string     `mapstructure:"log_level"`
	HTTPAddr         string     `mapstructure:"http_addr"`
	SessionSecret    string     `mapstructure:"session_secret"`
	Currency         string     `mapstructure:"currency"`
	PlaceholderImage string     `mapstructure:"placeholder_image"`
	API              API        `mapstructure:"api"`
	Pages            Pages      `mapstructure:"pages"`
	Categories       []Category `mapstructure:"categories"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("http_addr", ":8080")
	v.SetDefault("session_secret", "dev_fallback_secret")
	v.SetDefault("currency", "₱")
	v.SetDefault("placeholder_image", "/static/placeholder.svg")
	v.SetDefault("api.base_url", "http://localhost:5000")
	v.SetDefault("api.headers", map[string]string{})

	v.SetDefault("pages.home_products", 100)
	v.SetDefault("pages.home_blogs", 20)
	v.SetDefault("pages.products_per_page", 100)
	v.SetDefault("pages.blogs_per_page", 20)
	v.SetDefault("pages.reviews_per_page", 100)
	v.SetDefault("pages.product_group_limit", 5)
	v.SetDefault("pages.review_group_limit", 3)
	v.SetDefault("pages.promotion_blog_ids", []int{7, 8, 9, 10, 11})
	v.SetDefault("pages.on_sale_offset", 40)
	v.SetDefault("pages.on_sale_count", 5)

	v.SetDefault("categories", []map[string]any{
		{"name": "Laptops", "label": "LAPTOPS", "title": "FOR LAPTOPS", "group_by": "brand"},
		{"name": "Desktop/PCs", "label": "DESKTOP/PC", "title": "FOR DESKTOP / PC", "group_by": "subcategory"},
		{"name": "Components", "label": "COMPONENTS", "title": "FOR PC COMPONENTS", "group_by": "subcategory"},
		{"name": "Accessories", "label": "ACCESSORIES", "title": "FOR ACCESSORIES", "group_by": "subcategory"},
		{"name": "Speakers", "label": "SPEAKERS", "title": "FOR SPEAKERS", "group_by": "brand"},
	})
}

// Load reads the config file named by --config or PCCONCEPT_CONFIG_FILE, then
// applies PCCONCEPT_* environment overrides. Without a file the defaults are used.
func Load(args []string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// unprefixed names from older .env files
	_ = v.BindEnv("session_secret", envPrefix+"_SESSION_SECRET", "SESSION_SECRET")
	_ = v.BindEnv("api.base_url", envPrefix+"_API_BASE_URL", "API_BASE_URL")

	path, err := configFilepath(args)
	if err != nil {
		return Config{}, err
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func configFilepath(args []string) (string, error) {
	flags := pflag.NewFlagSet("pcconcept", pflag.ContinueOnError)
	arg := flags.String("config", "", "config file (yaml)")
	if err := flags.Parse(args); err != nil {
		return "", fmt.Errorf("parse flags: %w", err)
	}
	if *arg != "" {
		return *arg, nil
	}
	return os.Getenv(configFileEnvName), nil
}

func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.API.BaseURL) == "" {
		errs = append(errs, errors.New("api.base_url is empty"))
	}
	if c.HTTPAddr == "" {
		errs = append(errs, errors.New("http_addr is empty"))
	}
	if c.SessionSecret == "" {
		errs = append(errs, errors.New("session_secret is empty"))
	}
	p := c.Pages
	for name, n := range map[string]int{
		"pages.home_products":       p.HomeProducts,
		"pages.home_blogs":          p.HomeBlogs,
		"pages.products_per_page":   p.ProductsPerPage,
		"pages.blogs_per_page":      p.BlogsPerPage,
		"pages.reviews_per_page":    p.ReviewsPerPage,
		"pages.product_group_limit": p.ProductGroupLimit,
		"pages.review_group_limit":  p.ReviewGroupLimit,
	} {
		if n <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", name, n))
		}
	}
	if p.OnSaleOffset < 0 || p.OnSaleCount < 0 {
		errs = append(errs, errors.New("pages.on_sale_offset and pages.on_sale_count must not be negative"))
	}
	if _, err := c.Grouping(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Grouping builds the category table used by every listing page.
func (c Config) Grouping() (*catalog.Grouping, error) {
	cats := make([]catalog.Category, len(c.Categories))
	for i, cc := range c.Categories {
		cats[i] = catalog.Category{
			Name:    cc.Name,
			Label:   cc.Label,
			Title:   cc.Title,
			GroupBy: catalog.GroupBy(cc.GroupBy),
		}
	}
	return catalog.NewGrouping(cats)
}

// LoadDotEnv loads each existing .env file in order, later files winning.
func LoadDotEnv(paths ...string) error {
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := godotenv.Overload(p); err != nil {
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}
