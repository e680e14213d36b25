package services

import (
	"context"
	"net/url"
	"strconv"

	"pcconcept/internal/apiclient"
	"pcconcept/internal/models"
)

type BlogPage struct {
	Blogs []models.Blog `json:"blogs"`
	Pagination
}

// BlogInput is the body of the admin create and update calls. Empty fields are
// left out, which makes the same type usable as a partial update.
type BlogInput struct {
	Title         string `json:"title,omitempty"`
	Introduction  string `json:"introduction,omitempty"`
	Body          string `json:"body,omitempty"`
	Conclusion    string `json:"conclusion,omitempty"`
	ImageURL      string `json:"image_url,omitempty"`
	Author        string `json:"author,omitempty"`
	DatePublished string `json:"date_published,omitempty"`
}

type BlogCreated struct {
	Message string `json:"message"`
	ID      int    `json:"blog_id"`
}

// Blogs wraps the /blogs resource.
type Blogs struct {
	api *apiclient.Client
}

func NewBlogs(api *apiclient.Client) *Blogs {
	return &Blogs{api: api}
}

func (s *Blogs) List(ctx context.Context, page, perPage int) (*BlogPage, error) {
	var out BlogPage
	if err := s.api.Get(ctx, "/blogs/", pageValues(page, perPage), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Blogs) Get(ctx context.Context, id int) (*models.Blog, error) {
	var out models.Blog
	if err := s.api.Get(ctx, blogPath(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Latest returns the newest blogs, newest first.
func (s *Blogs) Latest(ctx context.Context, limit int) ([]models.Blog, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	var out []models.Blog
	if err := s.api.Get(ctx, "/blogs/latest", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Blogs) Create(ctx context.Context, in BlogInput) (*BlogCreated, error) {
	var out BlogCreated
	if err := s.api.Post(ctx, "/blogs/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Blogs) Update(ctx context.Context, id int, in BlogInput) (*Ack, error) {
	var out Ack
	if err := s.api.Put(ctx, blogPath(id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Blogs) Delete(ctx context.Context, id int) (*Ack, error) {
	var out Ack
	if err := s.api.Delete(ctx, blogPath(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func blogPath(id int) string {
	return "/blogs/" + strconv.Itoa(id)
}
