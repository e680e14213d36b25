package services

import (
	"context"
	"net/url"

	"pcconcept/internal/apiclient"
	"pcconcept/internal/models"
)

type ProductPage struct {
	Products []models.Product `json:"products"`
	Pagination
	SearchTerm string `json:"search_term,omitempty"`
}

type CardPage struct {
	Products []models.ProductCard `json:"products"`
	Pagination
}

// Products wraps the /products resource.
type Products struct {
	api *apiclient.Client
}

func NewProducts(api *apiclient.Client) *Products {
	return &Products{api: api}
}

// List returns full product records; p.CardMode is honoured but the caller
// gets []Product either way.
func (s *Products) List(ctx context.Context, p ListParams) (*ProductPage, error) {
	var out ProductPage
	if err := s.api.Get(ctx, "/products/", p.values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Cards returns the card projection (id, name, price, image).
func (s *Products) Cards(ctx context.Context, page, perPage int) (*CardPage, error) {
	p := ListParams{Page: page, PerPage: perPage, CardMode: true}
	var out CardPage
	if err := s.api.Get(ctx, "/products/", p.values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Products) Get(ctx context.Context, id string) (*models.Product, error) {
	var out models.Product
	if err := s.api.Get(ctx, "/products/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Products) ByCategory(ctx context.Context, category string, p ListParams) (*ProductPage, error) {
	var out ProductPage
	if err := s.api.Get(ctx, "/products/category/"+url.PathEscape(category), p.values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Products) LaptopsByBrand(ctx context.Context, brand string, p ListParams) (*ProductPage, error) {
	var out ProductPage
	if err := s.api.Get(ctx, "/products/category/Laptops/brand/"+url.PathEscape(brand), p.values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Products) BySubcategory(ctx context.Context, category, subcategory string, p ListParams) (*ProductPage, error) {
	path := "/products/category/" + url.PathEscape(category) + "/subcategory/" + url.PathEscape(subcategory)
	var out ProductPage
	if err := s.api.Get(ctx, path, p.values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Products) Search(ctx context.Context, term string, p ListParams) (*ProductPage, error) {
	q := p.values()
	q.Set("q", term)
	var out ProductPage
	if err := s.api.Get(ctx, "/products/search", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
