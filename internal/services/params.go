package services

import (
	"net/url"
	"strconv"
)

// Pagination is the envelope metadata the backend attaches to list answers.
type Pagination struct {
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
	Total   int `json:"total"`
	Pages   int `json:"pages"`
}

// ListParams are passed through to the backend, which does the real paging.
// Zero values are omitted so the backend defaults apply.
type ListParams struct {
	Page     int
	PerPage  int
	CardMode bool
}

func (p ListParams) values() url.Values {
	v := pageValues(p.Page, p.PerPage)
	v.Set("card_mode", strconv.FormatBool(p.CardMode))
	return v
}

func pageValues(page, perPage int) url.Values {
	v := url.Values{}
	if page > 0 {
		v.Set("page", strconv.Itoa(page))
	}
	if perPage > 0 {
		v.Set("per_page", strconv.Itoa(perPage))
	}
	return v
}

// Ack is the plain {"message": ...} answer of update and delete endpoints.
type Ack struct {
	Message string `json:"message"`
}
