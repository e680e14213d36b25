package models

// Review is a customer review of one product. ProductName is filled only when
// the list was requested with include_product_name=true.
type Review struct {
	ID          int    `json:"review_id"`
	ProductID   ID     `json:"product_id"`
	ProductName string `json:"product_name,omitempty"`
	UserAlias   string `json:"user_alias"`
	Text        string `json:"review_text"`
	Rating      int    `json:"rating,omitempty"`
	Category    string `json:"category"`
	Brand       string `json:"brand"`
	Subcategory string `json:"subcategory"`
	DatePosted  string `json:"date_posted"`
}
