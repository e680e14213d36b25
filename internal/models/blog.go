package models

// Blog is an article with three text sections.
type Blog struct {
	ID            int    `json:"blog_id"`
	Title         string `json:"title"`
	Introduction  string `json:"introduction"`
	Body          string `json:"body"`
	Conclusion    string `json:"conclusion"`
	ImageURL      string `json:"image_url"`
	Author        string `json:"author"`
	DatePublished string `json:"date_published"`
}
