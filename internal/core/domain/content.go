package domain

import "time"

// Category groups posts; identified by slug in the CMS API.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	Thumbnail   string `json:"thumbnail,omitempty"`
}

// Tag is a free-form label attached to posts.
type Tag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Post is a blog entry; identified by slug in the CMS API.
type Post struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Content     string     `json:"content"`
	Excerpt     string     `json:"excerpt,omitempty"`
	Author      User       `json:"author"`
	Categories  []Category `json:"categories"`
	Tags        []Tag      `json:"tags"`
	IsPublished bool       `json:"isPublished"`
	Thumbnail   string     `json:"thumbnail,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// Page is a standalone CMS page (about, contact, …).
type Page struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Content     string    `json:"content"`
	IsPublished bool      `json:"isPublished"`
	Thumbnail   string    `json:"thumbnail,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Comment is a reader comment awaiting or past moderation.
type Comment struct {
	ID         string    `json:"id"`
	Content    string    `json:"content"`
	PostID     string    `json:"post"`
	Author     User      `json:"author"`
	IsApproved bool      `json:"isApproved"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Banner is a promotional image shown on the public site.
type Banner struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	ImageURL string `json:"imageUrl"`
	Link     string `json:"link,omitempty"`
	IsActive bool   `json:"isActive"`
}

// PostPage is one page of the paginated post listing.
type PostPage struct {
	Data        []Post `json:"data"`
	TotalPages  int    `json:"totalPages"`
	CurrentPage int    `json:"currentPage"`
	TotalItems  int    `json:"totalItems"`
}

// --- Inputs for create/update operations, forwarded verbatim upstream ---

type PostInput struct {
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	Excerpt     string   `json:"excerpt,omitempty"`
	Categories  []string `json:"categories"`
	Tags        []string `json:"tags"`
	IsPublished bool     `json:"isPublished"`
	Thumbnail   string   `json:"thumbnail,omitempty"`
}

type CategoryInput struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	Thumbnail   string `json:"thumbnail,omitempty"`
}

type TagInput struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type BannerInput struct {
	Title    string `json:"title"`
	ImageURL string `json:"imageUrl"`
	Link     string `json:"link,omitempty"`
	IsActive bool   `json:"isActive"`
}

type PageInput struct {
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Content     string `json:"content"`
	IsPublished bool   `json:"isPublished"`
	Thumbnail   string `json:"thumbnail,omitempty"`
}
