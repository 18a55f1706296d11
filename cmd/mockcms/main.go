// Package main is a development stand-in for the remote CMS API. It
// serves the same endpoints the gateway forwards to, backed by in-memory
// state, so the gateway can be exercised without a real CMS deployment.
//
// Seeded accounts: admin@example.com / admin123 (admin role) and
// editor@example.com / editor123 (user role).
package main

import (
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/crypto/bcrypt"

	"github.com/pressdeck/admin-gateway/internal/core/domain"
	"github.com/pressdeck/admin-gateway/pkg/logger"
)

var signingKey = []byte("mockcms-dev-secret")

type account struct {
	user         domain.User
	passwordHash []byte
}

// state holds all mock content behind one lock. Contention is irrelevant
// at dev scale.
type state struct {
	mu         sync.Mutex
	accounts   map[string]*account // keyed by email
	posts      map[string]*domain.Post
	pages      map[string]*domain.Page
	categories map[string]*domain.Category
	tags       map[string]*domain.Tag
	comments   map[string]*domain.Comment
	banners    map[string]*domain.Banner
}

func newState() *state {
	s := &state{
		accounts:   make(map[string]*account),
		posts:      make(map[string]*domain.Post),
		pages:      make(map[string]*domain.Page),
		categories: make(map[string]*domain.Category),
		tags:       make(map[string]*domain.Tag),
		comments:   make(map[string]*domain.Comment),
		banners:    make(map[string]*domain.Banner),
	}
	s.seedAccount("admin@example.com", "admin123", "admin", domain.RoleAdmin)
	s.seedAccount("editor@example.com", "editor123", "editor", domain.RoleUser)
	return s
}

func (s *state) seedAccount(email, password, username, role string) {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	s.accounts[email] = &account{
		user: domain.User{
			ID:       uuid.NewString(),
			Username: username,
			Email:    email,
			Role:     role,
		},
		passwordHash: hash,
	}
}

func main() {
	log := logger.Init(logger.Options{Level: "debug", Pretty: true})

	port := os.Getenv("MOCKCMS_PORT")
	if port == "" {
		port = "3000"
	}

	s := newState()

	e := echo.New()
	e.HideBanner = true
	e.Use(echomiddleware.Recover())

	apiGroup := e.Group("/api")
	apiGroup.POST("/auth/login", s.login)

	// Everything else requires a bearer token issued by login.
	authed := apiGroup.Group("", requireBearer)

	authed.GET("/users", s.listUsers)
	authed.GET("/users/:id", s.getUser)
	authed.PUT("/users/:id/role", s.updateUserRole)
	authed.DELETE("/users/:id", s.deleteUser)

	authed.GET("/posts", s.listPosts)
	authed.POST("/posts", s.createPost)
	authed.GET("/posts/:slug", s.getPost)
	authed.PUT("/posts/:slug", s.updatePost)
	authed.DELETE("/posts/:slug", s.deletePost)

	authed.GET("/pages", s.listPages)
	authed.POST("/pages", s.createPage)
	authed.GET("/pages/:slug", s.getPage)
	authed.PUT("/pages/:slug", s.updatePage)
	authed.DELETE("/pages/:slug", s.deletePage)

	authed.GET("/categories", s.listCategories)
	authed.POST("/categories", s.createCategory)
	authed.PUT("/categories/:slug", s.updateCategory)
	authed.DELETE("/categories/:slug", s.deleteCategory)

	authed.GET("/tags", s.listTags)
	authed.POST("/tags", s.createTag)
	authed.PUT("/tags/:slug", s.updateTag)
	authed.DELETE("/tags/:slug", s.deleteTag)

	authed.GET("/comments", s.listComments)
	authed.PATCH("/comments/:id/approve", s.approveComment)
	authed.DELETE("/comments/:id", s.deleteComment)

	authed.GET("/banners", s.listBanners)
	authed.POST("/banners", s.createBanner)
	authed.PUT("/banners/:id", s.updateBanner)
	authed.DELETE("/banners/:id", s.deleteBanner)

	log.Info().Str("port", port).Msg("mock CMS listening")
	if err := e.Start(":" + port); err != nil {
		log.Info().Err(err).Msg("mock CMS stopped")
	}
}

// --- Auth ---

func (s *state) login(c echo.Context) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid payload"})
	}

	s.mu.Lock()
	acct, ok := s.accounts[req.Email]
	s.mu.Unlock()
	if !ok || bcrypt.CompareHashAndPassword(acct.passwordHash, []byte(req.Password)) != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	claims := jwt.MapClaims{
		"sub":  acct.user.ID,
		"role": acct.user.Role,
		"exp":  time.Now().Add(7 * 24 * time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(signingKey)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not sign token"})
	}

	// Flat response shape: profile fields next to the token, no email.
	return c.JSON(http.StatusOK, echo.Map{
		"token":    token,
		"userId":   acct.user.ID,
		"username": acct.user.Username,
		"role":     acct.user.Role,
	})
}

func requireBearer(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		raw := strings.TrimPrefix(c.Request().Header.Get("Authorization"), "Bearer ")
		if raw == "" || raw == c.Request().Header.Get("Authorization") {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
		}

		tkn, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
			if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
				return nil, jwt.ErrTokenSignatureInvalid
			}
			return signingKey, nil
		})
		if err != nil || !tkn.Valid {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
		}
		return next(c)
	}
}

// --- Users ---

func (s *state) listUsers(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	users := make([]domain.User, 0, len(s.accounts))
	for _, a := range s.accounts {
		users = append(users, a.user)
	}
	return c.JSON(http.StatusOK, users)
}

func (s *state) getUser(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.accounts {
		if a.user.ID == c.Param("id") {
			return c.JSON(http.StatusOK, a.user)
		}
	}
	return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
}

func (s *state) updateUserRole(c echo.Context) error {
	var req struct {
		Role string `json:"role"`
	}
	if err := c.Bind(&req); err != nil || !domain.ValidRole(req.Role) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid role"})
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.accounts {
		if a.user.ID == c.Param("id") {
			a.user.Role = req.Role
			return c.JSON(http.StatusOK, a.user)
		}
	}
	return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
}

func (s *state) deleteUser(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for email, a := range s.accounts {
		if a.user.ID == c.Param("id") {
			delete(s.accounts, email)
			return c.NoContent(http.StatusNoContent)
		}
	}
	return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
}

// --- Posts ---

func (s *state) listPosts(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	all := make([]domain.Post, 0, len(s.posts))
	for _, p := range s.posts {
		all = append(all, *p)
	}

	total := len(all)
	totalPages := (total + limit - 1) / limit
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return c.JSON(http.StatusOK, domain.PostPage{
		Data:        all[start:end],
		TotalPages:  totalPages,
		CurrentPage: page,
		TotalItems:  total,
	})
}

func (s *state) createPost(c echo.Context) error {
	var in domain.PostInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid payload"})
	}

	now := time.Now()
	post := &domain.Post{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Slug:        slugify(in.Title),
		Content:     in.Content,
		Excerpt:     in.Excerpt,
		IsPublished: in.IsPublished,
		Thumbnail:   in.Thumbnail,
		Categories:  []domain.Category{},
		Tags:        []domain.Tag{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	s.mu.Lock()
	s.posts[post.Slug] = post
	s.mu.Unlock()
	return c.JSON(http.StatusCreated, post)
}

func (s *state) getPost(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	post, ok := s.posts[c.Param("slug")]
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "post not found"})
	}
	return c.JSON(http.StatusOK, post)
}

func (s *state) updatePost(c echo.Context) error {
	var in domain.PostInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid payload"})
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	post, ok := s.posts[c.Param("slug")]
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "post not found"})
	}
	post.Title = in.Title
	post.Content = in.Content
	post.Excerpt = in.Excerpt
	post.IsPublished = in.IsPublished
	post.Thumbnail = in.Thumbnail
	post.UpdatedAt = time.Now()
	return c.JSON(http.StatusOK, post)
}

func (s *state) deletePost(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.posts[c.Param("slug")]; !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "post not found"})
	}
	delete(s.posts, c.Param("slug"))
	return c.NoContent(http.StatusNoContent)
}

// --- Pages ---

func (s *state) listPages(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	pages := make([]domain.Page, 0, len(s.pages))
	for _, p := range s.pages {
		pages = append(pages, *p)
	}
	return c.JSON(http.StatusOK, pages)
}

func (s *state) createPage(c echo.Context) error {
	var in domain.PageInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid payload"})
	}

	now := time.Now()
	page := &domain.Page{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Slug:        in.Slug,
		Content:     in.Content,
		IsPublished: in.IsPublished,
		Thumbnail:   in.Thumbnail,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	s.mu.Lock()
	s.pages[page.Slug] = page
	s.mu.Unlock()
	return c.JSON(http.StatusCreated, page)
}

func (s *state) getPage(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	page, ok := s.pages[c.Param("slug")]
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "page not found"})
	}
	return c.JSON(http.StatusOK, page)
}

func (s *state) updatePage(c echo.Context) error {
	var in domain.PageInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid payload"})
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	page, ok := s.pages[c.Param("slug")]
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "page not found"})
	}
	page.Title = in.Title
	page.Content = in.Content
	page.IsPublished = in.IsPublished
	page.Thumbnail = in.Thumbnail
	page.UpdatedAt = time.Now()
	return c.JSON(http.StatusOK, page)
}

func (s *state) deletePage(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.pages[c.Param("slug")]; !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "page not found"})
	}
	delete(s.pages, c.Param("slug"))
	return c.NoContent(http.StatusNoContent)
}

// --- Categories ---

func (s *state) listCategories(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	categories := make([]domain.Category, 0, len(s.categories))
	for _, cat := range s.categories {
		categories = append(categories, *cat)
	}
	return c.JSON(http.StatusOK, categories)
}

func (s *state) createCategory(c echo.Context) error {
	var in domain.CategoryInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid payload"})
	}

	category := &domain.Category{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Slug:        in.Slug,
		Description: in.Description,
		Thumbnail:   in.Thumbnail,
	}

	s.mu.Lock()
	s.categories[category.Slug] = category
	s.mu.Unlock()
	return c.JSON(http.StatusCreated, category)
}

func (s *state) updateCategory(c echo.Context) error {
	var in domain.CategoryInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid payload"})
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	category, ok := s.categories[c.Param("slug")]
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "category not found"})
	}
	category.Name = in.Name
	category.Description = in.Description
	category.Thumbnail = in.Thumbnail
	return c.JSON(http.StatusOK, category)
}

func (s *state) deleteCategory(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.categories[c.Param("slug")]; !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "category not found"})
	}
	delete(s.categories, c.Param("slug"))
	return c.NoContent(http.StatusNoContent)
}

// --- Tags ---

func (s *state) listTags(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	tags := make([]domain.Tag, 0, len(s.tags))
	for _, t := range s.tags {
		tags = append(tags, *t)
	}
	return c.JSON(http.StatusOK, tags)
}

func (s *state) createTag(c echo.Context) error {
	var in domain.TagInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid payload"})
	}

	tag := &domain.Tag{ID: uuid.NewString(), Name: in.Name, Slug: in.Slug}

	s.mu.Lock()
	s.tags[tag.Slug] = tag
	s.mu.Unlock()
	return c.JSON(http.StatusCreated, tag)
}

func (s *state) updateTag(c echo.Context) error {
	var in domain.TagInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid payload"})
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	tag, ok := s.tags[c.Param("slug")]
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "tag not found"})
	}
	tag.Name = in.Name
	return c.JSON(http.StatusOK, tag)
}

func (s *state) deleteTag(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tags[c.Param("slug")]; !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "tag not found"})
	}
	delete(s.tags, c.Param("slug"))
	return c.NoContent(http.StatusNoContent)
}

// --- Comments ---

func (s *state) listComments(c echo.Context) error {
	postID := c.QueryParam("postId")

	s.mu.Lock()
	defer s.mu.Unlock()
	comments := make([]domain.Comment, 0, len(s.comments))
	for _, cm := range s.comments {
		if postID != "" && cm.PostID != postID {
			continue
		}
		comments = append(comments, *cm)
	}
	return c.JSON(http.StatusOK, comments)
}

func (s *state) approveComment(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	comment, ok := s.comments[c.Param("id")]
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "comment not found"})
	}
	comment.IsApproved = true
	comment.UpdatedAt = time.Now()
	return c.JSON(http.StatusOK, comment)
}

func (s *state) deleteComment(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.comments[c.Param("id")]; !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "comment not found"})
	}
	delete(s.comments, c.Param("id"))
	return c.NoContent(http.StatusNoContent)
}

// --- Banners ---

func (s *state) listBanners(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	banners := make([]domain.Banner, 0, len(s.banners))
	for _, b := range s.banners {
		banners = append(banners, *b)
	}
	return c.JSON(http.StatusOK, banners)
}

func (s *state) createBanner(c echo.Context) error {
	var in domain.BannerInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid payload"})
	}

	banner := &domain.Banner{
		ID:       uuid.NewString(),
		Title:    in.Title,
		ImageURL: in.ImageURL,
		Link:     in.Link,
		IsActive: in.IsActive,
	}

	s.mu.Lock()
	s.banners[banner.ID] = banner
	s.mu.Unlock()
	return c.JSON(http.StatusCreated, banner)
}

func (s *state) updateBanner(c echo.Context) error {
	var in domain.BannerInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid payload"})
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	banner, ok := s.banners[c.Param("id")]
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "banner not found"})
	}
	banner.Title = in.Title
	banner.ImageURL = in.ImageURL
	banner.Link = in.Link
	banner.IsActive = in.IsActive
	return c.JSON(http.StatusOK, banner)
}

func (s *state) deleteBanner(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.banners[c.Param("id")]; !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "banner not found"})
	}
	delete(s.banners, c.Param("id"))
	return c.NoContent(http.StatusNoContent)
}

func slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r == ' ' || r == '-' || r == '_':
			return '-'
		default:
			return -1
		}
	}, slug)
	return strings.Trim(slug, "-")
}
