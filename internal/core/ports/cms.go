package ports

import (
	"context"

	"github.com/pressdeck/admin-gateway/internal/core/domain"
)

// LoginResult is the upstream login response. The CMS returns flat
// profile fields next to the token; the email is not echoed back and is
// taken from the login input instead.
type LoginResult struct {
	Token    string `json:"token"`
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// AuthAPI is the single unauthenticated upstream operation.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}

// CredentialConfigurer is the session service's handle on the upstream
// client's default Authorization header.
type CredentialConfigurer interface {
	SetCredential(sid, token string)
	ClearCredential(sid string)
}

// UsersAPI wraps the upstream user management endpoints.
type UsersAPI interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	UpdateUserRole(ctx context.Context, id, role string) (*domain.User, error)
	DeleteUser(ctx context.Context, id string) error
}

// PostsAPI wraps the upstream post endpoints. Listing is paginated.
type PostsAPI interface {
	ListPosts(ctx context.Context, page, limit int) (*domain.PostPage, error)
	GetPost(ctx context.Context, slug string) (*domain.Post, error)
	CreatePost(ctx context.Context, in domain.PostInput) (*domain.Post, error)
	UpdatePost(ctx context.Context, slug string, in domain.PostInput) (*domain.Post, error)
	DeletePost(ctx context.Context, slug string) error
}

// CategoriesAPI wraps the upstream category endpoints, keyed by slug.
type CategoriesAPI interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	CreateCategory(ctx context.Context, in domain.CategoryInput) (*domain.Category, error)
	UpdateCategory(ctx context.Context, slug string, in domain.CategoryInput) (*domain.Category, error)
	DeleteCategory(ctx context.Context, slug string) error
}

// TagsAPI wraps the upstream tag endpoints, keyed by slug.
type TagsAPI interface {
	ListTags(ctx context.Context) ([]domain.Tag, error)
	CreateTag(ctx context.Context, in domain.TagInput) (*domain.Tag, error)
	UpdateTag(ctx context.Context, slug string, in domain.TagInput) (*domain.Tag, error)
	DeleteTag(ctx context.Context, slug string) error
}

// CommentsAPI wraps the upstream moderation endpoints.
type CommentsAPI interface {
	// ListComments filters by post when postID is non-empty.
	ListComments(ctx context.Context, postID string) ([]domain.Comment, error)
	ApproveComment(ctx context.Context, id string) (*domain.Comment, error)
	DeleteComment(ctx context.Context, id string) error
}

// BannersAPI wraps the upstream banner endpoints, keyed by id.
type BannersAPI interface {
	ListBanners(ctx context.Context) ([]domain.Banner, error)
	CreateBanner(ctx context.Context, in domain.BannerInput) (*domain.Banner, error)
	UpdateBanner(ctx context.Context, id string, in domain.BannerInput) (*domain.Banner, error)
	DeleteBanner(ctx context.Context, id string) error
}

// PagesAPI wraps the upstream page endpoints, keyed by slug.
type PagesAPI interface {
	ListPages(ctx context.Context) ([]domain.Page, error)
	GetPage(ctx context.Context, slug string) (*domain.Page, error)
	CreatePage(ctx context.Context, in domain.PageInput) (*domain.Page, error)
	UpdatePage(ctx context.Context, slug string, in domain.PageInput) (*domain.Page, error)
	DeletePage(ctx context.Context, slug string) error
}
