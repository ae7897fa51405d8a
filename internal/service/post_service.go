package service

import (
	"context"
	"strings"

	"glowup/internal/models"
	"glowup/internal/repository"
)

type PostService struct {
	postRepo repository.PostRepository
	isAdmin  func(ctx context.Context, userID uint) (bool, error)
}

type CreatePostInput struct {
	UserID   uint
	Content  string
	ImageURL string
	PostType string
}

type ListPostsInput struct {
	Limit         int
	Offset        int
	CurrentUserID uint
}

func NewPostService(
	postRepo repository.PostRepository,
	isAdmin func(ctx context.Context, userID uint) (bool, error),
) *PostService {
	return &PostService{postRepo: postRepo, isAdmin: isAdmin}
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	postType := in.PostType
	if postType == "" {
		postType = models.PostTypeText
	}
	if !models.ValidPostType(postType) {
		return nil, models.NewValidationError("Invalid post_type")
	}

	const maxContentLen = 5000
	content := strings.TrimSpace(in.Content)
	if content == "" && in.ImageURL == "" {
		return nil, models.NewValidationError("Post content is required")
	}
	if len(content) > maxContentLen {
		return nil, models.NewValidationError("Content too long (max 5000 characters)")
	}
	if postType != models.PostTypeText && in.ImageURL == "" {
		return nil, models.NewValidationError("Media posts require an uploaded media URL")
	}

	post := &models.Post{
		UserID:   in.UserID,
		Content:  content,
		ImageURL: in.ImageURL,
		PostType: postType,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, post.ID, in.UserID)
}

func (s *PostService) GetPost(ctx context.Context, id, currentUserID uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id, currentUserID)
}

func (s *PostService) ListPosts(ctx context.Context, in ListPostsInput) ([]*models.Post, error) {
	return s.postRepo.List(ctx, in.Limit, in.Offset, in.CurrentUserID)
}

func (s *PostService) ListPostsByUser(ctx context.Context, userID uint, in ListPostsInput) ([]*models.Post, error) {
	return s.postRepo.GetByUserID(ctx, userID, in.Limit, in.Offset, in.CurrentUserID)
}

// Feed returns recent posts from followed users plus the user's own.
func (s *PostService) Feed(ctx context.Context, userID uint, limit, offset int) ([]*models.Post, error) {
	return s.postRepo.Feed(ctx, userID, limit, offset)
}

// DeletePost removes a post. Only the author or an admin may delete.
func (s *PostService) DeletePost(ctx context.Context, userID, postID uint) error {
	post, err := s.postRepo.GetByID(ctx, postID, 0)
	if err != nil {
		return err
	}
	if post.UserID != userID {
		admin := false
		if s.isAdmin != nil {
			admin, err = s.isAdmin(ctx, userID)
			if err != nil {
				return err
			}
		}
		if !admin {
			return models.NewForbiddenError("You can only delete your own posts")
		}
	}
	return s.postRepo.Delete(ctx, postID)
}

// LikePost records a like and returns the fresh like count. Liking twice
// is a no-op.
func (s *PostService) LikePost(ctx context.Context, userID, postID uint) (int64, error) {
	if _, err := s.postRepo.GetByID(ctx, postID, 0); err != nil {
		return 0, err
	}
	if err := s.postRepo.Like(ctx, userID, postID); err != nil {
		return 0, err
	}
	return s.postRepo.LikesCount(ctx, postID)
}

// UnlikePost removes a like and returns the fresh like count.
func (s *PostService) UnlikePost(ctx context.Context, userID, postID uint) (int64, error) {
	if _, err := s.postRepo.GetByID(ctx, postID, 0); err != nil {
		return 0, err
	}
	if err := s.postRepo.Unlike(ctx, userID, postID); err != nil {
		return 0, err
	}
	return s.postRepo.LikesCount(ctx, postID)
}
