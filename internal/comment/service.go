// Package comment はコメント管理のビジネスロジックを提供する。
package comment

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/hitoshi/blogman/internal/model"
	"github.com/hitoshi/blogman/internal/repository"
	"github.com/hitoshi/blogman/internal/security"
)

// Service はコメントに関するビジネスロジックを提供する。
//
// 投稿と異なり、コメントの所有チェックは作成時のみ。
// 作成は認証済みユーザーなら誰でも（投稿の所有者でなくても）可能で、
// 一覧は未認証でも取得できる。この非対称は観測可能な仕様として維持する。
type Service struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	sanitizer   security.ContentSanitizerService
}

// NewService はServiceを生成する。
func NewService(
	commentRepo repository.CommentRepository,
	postRepo repository.PostRepository,
	sanitizer security.ContentSanitizerService,
) *Service {
	return &Service{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		sanitizer:   sanitizer,
	}
}

// Create は指定投稿にコメントを作成する。
// 投稿は著者を問わず存在すればよい（所有チェックなし）。
// 不在の場合はAPIError(POST_NOT_FOUND)を返す。
// 著者は認証済みユーザーに固定され、本文は保存前にサニタイズされる。
func (s *Service) Create(ctx context.Context, authorID, postID int64, content string) (*model.Comment, error) {
	post, err := s.postRepo.FindByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to find post: %w", err)
	}
	if post == nil {
		return nil, model.NewPostNotFoundError(postID)
	}

	if strings.TrimSpace(content) == "" {
		return nil, model.NewEmptyFieldError("content")
	}

	comment := &model.Comment{
		Content:  s.sanitizer.Sanitize(content),
		PostID:   postID,
		AuthorID: authorID,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	slog.Info("comment created",
		slog.Int64("comment_id", comment.ID),
		slog.Int64("post_id", postID),
		slog.Int64("author_id", authorID),
	)

	return comment, nil
}

// ListByPost は指定投稿の全コメントを返す。認証は不要。
// 投稿が不在の場合はAPIError(POST_NOT_FOUND)を返す。
func (s *Service) ListByPost(ctx context.Context, postID int64) ([]*model.Comment, error) {
	post, err := s.postRepo.FindByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to find post: %w", err)
	}
	if post == nil {
		return nil, model.NewPostNotFoundError(postID)
	}

	return s.commentRepo.ListByPostID(ctx, postID)
}
