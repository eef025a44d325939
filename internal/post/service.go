// Package post は投稿管理のビジネスロジックを提供する。
//
// すべての読み取り・更新・削除は認証済みユーザーのIDでスコープされ、
// 他ユーザーの投稿と存在しない投稿はどちらもPOST_NOT_FOUNDになる
// （他ユーザーの投稿の存在を秘匿するため、403は存在しない）。
package post

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/hitoshi/blogman/internal/model"
	"github.com/hitoshi/blogman/internal/repository"
	"github.com/hitoshi/blogman/internal/security"
)

// Service は投稿に関するビジネスロジックを提供する。
type Service struct {
	postRepo     repository.PostRepository
	categoryRepo repository.CategoryRepository
	sanitizer    security.ContentSanitizerService
}

// NewService はServiceを生成する。
func NewService(
	postRepo repository.PostRepository,
	categoryRepo repository.CategoryRepository,
	sanitizer security.ContentSanitizerService,
) *Service {
	return &Service{
		postRepo:     postRepo,
		categoryRepo: categoryRepo,
		sanitizer:    sanitizer,
	}
}

// Create は新しい投稿を作成する。
// タイトルと本文は空白のみを許さない。categoryIDが指定されている場合は
// 行を書き込む前にカテゴリの存在を確認し、不在ならCATEGORY_NOT_FOUNDを返す。
// 著者は認証済みユーザーに固定され、本文は保存前にサニタイズされる。
func (s *Service) Create(ctx context.Context, authorID int64, title, content string, categoryID *int64) (*model.Post, error) {
	if err := validatePostFields(title, content); err != nil {
		return nil, err
	}

	if err := s.checkCategoryExists(ctx, categoryID); err != nil {
		return nil, err
	}

	post := &model.Post{
		Title:      title,
		Content:    s.sanitizer.Sanitize(content),
		AuthorID:   authorID,
		CategoryID: categoryID,
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	slog.Info("post created",
		slog.Int64("post_id", post.ID),
		slog.Int64("author_id", authorID),
	)

	return post, nil
}

// List は認証済みユーザー自身の投稿一覧を返す。
// categoryIDが非nilの場合はカテゴリで絞り込む。
func (s *Service) List(ctx context.Context, authorID int64, categoryID *int64) ([]*model.Post, error) {
	return s.postRepo.ListByAuthor(ctx, authorID, categoryID)
}

// Get は認証済みユーザー自身の投稿を1件取得する。
// 不在・他ユーザー所有のいずれもPOST_NOT_FOUNDになる。
func (s *Service) Get(ctx context.Context, authorID, postID int64) (*model.Post, error) {
	post, err := s.postRepo.FindByIDAndAuthor(ctx, postID, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to find post: %w", err)
	}
	if post == nil {
		return nil, model.NewPostNotFoundError(postID)
	}

	return post, nil
}

// Update は認証済みユーザー自身の投稿を更新する。
// 所有チェックはGetと同じ秘匿規則に従う。カテゴリ変更時は存在を再確認する。
// 著者は変更されない。
func (s *Service) Update(ctx context.Context, authorID, postID int64, title, content string, categoryID *int64) (*model.Post, error) {
	post, err := s.postRepo.FindByIDAndAuthor(ctx, postID, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to find post: %w", err)
	}
	if post == nil {
		return nil, model.NewPostNotFoundError(postID)
	}

	if err := validatePostFields(title, content); err != nil {
		return nil, err
	}

	if err := s.checkCategoryExists(ctx, categoryID); err != nil {
		return nil, err
	}

	post.Title = title
	post.Content = s.sanitizer.Sanitize(content)
	post.CategoryID = categoryID

	updated, err := s.postRepo.Update(ctx, post)
	if err != nil {
		return nil, err
	}
	if !updated {
		// 取得後に削除された場合
		return nil, model.NewPostNotFoundError(postID)
	}

	slog.Info("post updated",
		slog.Int64("post_id", post.ID),
		slog.Int64("author_id", authorID),
	)

	return post, nil
}

// Delete は認証済みユーザー自身の投稿を削除する。
// 不在・他ユーザー所有のいずれもPOST_NOT_FOUNDになる。
func (s *Service) Delete(ctx context.Context, authorID, postID int64) error {
	deleted, err := s.postRepo.DeleteByIDAndAuthor(ctx, postID, authorID)
	if err != nil {
		return err
	}
	if !deleted {
		return model.NewPostNotFoundError(postID)
	}

	slog.Info("post deleted",
		slog.Int64("post_id", postID),
		slog.Int64("author_id", authorID),
	)

	return nil
}

// checkCategoryExists はcategoryIDが非nilの場合にカテゴリの存在を確認する。
// 不在の場合はAPIError(CATEGORY_NOT_FOUND)を返す。
func (s *Service) checkCategoryExists(ctx context.Context, categoryID *int64) error {
	if categoryID == nil {
		return nil
	}

	category, err := s.categoryRepo.FindByID(ctx, *categoryID)
	if err != nil {
		return fmt.Errorf("failed to find category: %w", err)
	}
	if category == nil {
		return model.NewCategoryNotFoundError(*categoryID)
	}

	return nil
}

// validatePostFields はタイトルと本文が空白のみでないことを検証する。
func validatePostFields(title, content string) error {
	if strings.TrimSpace(title) == "" {
		return model.NewEmptyFieldError("title")
	}
	if strings.TrimSpace(content) == "" {
		return model.NewEmptyFieldError("content")
	}
	return nil
}
