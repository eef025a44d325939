// Package category はカテゴリ管理のビジネスロジックを提供する。
package category

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/hitoshi/blogman/internal/model"
	"github.com/hitoshi/blogman/internal/repository"
)

// Service はカテゴリに関するビジネスロジックを提供する。
// カテゴリはシステム全体で共有され、所有者の概念を持たない。
type Service struct {
	categoryRepo repository.CategoryRepository
}

// NewService はServiceを生成する。
func NewService(categoryRepo repository.CategoryRepository) *Service {
	return &Service{
		categoryRepo: categoryRepo,
	}
}

// Create は新しいカテゴリを作成する。
// 名前は空白のみを許さず、既存の名前との重複はAPIError(DUPLICATE_CATEGORY)になる。
// 先勝ちで、同名の再作成は常に拒否される。
func (s *Service) Create(ctx context.Context, name string) (*model.Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, model.NewEmptyFieldError("name")
	}

	// 事前チェック。同時作成の競合はリポジトリの一意制約検出が拾う。
	existing, err := s.categoryRepo.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to check category name: %w", err)
	}
	if existing != nil {
		return nil, model.NewDuplicateCategoryError(name)
	}

	category := &model.Category{
		Name:      name,
		CreatedAt: time.Now(),
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	slog.Info("category created",
		slog.Int64("category_id", category.ID),
		slog.String("name", category.Name),
	)

	return category, nil
}

// List は全カテゴリを返す。認証は不要。
func (s *Service) List(ctx context.Context) ([]*model.Category, error) {
	return s.categoryRepo.List(ctx)
}
