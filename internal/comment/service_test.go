package comment

import (
	"context"
	"errors"
	"testing"

	"github.com/hitoshi/blogman/internal/model"
)

// --- モック定義 ---

// mockCommentRepo はrepository.CommentRepositoryのモック実装。
type mockCommentRepo struct {
	createFn       func(ctx context.Context, comment *model.Comment) error
	listByPostIDFn func(ctx context.Context, postID int64) ([]*model.Comment, error)
}

func (m *mockCommentRepo) Create(ctx context.Context, comment *model.Comment) error {
	if m.createFn != nil {
		return m.createFn(ctx, comment)
	}
	comment.ID = 1
	return nil
}

func (m *mockCommentRepo) ListByPostID(ctx context.Context, postID int64) ([]*model.Comment, error) {
	if m.listByPostIDFn != nil {
		return m.listByPostIDFn(ctx, postID)
	}
	return []*model.Comment{}, nil
}

// mockPostRepo はrepository.PostRepositoryのモック実装。
// コメントサービスは非スコープのFindByIDしか使わない。
type mockPostRepo struct {
	findByIDFn func(ctx context.Context, id int64) (*model.Post, error)
}

func (m *mockPostRepo) Create(ctx context.Context, post *model.Post) error { return nil }

func (m *mockPostRepo) FindByIDAndAuthor(ctx context.Context, id, authorID int64) (*model.Post, error) {
	return nil, nil
}

func (m *mockPostRepo) FindByID(ctx context.Context, id int64) (*model.Post, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockPostRepo) ListByAuthor(ctx context.Context, authorID int64, categoryID *int64) ([]*model.Post, error) {
	return []*model.Post{}, nil
}

func (m *mockPostRepo) Update(ctx context.Context, post *model.Post) (bool, error) {
	return true, nil
}

func (m *mockPostRepo) DeleteByIDAndAuthor(ctx context.Context, id, authorID int64) (bool, error) {
	return true, nil
}

// mockSanitizer はsecurity.ContentSanitizerServiceのモック実装。
type mockSanitizer struct {
	calls []string
}

func (m *mockSanitizer) Sanitize(rawHTML string) string {
	m.calls = append(m.calls, rawHTML)
	return "sanitized:" + rawHTML
}

func apiErrorCode(t *testing.T, err error) string {
	t.Helper()
	var apiErr *model.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *model.APIError, got %T: %v", err, err)
	}
	return apiErr.Code
}

func postExists(id int64) *mockPostRepo {
	return &mockPostRepo{
		findByIDFn: func(ctx context.Context, queryID int64) (*model.Post, error) {
			if queryID == id {
				return &model.Post{ID: id, AuthorID: 1}, nil
			}
			return nil, nil
		},
	}
}

// --- Create ---

// 他人の投稿にもコメントでき、本文がサニタイズされることを検証
func TestService_Create_OnForeignPost(t *testing.T) {
	var stored *model.Comment
	comments := &mockCommentRepo{
		createFn: func(ctx context.Context, comment *model.Comment) error {
			comment.ID = 20
			stored = comment
			return nil
		},
	}
	sanitizer := &mockSanitizer{}
	// 投稿5は著者1の所有。コメント著者は9。
	svc := NewService(comments, postExists(5), sanitizer)

	comment, err := svc.Create(context.Background(), 9, 5, "<b>nice</b>")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if comment.AuthorID != 9 {
		t.Errorf("AuthorID = %d, want 9", comment.AuthorID)
	}
	if comment.PostID != 5 {
		t.Errorf("PostID = %d, want 5", comment.PostID)
	}
	if stored.Content != "sanitized:<b>nice</b>" {
		t.Errorf("stored content = %q, want the sanitized value", stored.Content)
	}
}

// 存在しない投稿へのコメントはPOST_NOT_FOUNDになり、書き込みが発生しないことを検証
func TestService_Create_MissingPost(t *testing.T) {
	createCalled := false
	comments := &mockCommentRepo{
		createFn: func(ctx context.Context, comment *model.Comment) error {
			createCalled = true
			return nil
		},
	}
	svc := NewService(comments, &mockPostRepo{}, &mockSanitizer{})

	_, err := svc.Create(context.Background(), 9, 404, "hello")
	if code := apiErrorCode(t, err); code != model.ErrCodePostNotFound {
		t.Errorf("error code = %q, want %q", code, model.ErrCodePostNotFound)
	}
	if createCalled {
		t.Error("no row may be written when the post does not exist")
	}
}

// 空白のみの本文は拒否されることを検証
func TestService_Create_EmptyContent(t *testing.T) {
	svc := NewService(&mockCommentRepo{}, postExists(5), &mockSanitizer{})

	_, err := svc.Create(context.Background(), 9, 5, "  \n ")
	if code := apiErrorCode(t, err); code != model.ErrCodeEmptyField {
		t.Errorf("error code = %q, want %q", code, model.ErrCodeEmptyField)
	}
}

// --- ListByPost ---

// コメント一覧がリポジトリの結果をそのまま返すことを検証
func TestService_ListByPost(t *testing.T) {
	want := []*model.Comment{
		{ID: 1, PostID: 5, AuthorID: 1, Content: "first"},
		{ID: 2, PostID: 5, AuthorID: 9, Content: "second"},
	}
	comments := &mockCommentRepo{
		listByPostIDFn: func(ctx context.Context, postID int64) ([]*model.Comment, error) {
			return want, nil
		},
	}
	svc := NewService(comments, postExists(5), &mockSanitizer{})

	got, err := svc.ListByPost(context.Background(), 5)
	if err != nil {
		t.Fatalf("ListByPost failed: %v", err)
	}
	if len(got) != 2 || got[0].Content != "first" || got[1].Content != "second" {
		t.Errorf("unexpected list result: %+v", got)
	}
}

// 存在しない投稿の一覧はPOST_NOT_FOUNDになることを検証
func TestService_ListByPost_MissingPost(t *testing.T) {
	svc := NewService(&mockCommentRepo{}, &mockPostRepo{}, &mockSanitizer{})

	_, err := svc.ListByPost(context.Background(), 404)
	if code := apiErrorCode(t, err); code != model.ErrCodePostNotFound {
		t.Errorf("error code = %q, want %q", code, model.ErrCodePostNotFound)
	}
}
