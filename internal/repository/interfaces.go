// Package repository はデータ永続化のインターフェースを定義する。
package repository

import (
	"context"

	"github.com/hitoshi/blogman/internal/model"
)

// UserRepository はユーザーデータの永続化インターフェース。
type UserRepository interface {
	// FindByUsername は指定ユーザー名のユーザーを取得する。見つからない場合はnilを返す。
	// ユーザー名の比較は大文字小文字を区別する。
	FindByUsername(ctx context.Context, username string) (*model.User, error)

	// Create はユーザーを作成し、採番されたIDをuser.IDに書き戻す。
	// ユーザー名が一意制約に違反した場合はmodel.APIError(DUPLICATE_USERNAME)を返す。
	Create(ctx context.Context, user *model.User) error
}

// CategoryRepository はカテゴリデータの永続化インターフェース。
type CategoryRepository interface {
	// FindByID は指定IDのカテゴリを取得する。見つからない場合はnilを返す。
	FindByID(ctx context.Context, id int64) (*model.Category, error)

	// FindByName は指定名のカテゴリを取得する。見つからない場合はnilを返す。
	FindByName(ctx context.Context, name string) (*model.Category, error)

	// Create はカテゴリを作成し、採番されたIDをcategory.IDに書き戻す。
	// 名前が一意制約に違反した場合はmodel.APIError(DUPLICATE_CATEGORY)を返す。
	Create(ctx context.Context, category *model.Category) error

	// List は全カテゴリをID昇順で返す。
	List(ctx context.Context) ([]*model.Category, error)
}

// PostRepository は投稿データの永続化インターフェース。
// 読み取り・更新・削除はすべてauthor_idでスコープされ、
// 他ユーザーの投稿は存在しない投稿と区別できない。
type PostRepository interface {
	// Create は投稿を作成し、採番されたIDと作成日時をpostに書き戻す。
	Create(ctx context.Context, post *model.Post) error

	// FindByIDAndAuthor は指定IDかつ指定著者の投稿を取得する。
	// 該当しない場合（不在・他ユーザー所有のいずれも）はnilを返す。
	FindByIDAndAuthor(ctx context.Context, id, authorID int64) (*model.Post, error)

	// FindByID は指定IDの投稿を著者を問わず取得する。見つからない場合はnilを返す。
	// コメント作成・一覧時の投稿存在チェックに使用する。
	FindByID(ctx context.Context, id int64) (*model.Post, error)

	// ListByAuthor は指定著者の投稿一覧をID昇順で返す。
	// categoryIDが非nilの場合はカテゴリでさらに絞り込む。
	ListByAuthor(ctx context.Context, authorID int64, categoryID *int64) ([]*model.Post, error)

	// Update は指定IDかつ指定著者の投稿のタイトル・本文・カテゴリを更新する。
	// 更新された場合はtrueを返す。該当行がない場合はfalseを返す。
	Update(ctx context.Context, post *model.Post) (bool, error)

	// DeleteByIDAndAuthor は指定IDかつ指定著者の投稿を削除する。
	// 削除された場合はtrueを返す。該当行がない場合はfalseを返す。
	// 投稿に紐づくコメントはCASCADE削除される。
	DeleteByIDAndAuthor(ctx context.Context, id, authorID int64) (bool, error)
}

// CommentRepository はコメントデータの永続化インターフェース。
type CommentRepository interface {
	// Create はコメントを作成し、採番されたIDと作成日時をcommentに書き戻す。
	Create(ctx context.Context, comment *model.Comment) error

	// ListByPostID は指定投稿の全コメントをID昇順で返す。
	// 呼び出し元の認証状態にかかわらず全件を返す。
	ListByPostID(ctx context.Context, postID int64) ([]*model.Comment, error)
}
