package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hitoshi/blogman/internal/model"
)

// PostgresPostRepo はPostgreSQLを使用した投稿リポジトリ。
type PostgresPostRepo struct {
	db *sql.DB
}

// NewPostgresPostRepo はPostgresPostRepoを生成する。
func NewPostgresPostRepo(db *sql.DB) *PostgresPostRepo {
	return &PostgresPostRepo{db: db}
}

// Create は投稿を作成し、採番されたIDと作成日時をpostに書き戻す。
func (r *PostgresPostRepo) Create(ctx context.Context, post *model.Post) error {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO posts (title, content, author_id, category_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		post.Title, post.Content, post.AuthorID, post.CategoryID,
	).Scan(&post.ID, &post.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to insert post: %w", err)
	}

	return nil
}

// FindByIDAndAuthor は指定IDかつ指定著者の投稿を取得する。
// 該当しない場合（不在・他ユーザー所有のいずれも）はnilを返す。
func (r *PostgresPostRepo) FindByIDAndAuthor(ctx context.Context, id, authorID int64) (*model.Post, error) {
	post := &model.Post{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, title, content, created_at, author_id, category_id
		 FROM posts WHERE id = $1 AND author_id = $2`,
		id, authorID,
	).Scan(&post.ID, &post.Title, &post.Content, &post.CreatedAt, &post.AuthorID, &post.CategoryID)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find post by ID and author: %w", err)
	}

	return post, nil
}

// FindByID は指定IDの投稿を著者を問わず取得する。見つからない場合はnilを返す。
func (r *PostgresPostRepo) FindByID(ctx context.Context, id int64) (*model.Post, error) {
	post := &model.Post{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, title, content, created_at, author_id, category_id
		 FROM posts WHERE id = $1`,
		id,
	).Scan(&post.ID, &post.Title, &post.Content, &post.CreatedAt, &post.AuthorID, &post.CategoryID)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find post by ID: %w", err)
	}

	return post, nil
}

// ListByAuthor は指定著者の投稿一覧をID昇順で返す。
// categoryIDが非nilの場合はカテゴリでさらに絞り込む。
func (r *PostgresPostRepo) ListByAuthor(ctx context.Context, authorID int64, categoryID *int64) ([]*model.Post, error) {
	query := `SELECT id, title, content, created_at, author_id, category_id
		 FROM posts WHERE author_id = $1`
	args := []any{authorID}

	if categoryID != nil {
		query += ` AND category_id = $2`
		args = append(args, *categoryID)
	}
	query += ` ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	posts := []*model.Post{}
	for rows.Next() {
		post := &model.Post{}
		if err := rows.Scan(&post.ID, &post.Title, &post.Content, &post.CreatedAt, &post.AuthorID, &post.CategoryID); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate posts: %w", err)
	}

	return posts, nil
}

// Update は指定IDかつ指定著者の投稿のタイトル・本文・カテゴリを更新する。
// 更新された場合はtrueを返す。該当行がない場合はfalseを返す。
func (r *PostgresPostRepo) Update(ctx context.Context, post *model.Post) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE posts SET title = $1, content = $2, category_id = $3
		 WHERE id = $4 AND author_id = $5`,
		post.Title, post.Content, post.CategoryID, post.ID, post.AuthorID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

// DeleteByIDAndAuthor は指定IDかつ指定著者の投稿を削除する。
// 削除された場合はtrueを返す。該当行がない場合はfalseを返す。
func (r *PostgresPostRepo) DeleteByIDAndAuthor(ctx context.Context, id, authorID int64) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM posts WHERE id = $1 AND author_id = $2`,
		id, authorID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

// compile-time interface check
var _ PostRepository = (*PostgresPostRepo)(nil)
