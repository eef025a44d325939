// Package model はドメインモデルを定義する。
package model

import "time"

// Post はブログ投稿を表す。
// AuthorIDは作成時に認証済みユーザーから設定され、以後変更されない。
// CategoryIDは任意で、nilの場合は未分類を意味する。
type Post struct {
	ID         int64
	Title      string
	Content    string // サニタイズ済みHTML
	CreatedAt  time.Time
	AuthorID   int64
	CategoryID *int64
}
