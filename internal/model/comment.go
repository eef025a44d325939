// Package model はドメインモデルを定義する。
package model

import "time"

// Comment は投稿へのコメントを表す。
// AuthorIDは作成時に認証済みユーザーから設定される。
// 投稿の所有者でなくてもコメントできる。
type Comment struct {
	ID        int64
	Content   string // サニタイズ済み
	CreatedAt time.Time
	PostID    int64
	AuthorID  int64
}
