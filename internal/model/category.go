// Package model はドメインモデルを定義する。
package model

import "time"

// Category は投稿の分類カテゴリを表す。
// 名前はシステム全体で一意であり、所有者の概念は持たない。
type Category struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}
