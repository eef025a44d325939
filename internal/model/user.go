// Package model はドメインモデルを定義する。
package model

import "time"

// User はブログAPIの利用ユーザーを表す。
// PasswordHashはbcryptによる一方向ハッシュであり、APIレスポンスには含めない。
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
