// Package model はドメインモデルを定義する。
package model

import "fmt"

// APIError は統一エラーフォーマットを表す。
// UIに表示する原因カテゴリと対処方法を含む。
type APIError struct {
	Code     string // エラーコード
	Message  string // エラーメッセージ
	Category string // カテゴリ: auth, validation, blog, system
	Action   string // ユーザー向け対処方法
}

// Error はerrorインターフェースを実装する。
func (e *APIError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// 定義済みエラーコード
const (
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeDuplicateUsername  = "DUPLICATE_USERNAME"
	ErrCodeDuplicateCategory  = "DUPLICATE_CATEGORY"
	ErrCodePostNotFound       = "POST_NOT_FOUND"
	ErrCodeCategoryNotFound   = "CATEGORY_NOT_FOUND"
	ErrCodeEmptyField         = "EMPTY_FIELD"
)

// NewInvalidCredentialsError は認証失敗エラーを生成する。
// 署名不正・期限切れ・subject欠落・ユーザー不在のいずれも同一のエラーに集約し、
// 失敗段階を外部に漏らさない。
func NewInvalidCredentialsError() *APIError {
	return &APIError{
		Code:     ErrCodeInvalidCredentials,
		Message:  "認証情報が正しくありません。",
		Category: "auth",
		Action:   "ユーザー名とパスワードを確認し、再度ログインしてください。",
	}
}

// NewDuplicateUsernameError はユーザー名重複エラーを生成する。
func NewDuplicateUsernameError(username string) *APIError {
	return &APIError{
		Code:     ErrCodeDuplicateUsername,
		Message:  fmt.Sprintf("このユーザー名は既に登録されています: %s", username),
		Category: "validation",
		Action:   "別のユーザー名を指定してください。",
	}
}

// NewDuplicateCategoryError はカテゴリ名重複エラーを生成する。
func NewDuplicateCategoryError(name string) *APIError {
	return &APIError{
		Code:     ErrCodeDuplicateCategory,
		Message:  fmt.Sprintf("このカテゴリは既に存在します: %s", name),
		Category: "validation",
		Action:   "既存のカテゴリを使用するか、別の名前を指定してください。",
	}
}

// NewPostNotFoundError は投稿未検出エラーを生成する。
// 他ユーザーの投稿へのアクセスも同一のエラーになる（存在秘匿のため意図的）。
func NewPostNotFoundError(postID int64) *APIError {
	return &APIError{
		Code:     ErrCodePostNotFound,
		Message:  fmt.Sprintf("指定された投稿が見つかりません: %d", postID),
		Category: "blog",
		Action:   "投稿IDを確認してください。",
	}
}

// NewCategoryNotFoundError はカテゴリ未検出エラーを生成する。
func NewCategoryNotFoundError(categoryID int64) *APIError {
	return &APIError{
		Code:     ErrCodeCategoryNotFound,
		Message:  fmt.Sprintf("指定されたカテゴリが見つかりません: %d", categoryID),
		Category: "blog",
		Action:   "カテゴリIDを確認してください。",
	}
}

// NewEmptyFieldError は必須フィールドが空の場合のエラーを生成する。
func NewEmptyFieldError(field string) *APIError {
	return &APIError{
		Code:     ErrCodeEmptyField,
		Message:  fmt.Sprintf("%s は空にできません。", field),
		Category: "validation",
		Action:   "値を入力してから再度お試しください。",
	}
}
