// Package security はアプリケーションのセキュリティ機能を提供する。
//
// ContentSanitizerService は投稿・コメント本文のHTMLをサニタイズし、
// 格納型XSSからユーザーを保護する。
// bluemondayライブラリを使用した許可リストベースのポリシーで、
// 安全なタグと属性のみを通過させる。
package security

import "github.com/microcosm-cc/bluemonday"

// ContentSanitizerService はHTMLコンテンツのサニタイズ機能のインターフェースを定義する。
// 投稿・コメントの保存前に使用される。
type ContentSanitizerService interface {
	// Sanitize はHTMLコンテンツをサニタイズして安全なHTMLを返す。
	// script, iframe, styleタグおよびon*イベント属性を除去する。
	// 空文字列の入力には空文字列を返す。
	// 同一入力に対して常に同一出力を返す（冪等）。
	Sanitize(rawHTML string) string
}

// contentSanitizer はContentSanitizerServiceの実装。
// bluemondayのポリシーを保持し、スレッドセーフにサニタイズ処理を行う。
type contentSanitizer struct {
	policy *bluemonday.Policy
}

// NewContentSanitizer はContentSanitizerServiceの新しいインスタンスを生成する。
// ユーザー投稿コンテンツ向けのUGCポリシーを使用する。
// ポリシーの内容:
//   - 一般的な書式タグ（p, ul, ol, li, blockquote, pre, code, strong, em 等）を許可
//   - script, iframe, style および全てのon*イベント属性を除去
//   - aタグには rel="nofollow" を強制付与
func NewContentSanitizer() *contentSanitizer {
	p := bluemonday.UGCPolicy()
	p.RequireNoFollowOnLinks(true)

	return &contentSanitizer{policy: p}
}

// Sanitize はHTMLコンテンツをサニタイズして安全なHTMLを返す。
func (s *contentSanitizer) Sanitize(rawHTML string) string {
	if rawHTML == "" {
		return ""
	}
	return s.policy.Sanitize(rawHTML)
}

// compile-time interface check
var _ ContentSanitizerService = (*contentSanitizer)(nil)
