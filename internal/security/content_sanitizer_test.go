package security

import (
	"strings"
	"testing"
)

// scriptタグが除去されることを検証
func TestSanitize_RemovesScriptTags(t *testing.T) {
	s := NewContentSanitizer()

	got := s.Sanitize(`<p>hello</p><script>alert("xss")</script>`)

	if strings.Contains(got, "<script") {
		t.Errorf("sanitized output still contains a script tag: %q", got)
	}
	if !strings.Contains(got, "<p>hello</p>") {
		t.Errorf("sanitized output lost safe markup: %q", got)
	}
}

// on*イベント属性が除去されることを検証
func TestSanitize_RemovesEventHandlers(t *testing.T) {
	s := NewContentSanitizer()

	got := s.Sanitize(`<p onclick="steal()">text</p>`)

	if strings.Contains(got, "onclick") {
		t.Errorf("sanitized output still contains an event handler: %q", got)
	}
}

// 書式タグは保持されることを検証
func TestSanitize_KeepsFormattingTags(t *testing.T) {
	s := NewContentSanitizer()

	in := `<blockquote><strong>bold</strong> and <em>italic</em></blockquote><pre><code>x := 1</code></pre>`
	got := s.Sanitize(in)

	for _, tag := range []string{"<blockquote>", "<strong>", "<em>", "<pre>", "<code>"} {
		if !strings.Contains(got, tag) {
			t.Errorf("sanitized output lost %s: %q", tag, got)
		}
	}
}

// リンクにrel="nofollow"が付与されることを検証
func TestSanitize_AddsNoFollowToLinks(t *testing.T) {
	s := NewContentSanitizer()

	got := s.Sanitize(`<a href="https://example.com">link</a>`)

	if !strings.Contains(got, "nofollow") {
		t.Errorf("sanitized link is missing rel=nofollow: %q", got)
	}
}

// 空文字列は空文字列のまま返ることを検証
func TestSanitize_EmptyInput(t *testing.T) {
	s := NewContentSanitizer()

	if got := s.Sanitize(""); got != "" {
		t.Errorf("Sanitize(\"\") = %q, want \"\"", got)
	}
}

// 同一入力に対して冪等であることを検証
func TestSanitize_Idempotent(t *testing.T) {
	s := NewContentSanitizer()

	in := `<p>plain <strong>text</strong></p><script>x</script>`
	once := s.Sanitize(in)
	twice := s.Sanitize(once)

	if once != twice {
		t.Errorf("Sanitize is not idempotent: %q != %q", once, twice)
	}
}
