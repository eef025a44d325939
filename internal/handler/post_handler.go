package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/hitoshi/blogman/internal/middleware"
	"github.com/hitoshi/blogman/internal/model"
)

// PostServiceInterface は投稿ハンドラーが必要とするサービスインターフェース。
// すべての操作は認証済みユーザーのIDでスコープされる。
type PostServiceInterface interface {
	// Create は新しい投稿を作成する。著者は認証済みユーザーに固定される。
	Create(ctx context.Context, authorID int64, title, content string, categoryID *int64) (*model.Post, error)
	// List は認証済みユーザー自身の投稿一覧を返す。
	List(ctx context.Context, authorID int64, categoryID *int64) ([]*model.Post, error)
	// Get は認証済みユーザー自身の投稿を1件取得する。
	Get(ctx context.Context, authorID, postID int64) (*model.Post, error)
	// Update は認証済みユーザー自身の投稿を更新する。
	Update(ctx context.Context, authorID, postID int64, title, content string, categoryID *int64) (*model.Post, error)
	// Delete は認証済みユーザー自身の投稿を削除する。
	Delete(ctx context.Context, authorID, postID int64) error
}

// PostHandler は投稿管理のHTTPハンドラー。
type PostHandler struct {
	service PostServiceInterface
}

// NewPostHandler はPostHandlerを生成する。
func NewPostHandler(service PostServiceInterface) *PostHandler {
	return &PostHandler{
		service: service,
	}
}

// postRequest は投稿の作成・更新リクエストのボディ。
type postRequest struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	CategoryID *int64 `json:"category_id"`
}

// postResponse は投稿情報のAPIレスポンス。
type postResponse struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
	AuthorID   int64     `json:"author_id"`
	CategoryID *int64    `json:"category_id"`
}

// messageResponse は操作結果メッセージのAPIレスポンス。
type messageResponse struct {
	Message string `json:"message"`
}

// CreatePost は投稿作成を処理する。
// POST /posts
func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.UserFromContext(r.Context())
	if err != nil {
		writeUnauthorizedResponse(w, model.NewInvalidCredentialsError())
		return
	}

	var req postRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAPIErrorResponse(w, http.StatusBadRequest, newInvalidRequestError())
		return
	}

	post, err := h.service.Create(r.Context(), user.ID, req.Title, req.Content, req.CategoryID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, toPostResponse(post))
}

// ListPosts は認証済みユーザー自身の投稿一覧を返す。
// category_id クエリパラメータでカテゴリ絞り込みができる。
// GET /posts
func (h *PostHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.UserFromContext(r.Context())
	if err != nil {
		writeUnauthorizedResponse(w, model.NewInvalidCredentialsError())
		return
	}

	var categoryID *int64
	if raw := r.URL.Query().Get("category_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeAPIErrorResponse(w, http.StatusBadRequest, newInvalidRequestError())
			return
		}
		categoryID = &id
	}

	posts, err := h.service.List(r.Context(), user.ID, categoryID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	resp := make([]postResponse, 0, len(posts))
	for _, p := range posts {
		resp = append(resp, toPostResponse(p))
	}

	writeJSONResponse(w, http.StatusOK, resp)
}

// GetPost は認証済みユーザー自身の投稿を1件返す。
// GET /posts/{postID}
func (h *PostHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.UserFromContext(r.Context())
	if err != nil {
		writeUnauthorizedResponse(w, model.NewInvalidCredentialsError())
		return
	}

	postID, ok := parseIDParam(w, r, "postID")
	if !ok {
		return
	}

	post, err := h.service.Get(r.Context(), user.ID, postID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, toPostResponse(post))
}

// UpdatePost は認証済みユーザー自身の投稿を更新する。
// PUT /posts/{postID}
func (h *PostHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.UserFromContext(r.Context())
	if err != nil {
		writeUnauthorizedResponse(w, model.NewInvalidCredentialsError())
		return
	}

	postID, ok := parseIDParam(w, r, "postID")
	if !ok {
		return
	}

	var req postRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAPIErrorResponse(w, http.StatusBadRequest, newInvalidRequestError())
		return
	}

	post, err := h.service.Update(r.Context(), user.ID, postID, req.Title, req.Content, req.CategoryID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, toPostResponse(post))
}

// DeletePost は認証済みユーザー自身の投稿を削除する。
// DELETE /posts/{postID}
func (h *PostHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.UserFromContext(r.Context())
	if err != nil {
		writeUnauthorizedResponse(w, model.NewInvalidCredentialsError())
		return
	}

	postID, ok := parseIDParam(w, r, "postID")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), user.ID, postID); err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, messageResponse{Message: "Post deleted"})
}

// --- ヘルパー関数 ---

// apiErrorResponse は統一エラーフォーマットのレスポンス。
type apiErrorResponse struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Category string `json:"category"`
	Action   string `json:"action"`
}

// toPostResponse はmodel.PostからAPIレスポンスに変換する。
func toPostResponse(post *model.Post) postResponse {
	return postResponse{
		ID:         post.ID,
		Title:      post.Title,
		Content:    post.Content,
		CreatedAt:  post.CreatedAt,
		AuthorID:   post.AuthorID,
		CategoryID: post.CategoryID,
	}
}

// newInvalidRequestError はリクエスト解析失敗のエラーを生成する。
func newInvalidRequestError() *model.APIError {
	return &model.APIError{
		Code:     "INVALID_REQUEST",
		Message:  "リクエストの解析に失敗しました。",
		Category: "validation",
		Action:   "リクエスト形式を確認してください。",
	}
}

// parseIDParam はURLパスパラメータを数値IDとして解析する。
// 解析できない場合は400レスポンスを書き込み、falseを返す。
func parseIDParam(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		writeAPIErrorResponse(w, http.StatusBadRequest, newInvalidRequestError())
		return 0, false
	}
	return id, true
}

// writeJSONResponse はJSONレスポンスを書き込む。
func writeJSONResponse(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(body)
}

// writeAPIErrorResponse は統一エラーフォーマットでエラーレスポンスを書き込む。
func writeAPIErrorResponse(w http.ResponseWriter, statusCode int, apiErr *model.APIError) {
	writeJSONResponse(w, statusCode, apiErrorResponse{
		Code:     apiErr.Code,
		Message:  apiErr.Message,
		Category: apiErr.Category,
		Action:   apiErr.Action,
	})
}

// writeUnauthorizedResponse はベアラートークンでの再試行を促すチャレンジ付きで
// 401レスポンスを書き込む。
func writeUnauthorizedResponse(w http.ResponseWriter, apiErr *model.APIError) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	writeAPIErrorResponse(w, http.StatusUnauthorized, apiErr)
}

// handleServiceError はサービス層から返されたエラーを適切なHTTPステータスコードに変換する。
func handleServiceError(w http.ResponseWriter, err error) {
	var apiErr *model.APIError
	if errors.As(err, &apiErr) {
		statusCode := mapAPIErrorToHTTPStatus(apiErr)
		if statusCode == http.StatusUnauthorized {
			writeUnauthorizedResponse(w, apiErr)
			return
		}
		writeAPIErrorResponse(w, statusCode, apiErr)
		return
	}

	// APIError以外のエラーは内部サーバーエラーとして扱う
	slog.Error("internal server error", slog.String("error", err.Error()))
	writeAPIErrorResponse(w, http.StatusInternalServerError, &model.APIError{
		Code:     "INTERNAL_ERROR",
		Message:  "内部エラーが発生しました。",
		Category: "system",
		Action:   "しばらく待ってから再度お試しください。",
	})
}

// mapAPIErrorToHTTPStatus はAPIErrorコードからHTTPステータスコードにマッピングする。
func mapAPIErrorToHTTPStatus(apiErr *model.APIError) int {
	switch apiErr.Code {
	case model.ErrCodeInvalidCredentials:
		return http.StatusUnauthorized
	case model.ErrCodeDuplicateUsername, model.ErrCodeDuplicateCategory:
		return http.StatusBadRequest
	case model.ErrCodePostNotFound, model.ErrCodeCategoryNotFound:
		return http.StatusNotFound
	case model.ErrCodeEmptyField:
		return http.StatusUnprocessableEntity
	case "INVALID_REQUEST":
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
