package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/hitoshi/blogman/internal/middleware"
	"github.com/hitoshi/blogman/internal/model"
)

// CommentServiceInterface はコメントハンドラーが必要とするサービスインターフェース。
type CommentServiceInterface interface {
	// Create は指定投稿にコメントを作成する。著者は認証済みユーザーに固定される。
	Create(ctx context.Context, authorID, postID int64, content string) (*model.Comment, error)
	// ListByPost は指定投稿の全コメントを返す。
	ListByPost(ctx context.Context, postID int64) ([]*model.Comment, error)
}

// CommentHandler はコメント管理のHTTPハンドラー。
// 作成は認証が必要だが、一覧は未認証でも取得できる。
type CommentHandler struct {
	service CommentServiceInterface
}

// NewCommentHandler はCommentHandlerを生成する。
func NewCommentHandler(service CommentServiceInterface) *CommentHandler {
	return &CommentHandler{
		service: service,
	}
}

// createCommentRequest はコメント作成リクエストのボディ。
type createCommentRequest struct {
	Content string `json:"content"`
}

// commentResponse はコメント情報のAPIレスポンス。
type commentResponse struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	PostID    int64     `json:"post_id"`
	AuthorID  int64     `json:"author_id"`
}

// CreateComment は指定投稿へのコメント作成を処理する。
// 投稿の所有者でなくてもコメントできる。
// POST /posts/{postID}/comments
func (h *CommentHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.UserFromContext(r.Context())
	if err != nil {
		writeUnauthorizedResponse(w, model.NewInvalidCredentialsError())
		return
	}

	postID, ok := parseIDParam(w, r, "postID")
	if !ok {
		return
	}

	var req createCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAPIErrorResponse(w, http.StatusBadRequest, newInvalidRequestError())
		return
	}

	comment, err := h.service.Create(r.Context(), user.ID, postID, req.Content)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, toCommentResponse(comment))
}

// ListComments は指定投稿の全コメント一覧を返す。認証は不要。
// GET /posts/{postID}/comments
func (h *CommentHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	postID, ok := parseIDParam(w, r, "postID")
	if !ok {
		return
	}

	comments, err := h.service.ListByPost(r.Context(), postID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	resp := make([]commentResponse, 0, len(comments))
	for _, c := range comments {
		resp = append(resp, toCommentResponse(c))
	}

	writeJSONResponse(w, http.StatusOK, resp)
}

// toCommentResponse はmodel.CommentからAPIレスポンスに変換する。
func toCommentResponse(comment *model.Comment) commentResponse {
	return commentResponse{
		ID:        comment.ID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
		PostID:    comment.PostID,
		AuthorID:  comment.AuthorID,
	}
}
