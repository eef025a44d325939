package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hitoshi/blogman/internal/metrics"
	"github.com/hitoshi/blogman/internal/middleware"
)

// HealthChecker はヘルスチェックに必要なインターフェース。
// *sql.DB がそのまま満たす。
type HealthChecker interface {
	PingContext(ctx context.Context) error
}

// RouterDeps はNewRouterに必要な依存関係をまとめた構造体。
type RouterDeps struct {
	// ミドルウェア依存
	HealthChecker     HealthChecker
	Authenticator     middleware.Authenticator
	CORSAllowedOrigin string
	Logger            *slog.Logger

	// メトリクス
	Metrics        metrics.MetricsCollector
	MetricsHandler http.Handler

	// ドメインサービス
	AuthService     AuthServiceInterface
	CategoryService CategoryServiceInterface
	PostService     PostServiceInterface
	CommentService  CommentServiceInterface
}

// NewRouter は全APIエンドポイントのルーティングとミドルウェアチェーンを構成したchi.Routerを返す。
//
// ミドルウェアスタックの実行順序:
//
//	RequestID → Logging → Recovery → CORS → Metrics
//
// ベアラー認証は保護対象のルートグループにのみ適用する。
// カテゴリ一覧とコメント一覧は未認証で公開される（意図した非対称）。
func NewRouter(deps *RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.NewRequestIDMiddleware())
	r.Use(middleware.NewLoggingMiddleware(deps.Logger))
	r.Use(middleware.NewRecoveryMiddleware())
	r.Use(middleware.NewCORSMiddleware(deps.CORSAllowedOrigin))
	r.Use(middleware.NewMetricsMiddleware(deps.Metrics))

	authHandler := NewAuthHandler(deps.AuthService, deps.Metrics)
	categoryHandler := NewCategoryHandler(deps.CategoryService)
	postHandler := NewPostHandler(deps.PostService)
	commentHandler := NewCommentHandler(deps.CommentService)

	// --- 認証不要のルート ---

	r.Post("/users", authHandler.RegisterUser)
	r.Post("/token", authHandler.Login)

	r.Get("/categories", categoryHandler.ListCategories)
	r.Get("/posts/{postID}/comments", commentHandler.ListComments)

	r.Get("/health", newHealthHandler(deps.HealthChecker))
	r.Method(http.MethodGet, "/metrics", deps.MetricsHandler)

	// --- 認証が必要なルート ---
	r.Group(func(r chi.Router) {
		r.Use(middleware.NewBearerAuthMiddleware(deps.Authenticator))

		r.Post("/categories", categoryHandler.CreateCategory)

		// 投稿管理。コメント一覧（GET）だけは上の公開ルートに属する。
		r.Post("/posts", postHandler.CreatePost)
		r.Get("/posts", postHandler.ListPosts)
		r.Get("/posts/{postID}", postHandler.GetPost)
		r.Put("/posts/{postID}", postHandler.UpdatePost)
		r.Delete("/posts/{postID}", postHandler.DeletePost)
		r.Post("/posts/{postID}/comments", commentHandler.CreateComment)
	})

	return r
}

// newHealthHandler はDB接続を確認するヘルスチェックハンドラーを返す。
// GET /health
func newHealthHandler(checker HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := checker.PingContext(r.Context()); err != nil {
			slog.Error("health check failed", slog.String("error", err.Error()))
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}
