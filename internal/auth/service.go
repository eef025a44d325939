package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/hitoshi/blogman/internal/model"
	"github.com/hitoshi/blogman/internal/repository"
)

// ServiceConfig は認証サービスの設定。
type ServiceConfig struct {
	BcryptCost int // bcryptのコストパラメータ
}

// Service は登録・ログイン・トークン認証のビジネスロジックを提供する。
type Service struct {
	userRepo repository.UserRepository
	tokens   *TokenService
	config   ServiceConfig
}

// NewService はServiceを生成する。
func NewService(userRepo repository.UserRepository, tokens *TokenService, config ServiceConfig) *Service {
	return &Service{
		userRepo: userRepo,
		tokens:   tokens,
		config:   config,
	}
}

// Register は新規ユーザーを登録する。
// ユーザー名が登録済みの場合はAPIError(DUPLICATE_USERNAME)を返す。
func (s *Service) Register(ctx context.Context, username, password string) (*model.User, error) {
	if strings.TrimSpace(username) == "" {
		return nil, model.NewEmptyFieldError("username")
	}
	if password == "" {
		return nil, model.NewEmptyFieldError("password")
	}

	// 事前チェック。同時登録の競合はリポジトリの一意制約検出が拾う。
	existing, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if existing != nil {
		return nil, model.NewDuplicateUsernameError(username)
	}

	hash, err := HashPassword(password, s.config.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	slog.Info("user registered",
		slog.Int64("user_id", user.ID),
		slog.String("username", user.Username),
	)

	return user, nil
}

// Login は認証情報を検証し、署名付きベアラートークンを発行する。
// ユーザー不在とパスワード不一致は同一のAPIError(INVALID_CREDENTIALS)に集約する。
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return "", fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		return "", model.NewInvalidCredentialsError()
	}

	ok, err := VerifyPassword(password, user.PasswordHash)
	if err != nil {
		// 保存済みハッシュの破損はローカル障害であり、認証失敗とは区別してログに残す
		slog.Error("stored password hash is malformed",
			slog.Int64("user_id", user.ID),
			slog.String("error", err.Error()),
		)
		return "", fmt.Errorf("failed to verify password: %w", err)
	}
	if !ok {
		return "", model.NewInvalidCredentialsError()
	}

	token, err := s.tokens.Issue(user.Username)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	slog.Info("user logged in", slog.Int64("user_id", user.ID))

	return token, nil
}

// Authenticate はベアラートークンを検証し、解決済みユーザーを返す。
// 署名不正・期限切れ・subject欠落・ユーザー不在の4つの失敗経路は
// すべて同一のAPIError(INVALID_CREDENTIALS)に集約し、失敗段階を漏らさない。
// トークンは自己完結の身分証明ではなく、subjectは検証時点でストアに
// 存在しなければならない。
func (s *Service) Authenticate(ctx context.Context, tokenString string) (*model.User, error) {
	subject, err := s.tokens.Verify(tokenString)
	if err != nil {
		return nil, model.NewInvalidCredentialsError()
	}

	user, err := s.userRepo.FindByUsername(ctx, subject)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		return nil, model.NewInvalidCredentialsError()
	}

	return user, nil
}
