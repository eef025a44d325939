package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenService はHMAC-SHA256署名付きベアラートークンの発行と検証を行う。
// クレームはsub（ユーザー名）とexp（絶対期限）のみで、リフレッシュ機構は持たない。
type TokenService struct {
	secret []byte
	expiry time.Duration
	now    func() time.Time
}

// NewTokenService はTokenServiceを生成する。
// expiryは発行時刻からの有効期間（リファレンス動作では30分）。
func NewTokenService(secret []byte, expiry time.Duration) *TokenService {
	return &TokenService{
		secret: secret,
		expiry: expiry,
		now:    time.Now,
	}
}

// Issue は指定subjectのトークンを発行する。
// 期限は発行時刻 + 有効期間の絶対時刻としてクレームに埋め込む。
func (s *TokenService) Issue(subject string) (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify はトークンの署名と期限を検証し、subjectを返す。
// 署名不正・期限切れ・subject欠落はいずれもエラーになる。
// 呼び出し元はエラーの種別を外部に漏らさず単一の認証エラーに集約すること。
func (s *TokenService) Verify(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{},
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithTimeFunc(func() time.Time { return s.now() }),
	)
	if err != nil {
		return "", fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid token claims")
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("token has no subject claim")
	}

	return claims.Subject, nil
}
