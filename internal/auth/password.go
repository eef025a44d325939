// Package auth はパスワード認証、トークンの発行と検証を提供する。
package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword はパスワードのbcryptハッシュを生成する。
// ソルトはbcryptが内部で付与するため、同じ入力でも呼び出しごとに異なる出力になる。
func HashPassword(password string, cost int) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(h), nil
}

// VerifyPassword は平文パスワードが保存済みハッシュと一致するかを検証する。
// 不一致は(false, nil)を返す。保存済みハッシュが壊れている等の
// ローカル障害のみエラーとして返し、不一致とは区別する。
func VerifyPassword(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, fmt.Errorf("failed to compare password hash: %w", err)
}
