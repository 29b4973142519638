package model

import (
	"github.com/golang-jwt/jwt/v5"
)

type ContextKey string

const (
	UserIDKey ContextKey = "userID"
)

// JWTCustomClaims はJWTのペイロード。sub に学習者のUUIDが入る
type JWTCustomClaims struct {
	jwt.RegisteredClaims
}
