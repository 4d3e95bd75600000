package handler

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

const tokenCookieName = "__staffsync_token"

type Scope string

const (
	ScopeView Scope = "view"
	ScopeEdit Scope = "edit"
)

type AuthClaims struct {
	Scope string `json:"scope"`
	jwt.RegisteredClaims
}

// UnlockView は閲覧パスワードで閲覧ロックを解除する
func (h *Handler) UnlockView(w http.ResponseWriter, r *http.Request) {
	h.unlock(w, r, ScopeView, h.viewPasswordHash)
}

// UnlockEdit は編集パスワードで編集ロックを解除する（閲覧も兼ねる）
func (h *Handler) UnlockEdit(w http.ResponseWriter, r *http.Request) {
	h.unlock(w, r, ScopeEdit, h.editPasswordHash)
}

func (h *Handler) unlock(w http.ResponseWriter, r *http.Request, scope Scope, passwordHash []byte) {
	var req struct {
		Password string `json:"password" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	// 総当たり対策として、失敗回数を IP ごとに一定時間数えておく
	failKey := fmt.Sprintf("auth_fail_%s_%s", scope, clientIP(r))

	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(h.config.Redis.OperationExpiration)*time.Second)
	defer cancel()

	failures, err := h.redisClient.Get(ctx, failKey).Int()
	if err != nil && !errors.Is(err, redis.Nil) {
		h.internalServerError(w, r, err)
		return
	}
	if failures >= h.config.Auth.LockoutThreshold {
		h.errorResponse(w, r, "試行回数が多すぎます。しばらく待ってから再度お試しください")
		return
	}

	if err := bcrypt.CompareHashAndPassword(passwordHash, []byte(req.Password)); err != nil {
		switch {
		case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
			if err := h.redisClient.Incr(ctx, failKey).Err(); err != nil {
				h.internalServerError(w, r, err)
				return
			}
			if err := h.redisClient.Expire(ctx, failKey, time.Duration(h.config.Auth.LockoutWindow)*time.Second).Err(); err != nil {
				h.internalServerError(w, r, err)
				return
			}
			h.errorResponse(w, r, "パスワードが違います")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	// 成功したら失敗カウントを消す
	if err := h.redisClient.Del(ctx, failKey).Err(); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	expiration := time.Now().Add(time.Duration(h.config.JWT.Expiration) * time.Second)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, AuthClaims{
		Scope: string(scope),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiration),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	})
	ss, err := token.SignedString([]byte(h.config.JWT.Secret))
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	cookie := &http.Cookie{
		Name:     tokenCookieName,
		Value:    ss,
		Expires:  expiration,
		Path:     "/",
		HttpOnly: true,
		Secure:   false,
	}

	if h.config.Environment == "production" {
		cookie.Secure = true
		cookie.SameSite = http.SameSiteStrictMode
	}

	http.SetCookie(w, cookie)

	h.successResponse(w, r, "ロックを解除しました", map[string]any{"scope": scope})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:    tokenCookieName,
		Value:   "",
		Expires: time.Now().Add(-time.Hour),
		Path:    "/",
	})

	h.successResponse(w, r, "ロックしました", nil)
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
