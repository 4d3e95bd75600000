package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type ResponseWriter struct {
	http.ResponseWriter
	StatusCode int
}

func (rw *ResponseWriter) WriteHeader(statusCode int) {
	rw.StatusCode = statusCode
	rw.ResponseWriter.WriteHeader(statusCode)
}

func (h *Handler) logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &ResponseWriter{ResponseWriter: w}
		next.ServeHTTP(rw, r)
		duration := time.Since(start)
		slog.Info("リクエストを処理しました", "status", rw.StatusCode, "ip", r.RemoteAddr, "method", r.Method, "path", r.URL.Path, "duration", duration)
	})
}

func (h *Handler) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				h.internalServerError(w, r, fmt.Errorf("panic: %v", err))
				stackTrace := string(debug.Stack())
				fmt.Print(stackTrace) // slog に入れると読みにくくなる
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// requireScope は cookie の JWT を検証し、必要なスコープを満たすときだけ通す。
// 編集スコープは閲覧スコープを兼ねる
func (h *Handler) requireScope(scope Scope) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(tokenCookieName)
			if err != nil {
				switch {
				case errors.Is(err, http.ErrNoCookie):
					h.errorResponse(w, r, "ロックが解除されていません")
				default:
					h.internalServerError(w, r, err)
				}
				return
			}

			claims := &AuthClaims{}
			_, err = jwt.ParseWithClaims(cookie.Value, claims, func(t *jwt.Token) (interface{}, error) {
				return []byte(h.config.JWT.Secret), nil
			})
			if err != nil {
				h.errorResponse(w, r, "無効なトークンです")
				return
			}

			granted := Scope(claims.Scope)
			if granted != scope && !(scope == ScopeView && granted == ScopeEdit) {
				h.errorResponse(w, r, "編集ロックが解除されていません")
				return
			}

			ctx := context.WithValue(r.Context(), ScopeCtxKey, granted)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
