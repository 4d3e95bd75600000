package handler

type ContextKey string

var (
	ScopeCtxKey ContextKey = "scope"
)
