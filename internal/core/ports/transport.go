package ports

import "context"

// Transport abstracts the HTTP layer the stores talk through. The concrete
// implementation (infrastructure/api) owns auth-header injection, endpoint
// fallback and the error taxonomy; stores only ever see raw response bodies
// or a domain error.
type Transport interface {
	Get(ctx context.Context, path string, query map[string]string) ([]byte, error)
	Post(ctx context.Context, path string, body any) ([]byte, error)
	Put(ctx context.Context, path string, body any) ([]byte, error)
	Delete(ctx context.Context, path string) ([]byte, error)
}

// TokenStore persists the bearer token between sessions.
type TokenStore interface {
	// Token returns the stored token, or "" when none is present.
	Token() string
	Save(token string) error
	Clear() error
}
