package auth

import "context"

type identityKey struct{}

// WithIdentity attaches verified claims to a request context.
func WithIdentity(ctx context.Context, claims Claims) context.Context {
	return context.WithValue(ctx, identityKey{}, claims)
}

// IdentityFrom returns the claims attached by the access-control middleware.
func IdentityFrom(ctx context.Context) (Claims, bool) {
	claims, ok := ctx.Value(identityKey{}).(Claims)
	return claims, ok
}
