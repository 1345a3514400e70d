package repository

import "context"

type operatorKey struct{}

// WithOperator records who is acting, for the local sale journal.
func WithOperator(ctx context.Context, operator string) context.Context {
	if operator == "" {
		return ctx
	}
	return context.WithValue(ctx, operatorKey{}, operator)
}

func OperatorFrom(ctx context.Context) string {
	if v, ok := ctx.Value(operatorKey{}).(string); ok {
		return v
	}
	return ""
}
