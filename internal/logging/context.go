package logging

import (
	"context"
	"slices"
)

type fieldsKey struct{}

// ContextWith returns a copy of ctx carrying key-value pairs that every
// backend appends to records logged with that context.
func ContextWith(ctx context.Context, args ...any) context.Context {
	prev, _ := ctx.Value(fieldsKey{}).([]any)
	return context.WithValue(ctx, fieldsKey{}, append(slices.Clip(prev), args...))
}

// withContext appends the pairs stored in ctx to args.
func withContext(ctx context.Context, args []any) []any {
	if ctx == nil {
		return args
	}
	extra, _ := ctx.Value(fieldsKey{}).([]any)
	if len(extra) == 0 {
		return args
	}
	return append(slices.Clip(args), extra...)
}
