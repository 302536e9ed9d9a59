package audit

import "context"

// usernameHolder is a slot the request-logging middleware installs before
// authentication runs. Auth middleware fills it once a credential resolves,
// so the outer middleware can attribute the request after the fact. Requests
// that never resolve an identity leave it empty.
type usernameHolder struct {
	username *string
}

type ctxKey string

const holderKey ctxKey = "auditUsername"

func WithHolder(ctx context.Context) context.Context {
	return context.WithValue(ctx, holderKey, &usernameHolder{})
}

// HasHolder reports whether an enclosing middleware already installed the
// slot, meaning this request is being recorded.
func HasHolder(ctx context.Context) bool {
	_, ok := ctx.Value(holderKey).(*usernameHolder)
	return ok
}

func SetUsername(ctx context.Context, username string) {
	if h, ok := ctx.Value(holderKey).(*usernameHolder); ok {
		h.username = &username
	}
}

// Username returns the resolved username for the request, or nil.
func Username(ctx context.Context) *string {
	if h, ok := ctx.Value(holderKey).(*usernameHolder); ok {
		return h.username
	}
	return nil
}
