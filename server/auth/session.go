package auth

import (
	"context"
	"net/http"

	"github.com/uvaheesara/archery-tools/server/database"
)

type sessionKey struct{}

var sessionContextKey = &sessionKey{}

func SetSession(ctx context.Context, session database.Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, session)
}

func GetSession(r *http.Request) database.Session {
	return r.Context().Value(sessionContextKey).(database.Session)
}
