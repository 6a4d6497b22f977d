package middleware

import (
	"net"
	"net/http"

	"github.com/heartmarshall/catgateway/pkg/ctxutil"
)

// ClientKey stores the remote host of the connection in the context. It keys
// rate limits for anonymous callers.
func ClientKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.RemoteAddr
		if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
			key = host
		}
		next.ServeHTTP(w, r.WithContext(ctxutil.WithClientKey(r.Context(), key)))
	})
}
