// Middleware for the validation API, grounded on the teacher's
// server/middle package: an http.Handler wrapper that extracts the bearer
// token, validates it, and stamps the request context, plus a recover-based
// panic guard (server/middle/middle.go's AuthHandler/DontPanic).
package server

import (
	"context"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
)

// ctxKey is a private context-key type, the same pattern middle.AuthKey
// uses to avoid collisions with keys set by other packages.
type ctxKey int

const (
	ctxRequestID ctxKey = iota
	ctxCredentialID
)

// unauthDelay is slept before each 401 that requireAuth writes, the same
// deprioritization tactic Endpoint applies in the teacher
// (server/endpoints.go). handleLogin writes its 401 without this delay.
const unauthDelay = 250 * time.Millisecond

// requireAuth returns middleware that validates the request's bearer JWT
// against secret and creds, rejecting the request with 401 if it is
// missing, malformed, or names a credential that no longer exists.
func requireAuth(secret []byte, creds *Credentials) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			requestID := req.Context().Value(ctxRequestID).(string)

			tok, err := getBearerToken(req)
			if err != nil {
				time.Sleep(unauthDelay)
				jsonUnauthorized(requestID, "", err.Error()).writeResponse(w, req, requestID)
				return
			}

			id, err := validateAndLookupCredential(req.Context(), tok, secret, creds)
			if err != nil {
				time.Sleep(unauthDelay)
				jsonUnauthorized(requestID, "", err.Error()).writeResponse(w, req, requestID)
				return
			}

			ctx := context.WithValue(req.Context(), ctxCredentialID, id)
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	}
}

// stampRequestID assigns every request a uuid for log correlation
// (SPEC_FULL §11.2), returned to the client via the X-Request-Id header by
// writeResponse.
func stampRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		id := uuid.New().String()
		ctx := context.WithValue(req.Context(), ctxRequestID, id)
		next.ServeHTTP(w, req.WithContext(ctx))
	})
}

// recoverPanic mirrors the teacher's middle.DontPanic: a request handler
// panic becomes a logged HTTP-500 instead of crashing the server.
func recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		requestID, _ := req.Context().Value(ctxRequestID).(string)
		defer func() {
			if rec := recover(); rec != nil {
				jsonInternalServerError(requestID, "panic: "+debugStack(rec)).writeResponse(w, req, requestID)
			}
		}()
		next.ServeHTTP(w, req)
	})
}

func debugStack(rec interface{}) string {
	return fmtPanic(rec) + "\n" + string(debug.Stack())
}

func fmtPanic(rec interface{}) string {
	if err, ok := rec.(error); ok {
		return err.Error()
	}
	return "panic"
}
