// JWT issuance and validation, grounded on the teacher's server/token.go.
// Unlike the teacher (whose sign key is salted with the user's password hash
// and last-logout time so old tokens die on password change), this service
// has no password-change concept, so the sign key is just the shared secret;
// revocation happens by deleting the credential row, which Exists re-checks
// on every request.
package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const jwtIssuer = "sdlparse-server"

// generateJWT issues a bearer token for the credential identified by id,
// valid for one hour.
func generateJWT(secret []byte, id uuid.UUID) (string, error) {
	claims := jwt.MapClaims{
		"iss": jwtIssuer,
		"sub": id.String(),
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	return tok.SignedString(secret)
}

// validateAndLookupCredential parses and validates tok, then confirms the
// credential it names still exists.
func validateAndLookupCredential(ctx context.Context, tok string, secret []byte, creds *Credentials) (uuid.UUID, error) {
	parsed, err := jwt.Parse(tok, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS512.Alg()}), jwt.WithIssuer(jwtIssuer), jwt.WithLeeway(time.Minute))
	if err != nil {
		return uuid.UUID{}, err
	}

	subj, err := parsed.Claims.GetSubject()
	if err != nil {
		return uuid.UUID{}, fmt.Errorf("cannot get subject: %w", err)
	}

	id, err := uuid.Parse(subj)
	if err != nil {
		return uuid.UUID{}, fmt.Errorf("cannot parse subject UUID: %w", err)
	}

	ok, err := creds.Exists(ctx, id)
	if err != nil {
		return uuid.UUID{}, err
	}
	if !ok {
		return uuid.UUID{}, fmt.Errorf("subject does not exist")
	}

	return id, nil
}

// getBearerToken extracts the token from a "Bearer <token>" Authorization
// header, the same parsing the teacher's getJWT does.
func getBearerToken(req *http.Request) (string, error) {
	authHeader := strings.TrimSpace(req.Header.Get("Authorization"))
	if authHeader == "" {
		return "", fmt.Errorf("no authorization header present")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return "", fmt.Errorf("authorization header not in Bearer format")
	}

	scheme := strings.TrimSpace(strings.ToLower(parts[0]))
	token := strings.TrimSpace(parts[1])
	if scheme != "bearer" {
		return "", fmt.Errorf("authorization header not in Bearer format")
	}

	return token, nil
}
