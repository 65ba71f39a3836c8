// Package server implements the HTTP schema-validation service described
// in SPEC_FULL §11.2: a thin embedding of the sdlparse core behind a
// go-chi router, modeled on the teacher's server/server.go +
// server/endpoints.go + server/middle wiring (bearer-JWT auth over a
// bcrypt-hashed, sqlite-backed credential store, uuid request IDs, and a
// sqlite-backed parse cache).
package server

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dekarrin/sdlparse"
	"github.com/dekarrin/sdlparse/diag"
	"github.com/dekarrin/sdlparse/server/cache"
)

// Server holds everything the validation API needs: a parse-result cache,
// a credential store layered on the same database, and the secret used to
// sign/verify bearer tokens.
type Server struct {
	router http.Handler
	cache  *cache.Cache
	creds  *Credentials
	secret []byte
}

// New opens (or creates) a sqlite database at dbFile holding both the
// credentials table and the parse cache, and builds the router.
func New(dbFile string, secret []byte) (*Server, error) {
	c, err := cache.Open(dbFile)
	if err != nil {
		return nil, err
	}

	creds, err := NewCredentials(c.DB())
	if err != nil {
		return nil, err
	}

	s := &Server{cache: c, creds: creds, secret: secret}
	s.router = s.routes()
	return s, nil
}

// Close releases the underlying database handle.
func (s *Server) Close() error {
	return s.cache.Close()
}

// ServeHTTP makes Server an http.Handler directly, so it can be passed to
// http.ListenAndServe or a test httptest.Server without an extra wrapper.
func (s *Server) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	s.router.ServeHTTP(w, req)
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(stampRequestID)
	r.Use(recoverPanic)

	r.Get("/v1/healthz", s.handleHealthz)
	r.Post("/v1/login", s.handleLogin)

	r.Group(func(r chi.Router) {
		r.Use(requireAuth(s.secret, s.creds))
		r.Post("/v1/parse", s.handleParse)
	})

	return r
}

// loginRequest is the body of POST /v1/login.
type loginRequest struct {
	APIKey string `json:"api_key"`
}

type loginResponse struct {
	RequestID string `json:"request_id"`
	Token     string `json:"token"`
}

func (s *Server) handleLogin(w http.ResponseWriter, req *http.Request) {
	requestID := req.Context().Value(ctxRequestID).(string)

	var body loginRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil || body.APIKey == "" {
		jsonBadRequest(requestID, "api_key is required", "malformed login body").writeResponse(w, req, requestID)
		return
	}

	id, err := s.creds.Authenticate(req.Context(), body.APIKey)
	if err != nil {
		jsonUnauthorized(requestID, "", err.Error()).writeResponse(w, req, requestID)
		return
	}

	tok, err := generateJWT(s.secret, id)
	if err != nil {
		jsonInternalServerError(requestID, "generate jwt: "+err.Error()).writeResponse(w, req, requestID)
		return
	}

	jsonOK(loginResponse{RequestID: requestID, Token: tok}, "credential logged in").
		writeResponse(w, req, requestID)
}

func (s *Server) handleHealthz(w http.ResponseWriter, req *http.Request) {
	requestID, _ := req.Context().Value(ctxRequestID).(string)
	jsonOK(map[string]string{"status": "ok"}, "healthz").writeResponse(w, req, requestID)
}

// parseResponse is the JSON body of a successful POST /v1/parse.
type parseResponse struct {
	RequestID       string      `json:"request_id"`
	Errors          []errorJSON `json:"errors"`
	DefinitionCount int         `json:"definition_count"`
	Cached          bool        `json:"cached"`
}

type errorJSON struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
	Offset  uint32 `json:"offset"`
	Length  uint32 `json:"length"`
}

// handleParse parses the request body as schema/query source, caching the
// diagnostics so an identical body does not get re-parsed (SPEC_FULL
// §11.2).
func (s *Server) handleParse(w http.ResponseWriter, req *http.Request) {
	requestID := req.Context().Value(ctxRequestID).(string)

	body, err := io.ReadAll(req.Body)
	if err != nil {
		jsonBadRequest(requestID, "could not read request body", err.Error()).writeResponse(w, req, requestID)
		return
	}
	source := string(body)

	if cached, err := s.cache.Get(req.Context(), source); err == nil {
		writeParseResponse(w, req, requestID, cached, 0, true)
		return
	}

	tree := sdlparse.Parse(source)
	errs := tree.Errors()

	if err := s.cache.Put(req.Context(), source, errs); err != nil {
		log.Printf("WARN [%s] could not cache parse result: %v", requestID, err)
	}

	writeParseResponse(w, req, requestID, errs, len(tree.Document().Definitions()), false)
}

func writeParseResponse(w http.ResponseWriter, req *http.Request, requestID string, errs []diag.Error, defCount int, cached bool) {
	resp := parseResponse{
		RequestID:       requestID,
		Errors:          make([]errorJSON, len(errs)),
		DefinitionCount: defCount,
		Cached:          cached,
	}
	for i, e := range errs {
		resp.Errors[i] = errorJSON{Kind: e.Kind.String(), Message: e.Message, Offset: e.Offset, Length: e.Length}
	}
	jsonOK(resp, "parsed source").writeResponse(w, req, requestID)
}
