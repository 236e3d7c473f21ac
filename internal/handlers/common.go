package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"humspot-backend/internal/apperror"
	"humspot-backend/internal/validator"
)

// maxBodyBytes caps JSON request bodies
const maxBodyBytes = 1 << 20

// endpoint is one request handler: bind the input, validate it, run a single
// operation against the store, and answer with the envelope
// {message, success, <payload fields>}.
//
// The payload func lays Out into the envelope. On failure it is called with the
// zero Out, so every field present on success is present, empty, on failure.
type endpoint[In, Out any] struct {
	name    string
	message string
	bind    func(*http.Request) (In, error)
	run     func(context.Context, In) (Out, error)
	payload func(Out) map[string]any
}

func (e endpoint[In, Out]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	in, err := e.bind(r)
	if err == nil {
		err = validator.Check(in)
	}
	if err != nil {
		e.fail(w, r, err)
		return
	}

	out, err := e.run(r.Context(), in)
	if err != nil {
		e.fail(w, r, err)
		return
	}

	respond(w, http.StatusOK, e.envelope(e.message, true, out))
}

func (e endpoint[In, Out]) fail(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := apperror.Status(err)

	ev := log.Debug()
	if status >= http.StatusInternalServerError {
		ev = log.Error()
	}
	ev.Err(err).
		Str("operation", e.name).
		Str("request_id", chiMiddleware.GetReqID(r.Context())).
		Int("status", status).
		Msg("Request failed")

	var zero Out
	respond(w, status, e.envelope(msg, false, zero))
}

func (e endpoint[In, Out]) envelope(message string, success bool, out Out) map[string]any {
	body := map[string]any{
		"message": message,
		"success": success,
	}
	if e.payload != nil {
		for k, v := range e.payload(out) {
			body[k] = v
		}
	}
	return body
}

// list puts a slice under key, never as null
func list[T any](key string) func([]T) map[string]any {
	return func(items []T) map[string]any {
		if items == nil {
			items = []T{}
		}
		return map[string]any{key: items}
	}
}

// object puts a single entity under key, as {} when absent
func object[T any](key string) func(*T) map[string]any {
	return func(item *T) map[string]any {
		if item == nil {
			return map[string]any{key: struct{}{}}
		}
		return map[string]any{key: item}
	}
}

// value puts a scalar or small struct under key
func value[T any](key string) func(T) map[string]any {
	return func(v T) map[string]any {
		return map[string]any{key: v}
	}
}

// none is the Out of mutations that answer with the bare envelope
type none struct{}

func respond(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("Failed to write response")
	}
}

// NotFound answers unrouted paths with the envelope
func NotFound(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusNotFound, map[string]any{"message": "Resource not found", "success": false})
}

// MethodNotAllowed answers a known path hit with the wrong method
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusMethodNotAllowed, map[string]any{"message": "Method not allowed", "success": false})
}

// decodeBody reads a JSON body into dst
func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(dst); err != nil {
		return apperror.ValidationFailed("body", "Invalid request body")
	}
	return nil
}

// bodyID is an identifier sent in a JSON body as either a string or a number
type bodyID string

func (id *bodyID) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = bodyID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = bodyID(n.String())
	return nil
}
