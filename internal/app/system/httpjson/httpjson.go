// internal/app/system/httpjson/httpjson.go

// Package httpjson holds the small request/response helpers shared by
// the JSON feature handlers: body decoding with a size cap, response
// writing, and the mapping from the apperr taxonomy to HTTP status
// codes.
package httpjson

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dalemusser/hostelhub/internal/app/system/apperr"
	"go.uber.org/zap"
)

// maxBodyBytes caps JSON request bodies. Application payloads are small
// form-shaped documents; anything near this limit is malformed input.
const maxBodyBytes = 1 << 20 // 1 MiB

// errorBody is the JSON shape for all error responses.
type errorBody struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

// Decode reads the request body into dst. A failure is a caller error,
// reported as a ValidationError so it maps to 400 via Error below.
func Decode(r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(nil, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return apperr.Validation("body", "invalid JSON: "+err.Error())
	}
	return nil
}

// Write encodes v as the response with the given status code.
func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error maps err onto the wire: ValidationError → 400, NotFoundError →
// 404, ConflictError → 409, anything else → 500 with a generic message
// (internal detail goes to the log, not the client).
func Error(w http.ResponseWriter, log *zap.Logger, err error) {
	var (
		ve *apperr.ValidationError
		nf *apperr.NotFoundError
		ce *apperr.ConflictError
	)
	switch {
	case errors.As(err, &ve):
		Write(w, http.StatusBadRequest, errorBody{Error: ve.Error(), Kind: "validation"})
	case errors.As(err, &nf):
		Write(w, http.StatusNotFound, errorBody{Error: nf.Error(), Kind: "not_found"})
	case errors.As(err, &ce):
		Write(w, http.StatusConflict, errorBody{Error: ce.Error(), Kind: "conflict"})
	default:
		if log != nil {
			log.Error("internal error", zap.Error(err))
		}
		Write(w, http.StatusInternalServerError, errorBody{Error: "internal error", Kind: "internal"})
	}
}
