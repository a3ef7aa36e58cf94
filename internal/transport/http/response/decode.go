package response

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/baechuer/board-service/internal/domain"
)

// MaxBodyBytes caps request bodies read by DecodeJSON.
const MaxBodyBytes = 1 << 20

// DecodeJSON decodes a JSON request body into dst.
// An empty body, malformed JSON, a type mismatch or multiple JSON values all
// become a generic VALIDATION_FAILED error. Decoding `null` into a pointer
// leaves it nil; callers treat that as an absent request.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	body := io.Reader(r.Body)
	if w != nil {
		body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	}
	dec := json.NewDecoder(body)

	if err := dec.Decode(dst); err != nil {
		return domain.ErrInvalidJSON(err)
	}

	// Disallow trailing data: {}{}
	// Decode one more time; it must be EOF.
	if err := dec.Decode(&struct{}{}); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return domain.ErrInvalidJSON(err)
	}

	return domain.ErrInvalidJSON(errors.New("multiple JSON values"))
}
