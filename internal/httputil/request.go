package httputil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"jotdown/internal/config"
)

// ParseJSON decodes JSON from the request body into the given destination.
// The body size is capped so a single request cannot exhaust memory.
func ParseJSON(w http.ResponseWriter, r *http.Request, dest interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, config.MaxRequestBodyBytes)

	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	return nil
}

// ParseID parses the {id} path value of the request as an int64
func ParseID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", r.PathValue("id"))
	}
	return id, nil
}
