package utils

import (
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// RespondJSON writes data as a JSON response body.
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logrus.Errorf("failed to encode response, error: %v", err)
	}
}

// RespondError writes an {"error": msg} body with the given status code.
func RespondError(w http.ResponseWriter, status int, msg string) {
	RespondJSON(w, status, map[string]string{"error": msg})
}

// ParseBody decodes a JSON request body into out.
func ParseBody(r *http.Request, out interface{}) error {
	return json.NewDecoder(r.Body).Decode(out)
}

var (
	uidMu   sync.Mutex
	lastUID int64
)

// NewOrderUID returns a unique order token of the form "O<millis>". The
// millisecond clock is bumped past the last issued value so concurrent
// callers within the same millisecond still get distinct tokens.
func NewOrderUID() string {
	uidMu.Lock()
	defer uidMu.Unlock()

	now := time.Now().UnixMilli()
	if now <= lastUID {
		now = lastUID + 1
	}
	lastUID = now

	return "O" + strconv.FormatInt(now, 10)
}
