package httputil

import (
	"encoding/json"
	"net/http"
)

// JSON writes v with the given status. Encoding failures are ignored;
// by then the status line is already on the wire.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Fail writes the uniform {success:false, message} failure body.
func Fail(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]any{
		"success": false,
		"message": message,
	})
}
