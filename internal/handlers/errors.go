package handlers

import (
	"net/http"
)

// NotFoundHandler serves the JSON 404 for unmatched routes.
func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "endpoint not found")
}
