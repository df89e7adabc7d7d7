package render

import (
	"encoding/json"
	"net/http"
	"strings"
)

type Response struct {
	Status  bool     `json:"status"`
	Message string   `json:"message,omitempty"`
	Page    string   `json:"page"`
	Flashes []string `json:"flashes,omitempty"`
	Data    any      `json:"data,omitempty"`
}

// JSON writes the view as a JSON envelope; useful for API clients and tests.
type JSON struct{}

func (JSON) Render(w http.ResponseWriter, status int, view View) error {
	return ResponseJSON(w, status, Response{
		Status:  status < http.StatusBadRequest,
		Message: strings.Join(view.Flashes, " "),
		Page:    view.Page,
		Flashes: view.Flashes,
		Data:    view.Data,
	})
}

// ResponseJSON writes JSON response with custom status code
func ResponseJSON(w http.ResponseWriter, code int, response Response) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	return json.NewEncoder(w).Encode(response)
}
