// Package httpx writes the API response envelope. Domain code never touches
// it; only the boundary layer shapes results through here.
package httpx

import (
	"encoding/json"
	"net/http"
)

type Envelope struct {
	Status  string   `json:"status"`
	Message []string `json:"message"`
	Data    any      `json:"data"`
}

// ToEnvelope is the single shaping function for all responses.
func ToEnvelope(status string, messages []string, data any) Envelope {
	if messages == nil {
		messages = []string{}
	}
	return Envelope{Status: status, Message: messages, Data: data}
}

func JSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	body, err := json.Marshal(payload)
	if err != nil {
		// best-effort error response; avoid writing partial JSON
		http.Error(w, `{"status":"Error","message":["encode error"],"data":null}`, http.StatusInternalServerError)
		return
	}
	w.WriteHeader(code)
	_, _ = w.Write(body)
}

func Success(w http.ResponseWriter, code int, msg string, data any) {
	JSON(w, code, ToEnvelope("Success", []string{msg}, data))
}

func Error(w http.ResponseWriter, code int, msg string) {
	JSON(w, code, ToEnvelope("Error", []string{msg}, nil))
}

// ValidationError renders 422 with the field violations map as data.
func ValidationError(w http.ResponseWriter, fields map[string][]string) {
	JSON(w, http.StatusUnprocessableEntity, ToEnvelope("Error", []string{"Validation Error"}, fields))
}
