package helpers

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse — единый формат ошибок API: {"message": "..."}.
type ErrorResponse struct {
	Message string `json:"message"`
}

func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		return
	}
}

func Error(w http.ResponseWriter, status int, errMsg string) {
	JSON(w, status, ErrorResponse{Message: errMsg})
}

// Message — успешный ответ вида {"message": "..."}.
func Message(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, ErrorResponse{Message: msg})
}
