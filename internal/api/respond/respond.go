// Package respond writes uniform JSON responses for the HTTP API.
package respond

import (
	"encoding/json"
	"net/http"
)

type envelope struct {
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

func write(w http.ResponseWriter, code int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}

// OK writes a 200 response carrying data.
func OK(w http.ResponseWriter, data interface{}) {
	write(w, http.StatusOK, envelope{Data: data})
}

// Created writes a 201 response carrying data.
func Created(w http.ResponseWriter, data interface{}) {
	write(w, http.StatusCreated, envelope{Data: data})
}

// Fail writes an error response with the given status code.
func Fail(w http.ResponseWriter, code int, err error) {
	write(w, code, envelope{Error: err.Error()})
}
