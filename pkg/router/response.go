package router

import (
	"encoding/json"
	"net/http"
)

const (
	HeaderContentType     = "Content-Type"
	HeaderAllowOrigin     = "Access-Control-Allow-Origin"
	HeaderAllowHeaders    = "Access-Control-Allow-Headers"
	HeaderAllowMethods    = "Access-Control-Allow-Methods"
	contentTypeJSON       = "application/json"
	preflightAllowHeaders = "Content-Type,X-Amz-Date,Authorization,X-Api-Key,X-Amz-Security-Token"
	preflightAllowMethods = "GET,POST,PUT,DELETE,OPTIONS"
)

type errorBody struct {
	Error string `json:"error"`
}

type messageBody struct {
	Message string `json:"message"`
}

func baseHeaders() map[string]string {
	return map[string]string{
		HeaderContentType: contentTypeJSON,
		HeaderAllowOrigin: "*",
	}
}

// JSON serializa o payload com os headers padrão (Content-Type e CORS).
func JSON(status int, payload interface{}) Response {
	body, err := json.Marshal(payload)
	if err != nil {
		return Error(http.StatusInternalServerError, "Failed to encode response: "+err.Error())
	}
	return Response{
		StatusCode: status,
		Headers:    baseHeaders(),
		Body:       string(body),
	}
}

// Error monta o envelope {"error": msg}.
func Error(status int, msg string) Response {
	// errorBody só tem string, Marshal não falha
	body, _ := json.Marshal(errorBody{Error: msg})
	return Response{
		StatusCode: status,
		Headers:    baseHeaders(),
		Body:       string(body),
	}
}

// Preflight responde o OPTIONS do navegador.
func Preflight() Response {
	resp := JSON(http.StatusOK, messageBody{Message: "OK"})
	resp.Headers[HeaderAllowHeaders] = preflightAllowHeaders
	resp.Headers[HeaderAllowMethods] = preflightAllowMethods
	return resp
}
