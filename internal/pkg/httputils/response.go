package httputils

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// GatewayFunc handles one API Gateway proxy request.
type GatewayFunc func(ctx context.Context, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse

func ResponseError(statusCode int, errorMessage string) events.APIGatewayProxyResponse {
	return ResponseJSON(statusCode, ErrorResponse{Error: errorMessage})
}

func ResponseJSON(statusCode int, data interface{}) events.APIGatewayProxyResponse {
	body, err := json.Marshal(data)
	if err != nil {
		log.Printf("Failed to encode JSON response: %v", err)
		statusCode = http.StatusInternalServerError
		body = []byte(`{"error":"Internal server error"}`)
	}

	return events.APIGatewayProxyResponse{
		StatusCode: statusCode,
		Headers: map[string]string{
			"Content-Type":                "application/json",
			"Access-Control-Allow-Origin": "*",
		},
		Body:            string(body),
		IsBase64Encoded: false,
	}
}

// Preflight answers a CORS OPTIONS request with an empty body.
func Preflight(methods string) events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusOK,
		Headers: map[string]string{
			"Access-Control-Allow-Origin":  "*",
			"Access-Control-Allow-Methods": methods,
			"Access-Control-Allow-Headers": "Content-Type, X-User-Id",
			"Access-Control-Max-Age":       "86400",
		},
		Body:            "",
		IsBase64Encoded: false,
	}
}

// DecodeBody unmarshals the request body into v. An empty body decodes as {}.
func DecodeBody(req events.APIGatewayProxyRequest, v interface{}) error {
	body := []byte(req.Body)
	if req.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(req.Body)
		if err != nil {
			return err
		}
		body = decoded
	}
	if len(body) == 0 {
		body = []byte("{}")
	}
	return json.Unmarshal(body, v)
}

// WriteJSON writes data straight to a net/http response.
func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Failed to encode JSON response: %v", err)
	}
}

// ServeGateway exposes a GatewayFunc as a net/http handler.
func ServeGateway(fn GatewayFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			writeResponse(w, ResponseError(http.StatusBadRequest, "Invalid request format"))
			return
		}
		r.Body.Close()

		writeResponse(w, fn(r.Context(), NewProxyRequest(r, body)))
	}
}

// NewProxyRequest converts an HTTP request into the API Gateway proxy shape.
// Only the first value of a repeated query parameter is kept.
func NewProxyRequest(r *http.Request, body []byte) events.APIGatewayProxyRequest {
	query := map[string]string{}
	for key, values := range r.URL.Query() {
		if len(values) > 0 {
			query[key] = values[0]
		}
	}

	headers := map[string]string{}
	for key := range r.Header {
		headers[key] = r.Header.Get(key)
	}

	return events.APIGatewayProxyRequest{
		HTTPMethod:            r.Method,
		Path:                  r.URL.Path,
		Headers:               headers,
		QueryStringParameters: query,
		Body:                  string(body),
	}
}

func writeResponse(w http.ResponseWriter, resp events.APIGatewayProxyResponse) {
	for key, value := range resp.Headers {
		w.Header().Set(key, value)
	}
	w.WriteHeader(resp.StatusCode)

	body := []byte(resp.Body)
	if resp.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(resp.Body)
		if err != nil {
			log.Printf("Failed to decode response body: %v", err)
			return
		}
		body = decoded
	}
	if _, err := w.Write(body); err != nil {
		log.Printf("Failed to write response: %v", err)
	}
}
