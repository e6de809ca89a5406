package app

import (
	"context"
	"net/http"
	"strings"

	"tush00nka/phonebook_messenger/internal/handler"
	"tush00nka/phonebook_messenger/internal/pkg/httputils"

	"github.com/aws/aws-lambda-go/events"
)

type LambdaHandler func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

// NewLambdaHandler serves capability when it is set, otherwise the endpoint
// named by the first segment of the request path.
func NewLambdaHandler(gateway *handler.Gateway, capability string) LambdaHandler {
	endpoints := gateway.Endpoints()

	return func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		name := capability
		if name == "" {
			name = firstSegment(req.Path)
		}

		endpoint, ok := endpoints[name]
		if !ok {
			return httputils.ResponseError(http.StatusNotFound, "Not found"), nil
		}
		return endpoint.Handle(ctx, req), nil
	}
}

func firstSegment(path string) string {
	segment, _, _ := strings.Cut(strings.Trim(path, "/"), "/")
	return segment
}
