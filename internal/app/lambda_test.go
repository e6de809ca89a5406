package app

import (
	"context"
	"net/http"
	"testing"

	"tush00nka/phonebook_messenger/internal/pkg/testdb"

	"github.com/aws/aws-lambda-go/events"
	"golang.org/x/crypto/bcrypt"
)

func TestLambdaDispatch(t *testing.T) {
	gateway := BuildGateway(testdb.New(t), Options{BcryptCost: bcrypt.MinCost})
	ctx := context.Background()

	byPath := NewLambdaHandler(gateway, "")

	resp, err := byPath(ctx, events.APIGatewayProxyRequest{HTTPMethod: "OPTIONS", Path: "/contacts"})
	if err != nil {
		t.Fatal(err)
	}
	if resp.Headers["Access-Control-Allow-Methods"] != "GET, POST, OPTIONS" {
		t.Errorf("contacts preflight = %v", resp.Headers)
	}

	resp, _ = byPath(ctx, events.APIGatewayProxyRequest{HTTPMethod: "GET", Path: "/unknown/x"})
	if resp.StatusCode != http.StatusNotFound || resp.Body != `{"error":"Not found"}` {
		t.Errorf("unknown path = %d %s", resp.StatusCode, resp.Body)
	}

	pinned := NewLambdaHandler(gateway, "auth")
	resp, _ = pinned(ctx, events.APIGatewayProxyRequest{
		HTTPMethod: "POST",
		Path:       "/anything",
		Body:       `{"action":"register","phone":"+1","password":"p"}`,
	})
	if resp.StatusCode != http.StatusOK {
		t.Errorf("pinned register = %d %s", resp.StatusCode, resp.Body)
	}
}
