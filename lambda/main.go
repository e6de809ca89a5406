package main

import (
	"context"
	"log"

	"tush00nka/phonebook_messenger/internal/app"
	"tush00nka/phonebook_messenger/internal/config"

	"github.com/aws/aws-lambda-go/lambda"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	gateway, cleanup, err := app.Setup(context.Background(), cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer cleanup()

	lambda.Start(app.NewLambdaHandler(gateway, cfg.LambdaCapability))
}
