// @title Phonebook Messenger
// @version 0.1
// @description Регистрация по номеру телефона, контакты и переписка.

// @host localhost:8080
// @BasePath /
// @query.collection.format multi
// @schemes http

package main

import (
	"log"

	_ "tush00nka/phonebook_messenger/docs"
	"tush00nka/phonebook_messenger/internal/app"
	"tush00nka/phonebook_messenger/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	app.Run(cfg)
}
