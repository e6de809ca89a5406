package app

import (
	"log"
	"net/http"
	"os"
	"time"

	"tush00nka/phonebook_messenger/internal/handler"
	"tush00nka/phonebook_messenger/internal/pkg/httputils"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Server struct {
	router *mux.Router
}

func NewServer(gateway *handler.Gateway) *Server {
	router := mux.NewRouter()

	router.HandleFunc("/ping", handler.Ping).Methods("GET")

	// OPTIONS обрабатывает сам Endpoint
	for name, endpoint := range gateway.Endpoints() {
		router.Handle("/"+name, httputils.ServeGateway(endpoint.Handle))
	}

	// Настройка Swagger
	swaggerHandler := httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"), // Важно: относительный путь
	)
	router.PathPrefix("/swagger/").Handler(swaggerHandler)

	return &Server{router: router}
}

func (s *Server) Handler() http.Handler {
	return handlers.RecoveryHandler(handlers.PrintRecoveryStack(true))(
		handlers.CombinedLoggingHandler(os.Stdout, s.router),
	)
}

func (s *Server) Run(port string) error {
	srv := &http.Server{
		Handler:      s.Handler(),
		Addr:         ":" + port,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	log.Printf("Server starting on port %s", port)
	return srv.ListenAndServe()
}
