package handler

import (
	"log"
	"net/http"
	"sync"

	"github.com/amirasaad/networth/infra/initializer"
	"github.com/amirasaad/networth/pkg/app"
	"github.com/amirasaad/networth/pkg/config"
	"github.com/amirasaad/networth/webapi"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
)

var (
	once sync.Once
	h    http.HandlerFunc
)

// Handler is the serverless entry point. The application is built on the
// first request and reused by the warm instance afterwards.
func Handler(w http.ResponseWriter, r *http.Request) {
	// This is needed to set the proper request path in `*fiber.Ctx`
	r.RequestURI = r.URL.String()

	once.Do(func() { h = handler() })
	h.ServeHTTP(w, r)
}

// building the fiber application
func handler() http.HandlerFunc {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load application configuration: %v", err)
	}
	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		log.Fatalf("failed to initialize dependencies: %v", err)
	}
	a, err := app.New(deps, cfg)
	if err != nil {
		log.Fatalf("failed to build application: %v", err)
	}
	return adaptor.FiberApp(webapi.SetupApp(a))
}
