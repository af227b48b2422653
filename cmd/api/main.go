package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "cinegraph-api/docs" // swagger docs

	"cinegraph-api/internal/config"
	"cinegraph-api/internal/db"
	"cinegraph-api/internal/handler"
	"cinegraph-api/internal/paging"
	"cinegraph-api/internal/repository"
	"cinegraph-api/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title CineGraph API
// @version 1.0
// @description API de lectura sobre el grafo de películas (Neo4j)
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := run(); err != nil {
		log.Fatalf("[api] %v", err)
	}
}

func run() error {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Driver de Neo4j: se construye una vez acá y se inyecta; se cierra
	// en todos los caminos de salida (Close es idempotente).
	graph, err := db.Connect(ctx, cfg)
	if err != nil {
		return err
	}
	defer graph.Close(context.Background())

	// repos
	movieRepo := repository.NewMovieRepository(graph)
	genreRepo := repository.NewGenreRepository(graph)
	personRepo := repository.NewPersonRepository(graph)

	// services (cada uno con su política de orden/paginación)
	movieSvc := service.NewMovieService(movieRepo, paging.NewPolicy("title", paging.MovieSorts, cfg.PageLimitMax))
	genreSvc := service.NewGenreService(genreRepo)
	personSvc := service.NewPersonService(personRepo, paging.NewPolicy("name", paging.PersonSorts, cfg.PageLimitMax))

	// handlers
	movieH := handler.NewMovieHandler(movieSvc)
	genreH := handler.NewGenreHandler(genreSvc)
	personH := handler.NewPersonHandler(personSvc)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", handler.Health)

	// =====================================================
	// Rutas públicas: el token es opcional, solo aporta el
	// userId para marcar favoritos
	// =====================================================
	optAuth := handler.JWTOptional(cfg.JWTSecret)

	r.Group(func(r chi.Router) {
		r.Use(optAuth)

		r.Get("/movies", movieH.List)
		r.Get("/movies/{id}", movieH.Get)
		r.Get("/movies/{id}/similar", movieH.Similar)

		r.Get("/genres", genreH.List)
		r.Get("/genres/{name}", genreH.Get)
		r.Get("/genres/{name}/movies", movieH.ListByGenre)

		r.Get("/people", personH.List)
		r.Get("/people/{id}", personH.Get)
		r.Get("/people/{id}/acted", movieH.ListByActor)
		r.Get("/people/{id}/directed", movieH.ListByDirector)
	})

	// ===========================
	// Rutas protegidas con JWT
	// ===========================
	r.Group(func(r chi.Router) {
		r.Use(handler.JWTAuth(cfg.JWTSecret))

		r.Get("/account/favorites", movieH.Favorites)
	})

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	srv := &http.Server{Addr: ":" + cfg.HTTPPort, Handler: r}

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[http] escuchando en :%s", cfg.HTTPPort)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-sigCtx.Done():
		log.Println("[http] señal recibida, apagando")
		shutCtx, cancelShut := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancelShut()
		if err := srv.Shutdown(shutCtx); err != nil {
			log.Printf("[http] shutdown: %v", err)
		}
	}

	return graph.Close(context.Background())
}
