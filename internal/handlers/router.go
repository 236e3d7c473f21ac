package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"humspot-backend/internal/config"
	"humspot-backend/internal/middleware"
	"humspot-backend/internal/query"
	"humspot-backend/internal/repository"
)

// NewRouter wires every endpoint over a single executor
func NewRouter(cors config.CORSConfig, exec *query.Executor, presigner Presigner) http.Handler {
	activityHandler := NewActivityHandler(repository.NewActivityRepository(exec), repository.NewRatingRepository(exec))
	commentHandler := NewCommentHandler(repository.NewCommentRepository(exec))
	eventHandler := NewEventHandler(repository.NewEventRepository(exec))
	userHandler := NewUserHandler(repository.NewUserRepository(exec), repository.NewBlockRepository(exec))
	uploadHandler := NewUploadHandler(presigner)

	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recover)
	r.Use(middleware.CORSHandler(cors))

	r.NotFound(NotFound)
	r.MethodNotAllowed(MethodNotAllowed)

	r.Get("/health", Health(exec))

	r.Get("/submissions/{userID}/{page}", activityHandler.ListSubmissions)
	r.Get("/search/", activityHandler.Search)
	r.Get("/search/{queryString}", activityHandler.Search)
	r.Get("/ratings/{activityID}/{userID}", activityHandler.GetRating)
	r.Post("/rate-activity", activityHandler.Rate)

	r.Get("/comments/{activityID}/{page}", commentHandler.ListByActivity)
	r.Get("/user-comments/{userID}/{page}", commentHandler.ListByUser)
	r.Post("/add-comment", commentHandler.Add)
	r.Post("/delete-comment", commentHandler.Delete)

	r.Get("/events/tag/{tag}/{page}", eventHandler.ListByTag)
	r.Get("/events/", eventHandler.Get)
	r.Get("/events/{eventID}", eventHandler.Get)

	r.Get("/users/", userHandler.Get)
	r.Get("/users/{userID}", userHandler.Get)
	r.Post("/update-profile-photo", userHandler.UpdateProfilePhoto)
	r.Post("/block-user", userHandler.Block)
	r.Post("/unblock-user", userHandler.Unblock)
	r.Get("/is-user-blocked/{blockerUserID}/{blockedUserID}", userHandler.IsBlocked)

	r.Post("/upload-url", uploadHandler.UploadURL)

	return r
}
