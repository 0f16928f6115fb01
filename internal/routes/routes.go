package routes

import (
	"videoteca-backend/internal/handlers"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Auth     *handlers.AuthHandler
	Movie    *handlers.MovieHandler
	Genre    *handlers.GenreHandler
	User     *handlers.UserHandler
	External *handlers.ExternalHandler
	Upload   *handlers.UploadHandler
}

func Setup(app *fiber.App, h Handlers) {
	api := app.Group("/api")

	// Session routes
	auth := api.Group("/auth")
	{
		auth.Post("/login", h.Auth.Login)
		auth.Post("/logout", h.Auth.Logout)
		auth.Get("/session", h.Auth.GetSession)
	}

	// Catalog routes
	filmes := api.Group("/filmes")
	{
		filmes.Get("/", h.Movie.GetMovies)
		filmes.Get("/generate-code", h.Movie.GenerateCode)
		filmes.Get("/stats", h.Movie.GetStats)
		filmes.Get("/:id", h.Movie.GetMovie)
		filmes.Post("/", h.Movie.CreateMovie)
		filmes.Put("/:id", h.Movie.UpdateMovie)
		filmes.Delete("/:id", h.Movie.DeleteMovie)
		filmes.Post("/:id/watched", h.Movie.ToggleWatched)
	}

	// Genre taxonomy routes
	generos := api.Group("/generos")
	{
		generos.Get("/", h.Genre.GetGenres)
		generos.Post("/", h.Genre.CreateGenre)
		generos.Put("/:id", h.Genre.UpdateGenre)
		generos.Delete("/:id", h.Genre.DeleteGenre)
	}

	// Account management routes - admin gated by the access middleware
	users := api.Group("/users")
	{
		users.Get("/", h.User.GetUsers)
		users.Post("/", h.User.CreateUser)
		users.Post("/create-admin", h.User.CreateAdmin)
		users.Get("/:id", h.User.GetUser)
		users.Put("/:id", h.User.UpdateUser)
		users.Delete("/:id", h.User.DeleteUser)
	}

	// External metadata proxies
	tmdb := api.Group("/tmdb")
	{
		tmdb.Get("/search", h.External.SearchTMDB)
		tmdb.Get("/movie/:id", h.External.GetTMDBMovie)
	}
	api.Get("/youtube/search", h.External.SearchYouTube)

	// Cover image uploads
	api.Get("/upload/presign", h.Upload.PresignCoverUpload)
}
