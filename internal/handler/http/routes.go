package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZipRequest)
	router.Use(middleware.Compress(5, "application/json", "text/plain"))
	if h.timeout > 0 {
		router.Use(middleware.Timeout(h.timeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Get("/api/version/", h.getServerVersion)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/api/categories", func(r chi.Router) {
			r.Get("/", h.listCategories)
			r.Get("/manage", h.listManagedCategories)
			r.Post("/", h.createCategory)
			r.Delete("/{id}", h.deleteCategory)
		})

		r.Route("/api/preferences", func(r chi.Router) {
			r.Put("/", h.savePreferences)
			r.Put("/order", h.reorderCategories)
			r.Patch("/{categoryID}/visibility", h.setVisibility)
		})

		r.Route("/api/recipes", func(r chi.Router) {
			r.Get("/", h.listRecipes)
			r.Post("/", h.createRecipe)
			r.Get("/{id}", h.getRecipe)
			r.Put("/{id}", h.updateRecipe)
			r.Delete("/{id}", h.deleteRecipe)
		})

		r.Route("/api/grocery", func(r chi.Router) {
			r.Get("/", h.listGroceryItems)
			r.Post("/", h.addGroceryItems)
			r.Post("/from-recipe/{id}", h.addGroceryItemsFromRecipe)
			r.Delete("/checked", h.clearCheckedGroceryItems)
			r.Patch("/{id}", h.updateGroceryItem)
			r.Delete("/{id}", h.deleteGroceryItem)
		})

		r.Route("/api/parse", func(r chi.Router) {
			r.Use(h.withRateLimit(h.parseLimiter))
			r.Post("/text", h.parseText)
			r.Post("/url", h.parseURL)
		})
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusNotFound, http.StatusText(http.StatusNotFound))
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
