package refdata

import "github.com/go-chi/chi/v5"

// Routes mounts the catalog API under the base path
// (typically "/api/refdata" from bootstrap).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServeList)
	r.Post("/", h.HandleReplace)
	r.Post("/upload", h.HandleUpload)
	r.Get("/options", h.ServeOptions)

	return r
}
