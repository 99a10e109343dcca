package assessments

import "github.com/go-chi/chi/v5"

// Routes mounts the assessments API under the base path
// (typically "/api/assessments" from bootstrap).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServeList)
	r.Post("/", h.HandleCreate)
	r.Put("/{id}", h.HandleUpdate)
	r.Delete("/{id}", h.HandleDelete)
	r.Get("/export.csv", h.ServeExportCSV)

	return r
}
