package httpx

import "net/http"

// UIHandlers serves the pages that need no domain service.
type UIHandlers struct {
	Renderer *TemplateRenderer
}

// Home renders the landing page.
// GET /.
func (h *UIHandlers) Home(w http.ResponseWriter, r *http.Request) {
	data := basePageData(r, PageMeta{Title: "Pet Clinic", CurrentPage: PageHome})
	if err := h.Renderer.RenderPage(w, "home", data); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// NotFound renders the 404 page.
func (h *UIHandlers) NotFound(w http.ResponseWriter, r *http.Request) {
	data := basePageData(r, PageMeta{Title: "Not Found", CurrentPage: PageNotFound})
	data["Message"] = "The page you are looking for does not exist."
	_ = h.Renderer.RenderError(w, http.StatusNotFound, data)
}
