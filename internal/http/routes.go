package httpx

import (
	"log/slog"
	"net/http"

	"github.com/anstylian/petclinic/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth         *service.AuthService
	Pets         *service.PetService
	Vets         *service.VetService
	CookieDomain string
	Logger       *slog.Logger
}

// NewRouter creates and configures the HTTP router. The home page, login,
// logout, and health check are public; everything else sits behind the
// session gate.
func NewRouter(services RouterServices) (http.Handler, error) {
	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}

	renderer, err := NewTemplateRenderer(logger)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()

	authHandlers := &AuthHandlers{
		Svc:          services.Auth,
		Renderer:     renderer,
		CookieDomain: services.CookieDomain,
		Logger:       logger,
	}
	petHandlers := &PetHandlers{
		Pets:     services.Pets,
		Vets:     services.Vets,
		Renderer: renderer,
		Logger:   logger,
	}
	vetHandlers := &VetHandlers{
		Vets:     services.Vets,
		Renderer: renderer,
		Logger:   logger,
	}
	uiHandlers := &UIHandlers{Renderer: renderer}

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	mux.HandleFunc("GET /{$}", uiHandlers.Home)
	mux.HandleFunc("GET "+LoginPath, authHandlers.LoginForm)
	mux.HandleFunc("POST "+LoginPath, authHandlers.Login)
	mux.HandleFunc("GET "+LogoutPath, authHandlers.Logout)

	gate := RequireAuth(services.Auth, logger)

	mux.Handle("GET /pets", gate(http.HandlerFunc(petHandlers.List)))
	mux.Handle("GET /pets/new", gate(http.HandlerFunc(petHandlers.NewForm)))
	mux.Handle("GET /pets/{id}", gate(http.HandlerFunc(petHandlers.EditForm)))
	mux.Handle("POST /pets/save", gate(http.HandlerFunc(petHandlers.Save)))
	mux.Handle("GET /pets/delete/{id}", gate(http.HandlerFunc(petHandlers.Delete)))

	mux.Handle("GET /vets", gate(http.HandlerFunc(vetHandlers.List)))
	mux.Handle("GET /vets/new", gate(http.HandlerFunc(vetHandlers.NewForm)))
	mux.Handle("GET /vets/{id}", gate(http.HandlerFunc(vetHandlers.EditForm)))
	mux.Handle("POST /vets/save", gate(http.HandlerFunc(vetHandlers.Save)))
	mux.Handle("GET /vets/delete/{id}", gate(http.HandlerFunc(vetHandlers.Delete)))

	return &notFoundHandler{mux: mux, ui: uiHandlers}, nil
}

// notFoundHandler lets the mux dispatch first, then renders the styled 404
// page for unmatched paths instead of the default plain-text response.
// ServeMux.Handler also reports an empty pattern on a method mismatch, so a
// wrong-method request to a known path renders the 404 page rather than a
// bare 405; for a browser-driven app every dead end lands on the same page.
type notFoundHandler struct {
	mux *http.ServeMux
	ui  *UIHandlers
}

func (h *notFoundHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	_, pattern := h.mux.Handler(r)
	if pattern == "" {
		h.ui.NotFound(w, r)
		return
	}
	h.mux.ServeHTTP(w, r)
}
