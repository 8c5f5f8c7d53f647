package httpx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	domainauth "github.com/anstylian/petclinic/internal/domain/auth"
)

// AuthServiceInterface defines the auth service operations the handlers need.
type AuthServiceInterface interface {
	Authenticate(ctx context.Context, username, password string) (*domainauth.User, error)
	CreateSession(ctx context.Context, user domainauth.User) (string, error)
	ResolveSession(ctx context.Context, token string) (*domainauth.User, error)
	Logout(ctx context.Context, token string) error
}

// AuthHandlers provides HTTP handlers for the login and logout screens.
type AuthHandlers struct {
	Svc          AuthServiceInterface
	Renderer     *TemplateRenderer
	CookieDomain string
	Logger       *slog.Logger
}

func (h *AuthHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// LoginForm renders the login page.
// GET /login?error=<optional flag>.
func (h *AuthHandlers) LoginForm(w http.ResponseWriter, r *http.Request) {
	data := basePageData(r, PageMeta{Title: "Login", CurrentPage: PageLogin})
	if r.URL.Query().Has("error") {
		data["LoginError"] = "Invalid username or password."
	}
	if err := h.Renderer.RenderPage(w, "login", data); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// Login handles the login form submission.
// POST /login with username and password form fields.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	user, err := h.Svc.Authenticate(r.Context(), username, password)
	if err != nil {
		h.logger().ErrorContext(r.Context(), "authentication unavailable", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if user == nil {
		// Rejected credentials bounce back to the form with a notice.
		http.Redirect(w, r, LoginPath+"?error", http.StatusSeeOther)
		return
	}

	token, err := h.Svc.CreateSession(r.Context(), *user)
	if err != nil {
		h.logger().ErrorContext(r.Context(), "session creation failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.setSessionCookie(w, r, token)
	http.Redirect(w, r, LandingPath, http.StatusSeeOther)
}

// Logout ends the session and clears the cookie.
// GET /logout.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		if logoutErr := h.Svc.Logout(r.Context(), cookie.Value); logoutErr != nil {
			h.logger().WarnContext(r.Context(), "logout failed", "error", logoutErr)
		}
	}

	h.clearCookie(w, r, SessionCookieName)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// setSessionCookie installs the session token as a host-wide cookie. No
// MaxAge is set on purpose: lifetime is owned by the server-side store, and
// a stale cookie pointing at an expired entry is simply rejected.
func (h *AuthHandlers) setSessionCookie(w http.ResponseWriter, r *http.Request, token string) {
	isSecure := r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		Domain:   h.CookieDomain,
		HttpOnly: true,
		Secure:   isSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearCookie clears a cookie by setting it to expire immediately. It mirrors
// the attributes used when setting cookies to maximize compatibility across
// browsers during deletion.
func (h *AuthHandlers) clearCookie(w http.ResponseWriter, r *http.Request, name string) {
	isSecure := r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Domain:   h.CookieDomain,
		HttpOnly: true,
		Secure:   isSecure,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0).UTC(),
		SameSite: http.SameSiteLaxMode,
	})
}
