package httpx

import (
	"net/http"

	"github.com/anstylian/petclinic/internal/domain/model"
)

// PageMeta carries per-page identity for the shared layout.
type PageMeta struct {
	Title       string
	CurrentPage string
}

// basePageData builds the map every page template starts from: page identity,
// the authenticated user when present, and the CSRF token for forms.
func basePageData(r *http.Request, meta PageMeta) map[string]any {
	data := map[string]any{
		"Title":       meta.Title,
		"CurrentPage": meta.CurrentPage,
		"CSRFToken":   GetCSRFToken(r),
	}
	if user, ok := GetUserFromContext(r.Context()); ok {
		data["User"] = user
	}
	return data
}

func petTypeNameFunc(id int) string {
	return model.PetTypeName(id)
}

func derefIntFunc(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
