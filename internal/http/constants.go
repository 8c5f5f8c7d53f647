package httpx

// SessionCookieName is the cookie that carries the opaque session token.
const SessionCookieName = "session"

// Well-known paths used by handlers and middleware.
const (
	LoginPath   = "/login"
	LogoutPath  = "/logout"
	LandingPath = "/pets"
)

// CurrentPage constants identify pages for templates and navigation highlighting.
const (
	PageHome     = "home"
	PageLogin    = "login"
	PagePets     = "pets"
	PagePetForm  = "pet-form"
	PageVets     = "vets"
	PageVetForm  = "vet-form"
	PageError    = "error"
	PageNotFound = "not-found"
)

// FormMode represents the mode of a form (create or edit).
type FormMode string

const (
	FormModeCreate FormMode = "create"
	FormModeEdit   FormMode = "edit"
)
