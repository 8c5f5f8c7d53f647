package httpx

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/anstylian/petclinic/internal/data"
	"github.com/anstylian/petclinic/internal/domain/model"
	"github.com/anstylian/petclinic/internal/service"
)

// VetHandlers provides the vet CRUD screens.
type VetHandlers struct {
	Vets     *service.VetService
	Renderer *TemplateRenderer
	Logger   *slog.Logger
}

func (h *VetHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// List renders the vet list.
// GET /vets.
func (h *VetHandlers) List(w http.ResponseWriter, r *http.Request) {
	vets, err := h.Vets.List(r.Context())
	if err != nil {
		h.renderInternalError(w, r, err)
		return
	}

	data := basePageData(r, PageMeta{Title: "Vets", CurrentPage: PageVets})
	data["Vets"] = vets
	if err := h.Renderer.RenderPage(w, "vets_list", data); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// NewForm renders an empty vet form.
// GET /vets/new.
func (h *VetHandlers) NewForm(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, r, &model.Vet{}, FormModeCreate, "")
}

// EditForm renders the form pre-filled with an existing vet.
// GET /vets/{id}.
func (h *VetHandlers) EditForm(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	vet, err := h.Vets.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, data.ErrVetNotFound) {
			http.NotFound(w, r)
			return
		}
		h.renderInternalError(w, r, err)
		return
	}

	h.renderForm(w, r, vet, FormModeEdit, "")
}

// Save persists a vet from the submitted form and returns to the list.
// POST /vets/save.
func (h *VetHandlers) Save(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	vet := &model.Vet{Name: r.PostFormValue("name")}
	mode := FormModeCreate
	if raw := r.PostFormValue("id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}
		vet.ID = id
		mode = FormModeEdit
	}

	if _, err := h.Vets.Save(r.Context(), vet); err != nil {
		switch {
		case errors.Is(err, data.ErrVetNotFound):
			http.NotFound(w, r)
		case errors.Is(err, data.ErrVetNameExists):
			h.renderForm(w, r, vet, mode, "A vet with that name already exists.")
		default:
			var validationErr *model.ValidationError
			if errors.As(err, &validationErr) {
				h.renderForm(w, r, vet, mode, validationErr.Error())
				return
			}
			h.renderInternalError(w, r, err)
		}
		return
	}

	http.Redirect(w, r, "/vets", http.StatusSeeOther)
}

// Delete removes a vet; pets assigned to it revert to no vet.
// GET /vets/delete/{id}.
func (h *VetHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := h.Vets.Delete(r.Context(), id); err != nil {
		h.renderInternalError(w, r, err)
		return
	}

	http.Redirect(w, r, "/vets", http.StatusSeeOther)
}

func (h *VetHandlers) renderForm(w http.ResponseWriter, r *http.Request, vet *model.Vet, mode FormMode, formError string) {
	title := "New Vet"
	if mode == FormModeEdit {
		title = "Edit Vet"
	}

	data := basePageData(r, PageMeta{Title: title, CurrentPage: PageVetForm})
	data["Vet"] = vet
	data["FormMode"] = mode
	if formError != "" {
		data["FormError"] = formError
	}
	if err := h.Renderer.RenderPage(w, "vet_form", data); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func (h *VetHandlers) renderInternalError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger().ErrorContext(r.Context(), "vet handler failed", "error", err, "path", r.URL.Path)
	data := basePageData(r, PageMeta{Title: "Error", CurrentPage: PageError})
	data["Message"] = "Something went wrong. Please try again."
	_ = h.Renderer.RenderError(w, http.StatusInternalServerError, data)
}
