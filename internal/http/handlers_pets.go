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

// PetHandlers provides the pet CRUD screens.
type PetHandlers struct {
	Pets     *service.PetService
	Vets     *service.VetService
	Renderer *TemplateRenderer
	Logger   *slog.Logger
}

func (h *PetHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// List renders the pet list, optionally filtered by exact name.
// GET /pets?name=<optional filter>.
func (h *PetHandlers) List(w http.ResponseWriter, r *http.Request) {
	nameFilter := r.URL.Query().Get("name")

	pets, err := h.Pets.List(r.Context(), nameFilter)
	if err != nil {
		h.renderInternalError(w, r, err)
		return
	}

	data := basePageData(r, PageMeta{Title: "Pets", CurrentPage: PagePets})
	data["Pets"] = pets
	data["NameFilter"] = nameFilter
	if err := h.Renderer.RenderPage(w, "pets_list", data); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// NewForm renders an empty pet form.
// GET /pets/new.
func (h *PetHandlers) NewForm(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, r, &model.Pet{PetType: model.PetTypeCat}, FormModeCreate, "")
}

// EditForm renders the form pre-filled with an existing pet.
// GET /pets/{id}.
func (h *PetHandlers) EditForm(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	pet, err := h.Pets.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, data.ErrPetNotFound) {
			http.NotFound(w, r)
			return
		}
		h.renderInternalError(w, r, err)
		return
	}

	h.renderForm(w, r, pet, FormModeEdit, "")
}

// Save persists a pet from the submitted form and returns to the list.
// POST /pets/save.
func (h *PetHandlers) Save(w http.ResponseWriter, r *http.Request) {
	user, ok := GetUserFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, LoginPath, http.StatusTemporaryRedirect)
		return
	}

	pet, err := petFromForm(r)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	mode := FormModeCreate
	if pet.ID != 0 {
		mode = FormModeEdit
	}

	if _, err := h.Pets.Save(r.Context(), pet, *user); err != nil {
		if errors.Is(err, data.ErrPetNotFound) {
			http.NotFound(w, r)
			return
		}
		var validationErr *model.ValidationError
		if errors.As(err, &validationErr) {
			h.renderForm(w, r, pet, mode, validationErr.Error())
			return
		}
		h.renderInternalError(w, r, err)
		return
	}

	http.Redirect(w, r, LandingPath, http.StatusSeeOther)
}

// Delete removes a pet and returns to the list.
// GET /pets/delete/{id}.
func (h *PetHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := h.Pets.Delete(r.Context(), id); err != nil {
		h.renderInternalError(w, r, err)
		return
	}

	http.Redirect(w, r, LandingPath, http.StatusSeeOther)
}

func (h *PetHandlers) renderForm(w http.ResponseWriter, r *http.Request, pet *model.Pet, mode FormMode, formError string) {
	vets, err := h.Vets.List(r.Context())
	if err != nil {
		h.renderInternalError(w, r, err)
		return
	}

	title := "New Pet"
	if mode == FormModeEdit {
		title = "Edit Pet"
	}

	data := basePageData(r, PageMeta{Title: title, CurrentPage: PagePetForm})
	data["Pet"] = pet
	data["Vets"] = vets
	data["PetTypes"] = model.PetTypeOptions()
	data["FormMode"] = mode
	if formError != "" {
		data["FormError"] = formError
	}
	if err := h.Renderer.RenderPage(w, "pet_form", data); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func (h *PetHandlers) renderInternalError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger().ErrorContext(r.Context(), "pet handler failed", "error", err, "path", r.URL.Path)
	data := basePageData(r, PageMeta{Title: "Error", CurrentPage: PageError})
	data["Message"] = "Something went wrong. Please try again."
	_ = h.Renderer.RenderError(w, http.StatusInternalServerError, data)
}

// petFromForm decodes the pet form. Field-level validation happens in the
// service; this only rejects values that cannot be parsed at all.
func petFromForm(r *http.Request) (*model.Pet, error) {
	if err := r.ParseForm(); err != nil {
		return nil, err
	}

	pet := &model.Pet{
		Name:       r.PostFormValue("name"),
		OwnerName:  r.PostFormValue("owner_name"),
		OwnerPhone: r.PostFormValue("owner_phone"),
	}

	if raw := r.PostFormValue("id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return nil, err
		}
		pet.ID = id
	}
	if raw := r.PostFormValue("age"); raw != "" {
		age, err := strconv.Atoi(raw)
		if err != nil {
			return nil, err
		}
		pet.Age = age
	}
	if raw := r.PostFormValue("pet_type"); raw != "" {
		petType, err := strconv.Atoi(raw)
		if err != nil {
			return nil, err
		}
		pet.PetType = petType
	}
	if raw := r.PostFormValue("vet_id"); raw != "" {
		vetID, err := strconv.Atoi(raw)
		if err != nil {
			return nil, err
		}
		pet.VetID = &vetID
	}

	return pet, nil
}
