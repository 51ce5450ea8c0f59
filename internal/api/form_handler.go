package api

import (
	"net/http"

	"github.com/phrazzld/quire/internal/api/shared"
	"github.com/phrazzld/quire/internal/store"
)

// FormHandler serves read-only JSON views of survey forms.
type FormHandler struct {
	forms store.FormStore
}

// NewFormHandler creates a new FormHandler.
func NewFormHandler(forms store.FormStore) *FormHandler {
	if forms == nil {
		panic("forms cannot be nil")
	}
	return &FormHandler{forms: forms}
}

// GetForm handles GET /api/forms/{id} and includes the form's questions and
// categories.
func (h *FormHandler) GetForm(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	form, err := h.forms.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, formToResponse(form))
}
