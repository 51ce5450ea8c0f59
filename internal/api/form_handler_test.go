package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/quire/internal/domain"
	"github.com/phrazzld/quire/internal/store/memstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormHandler_GetForm(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	stores := memstore.NewStores()

	form, err := domain.NewForm("Onboarding")
	require.NoError(t, err)
	require.NoError(t, stores.Forms.Create(ctx, form))

	for _, sentence := range []string{"How did you hear about us?", "Would you recommend us?"} {
		q, err := domain.NewQuestion(form.ID, sentence)
		require.NoError(t, err)
		require.NoError(t, stores.Questions.Create(ctx, q))
	}

	category, err := domain.NewCategory("Feedback")
	require.NoError(t, err)
	category.FormID = uuid.NullUUID{UUID: form.ID, Valid: true}
	require.NoError(t, stores.Categories.Create(ctx, category))

	r := chi.NewRouter()
	r.Get("/api/forms/{id}", NewFormHandler(stores.Forms).GetForm)

	t.Run("found", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/forms/"+form.ID.String(), nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var resp FormResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Onboarding", resp.Name)
		require.Len(t, resp.Questions, 2)
		assert.Equal(t, "How did you hear about us?", resp.Questions[0].Sentence)
		assert.Equal(t, []RefResponse{{ID: category.ID, Label: "Feedback"}}, resp.Categories)
	})

	t.Run("unknown form", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/forms/"+uuid.NewString(), nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/forms/42", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
