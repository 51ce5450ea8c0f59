package web

import (
	"net/http"

	"github.com/phrazzld/quire/internal/domain"
	"github.com/phrazzld/quire/internal/web/views"
)

type questionController struct {
	*Handlers
}

func (c *questionController) index(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	var (
		questions []*domain.Question
		err       error
	)
	if q != "" {
		questions, err = c.questions.FindByName(r.Context(), q)
	} else {
		questions, err = c.questions.List(r.Context())
	}
	if err != nil {
		c.fail(w, r, err)
		return
	}
	c.page(w, r, http.StatusOK, "Questions", views.QuestionIndex(questions, q))
}

func (c *questionController) show(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		c.notFound(w, r)
		return
	}
	question, err := c.questions.GetByID(r.Context(), id)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	c.page(w, r, http.StatusOK, question.Sentence, views.QuestionShow(question))
}

func (c *questionController) editor(w http.ResponseWriter, r *http.Request, status int, question *domain.Question, errMsg string) {
	forms, err := c.forms.List(r.Context())
	if err != nil {
		c.fail(w, r, err)
		return
	}
	c.page(w, r, status, "Question", views.QuestionEditor(question, forms, errMsg))
}

// newForm preselects the form given as ?form_id=.
func (c *questionController) newForm(w http.ResponseWriter, r *http.Request) {
	question := &domain.Question{FormID: parseOptionalID(r.URL.Query().Get("form_id"))}
	c.editor(w, r, http.StatusOK, question, "")
}

func (c *questionController) create(w http.ResponseWriter, r *http.Request) {
	var req questionRequest
	err := bindForm(r, &req)
	question := &domain.Question{Sentence: req.Sentence, FormID: parseOptionalID(req.FormID)}
	if err == nil {
		err = c.questions.Create(r.Context(), question)
	}
	if err != nil {
		if isInvalid(err) {
			c.editor(w, r, http.StatusUnprocessableEntity, question, validationMessage(err))
			return
		}
		c.fail(w, r, err)
		return
	}
	c.redirect(w, r, views.QuestionsPath, flashCreated)
}

func (c *questionController) edit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		c.notFound(w, r)
		return
	}
	question, err := c.questions.GetByID(r.Context(), id)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	c.editor(w, r, http.StatusOK, question, "")
}

func (c *questionController) update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		c.notFound(w, r)
		return
	}
	question, err := c.questions.GetByID(r.Context(), id)
	if err != nil {
		c.fail(w, r, err)
		return
	}

	var req questionRequest
	err = bindForm(r, &req)
	question.Sentence = req.Sentence
	question.FormID = parseOptionalID(req.FormID)
	if err == nil {
		err = c.questions.Update(r.Context(), question)
	}
	if err != nil {
		if isInvalid(err) {
			c.editor(w, r, http.StatusUnprocessableEntity, question, validationMessage(err))
			return
		}
		c.fail(w, r, err)
		return
	}
	c.redirect(w, r, views.MemberPath(views.QuestionsPath, id), flashUpdated)
}

func (c *questionController) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		c.notFound(w, r)
		return
	}
	if err := c.questions.Delete(r.Context(), id); err != nil {
		c.fail(w, r, err)
		return
	}
	c.redirect(w, r, views.QuestionsPath, flashDeleted)
}
