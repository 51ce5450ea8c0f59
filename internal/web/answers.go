package web

import (
	"net/http"

	"github.com/phrazzld/quire/internal/domain"
	"github.com/phrazzld/quire/internal/web/views"
)

type answerController struct {
	*Handlers
}

func (c *answerController) index(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	var (
		answers []*domain.Answer
		err     error
	)
	if q != "" {
		answers, err = c.answers.FindByName(r.Context(), q)
	} else {
		answers, err = c.answers.List(r.Context())
	}
	if err != nil {
		c.fail(w, r, err)
		return
	}
	c.page(w, r, http.StatusOK, "Answers", views.AnswerIndex(answers, q))
}

func (c *answerController) show(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		c.notFound(w, r)
		return
	}
	answer, err := c.answers.GetByID(r.Context(), id)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	c.page(w, r, http.StatusOK, answer.Name, views.AnswerShow(answer))
}

func (c *answerController) editor(w http.ResponseWriter, r *http.Request, status int, answer *domain.Answer, errMsg string) {
	questions, err := c.questions.List(r.Context())
	if err != nil {
		c.fail(w, r, err)
		return
	}
	c.page(w, r, status, "Answer", views.AnswerEditor(answer, questions, errMsg))
}

// newForm preselects the question given as ?question_id=.
func (c *answerController) newForm(w http.ResponseWriter, r *http.Request) {
	answer := &domain.Answer{QuestionID: parseOptionalID(r.URL.Query().Get("question_id"))}
	c.editor(w, r, http.StatusOK, answer, "")
}

// create records the answer as given by the signed-in user.
func (c *answerController) create(w http.ResponseWriter, r *http.Request) {
	var req answerRequest
	err := bindForm(r, &req)
	answer := &domain.Answer{
		Name:       req.Name,
		QuestionID: parseOptionalID(req.QuestionID),
		UserID:     nullID(ownerID(r)),
	}
	if err == nil {
		err = c.answers.Create(r.Context(), answer)
	}
	if err != nil {
		if isInvalid(err) {
			c.editor(w, r, http.StatusUnprocessableEntity, answer, validationMessage(err))
			return
		}
		c.fail(w, r, err)
		return
	}
	c.redirect(w, r, views.AnswersPath, flashCreated)
}

func (c *answerController) edit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		c.notFound(w, r)
		return
	}
	answer, err := c.answers.GetByID(r.Context(), id)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	c.editor(w, r, http.StatusOK, answer, "")
}

// update keeps the answer's original user.
func (c *answerController) update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		c.notFound(w, r)
		return
	}
	answer, err := c.answers.GetByID(r.Context(), id)
	if err != nil {
		c.fail(w, r, err)
		return
	}

	var req answerRequest
	err = bindForm(r, &req)
	answer.Name = req.Name
	answer.QuestionID = parseOptionalID(req.QuestionID)
	if err == nil {
		err = c.answers.Update(r.Context(), answer)
	}
	if err != nil {
		if isInvalid(err) {
			c.editor(w, r, http.StatusUnprocessableEntity, answer, validationMessage(err))
			return
		}
		c.fail(w, r, err)
		return
	}
	c.redirect(w, r, views.MemberPath(views.AnswersPath, id), flashUpdated)
}

func (c *answerController) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		c.notFound(w, r)
		return
	}
	if err := c.answers.Delete(r.Context(), id); err != nil {
		c.fail(w, r, err)
		return
	}
	c.redirect(w, r, views.AnswersPath, flashDeleted)
}
