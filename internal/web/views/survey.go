package views

import (
	"github.com/a-h/templ"
	"github.com/google/uuid"
	"github.com/phrazzld/quire/internal/domain"
)

// FormShow renders a survey form with its questions and categories.
func FormShow(f *domain.Form) templ.Component {
	return component(func(h *htmlWriter) {
		h.heading(1, f.Name)
		h.heading(2, "Questions")
		h.linkList(questionItems(f.Questions), "No questions yet.")
		h.raw("<p>")
		h.link(QuestionsPath+"/new?form_id="+f.ID.String(), "Add a question")
		h.raw("</p>")
		h.heading(2, "Categories")
		h.linkList(categoryItems(f.Categories), "No categories.")
		h.actions(MemberPath(FormsPath, f.ID))
	})
}

// FormEditor renders the survey form editor.
func FormEditor(f *domain.Form, errMsg string) templ.Component {
	return component(func(h *htmlWriter) {
		action, submit := editorTarget(FormsPath, f.ID)
		if f.ID == uuid.Nil {
			h.heading(1, "New form")
		} else {
			h.heading(1, "Edit form")
		}
		h.errorBox(errMsg)
		h.formStart(action)
		h.input("text", "name", "Name", f.Name)
		h.formEnd(submit)
	})
}

// QuestionShow renders a question with its form and answers.
func QuestionShow(q *domain.Question) templ.Component {
	return component(func(h *htmlWriter) {
		h.heading(1, q.Sentence)
		if q.Form != nil {
			h.raw(`<p class="muted">in form `)
			h.link(MemberPath(FormsPath, q.Form.ID), q.Form.Name)
			h.raw("</p>")
		}
		h.heading(2, "Answers")
		h.linkList(answerItems(q.Answers), "No answers yet.")
		h.raw("<p>")
		h.link(AnswersPath+"/new?question_id="+q.ID.String(), "Answer this question")
		h.raw("</p>")
		h.actions(MemberPath(QuestionsPath, q.ID))
	})
}

// QuestionEditor renders the question form. A form must be chosen.
func QuestionEditor(q *domain.Question, forms []*domain.Form, errMsg string) templ.Component {
	return component(func(h *htmlWriter) {
		action, submit := editorTarget(QuestionsPath, q.ID)
		if q.ID == uuid.Nil {
			h.heading(1, "New question")
		} else {
			h.heading(1, "Edit question")
		}
		h.errorBox(errMsg)
		h.formStart(action)
		h.input("text", "sentence", "Sentence", q.Sentence)
		h.selectBox("form_id", "Form", "Choose a form", formOptions(forms, q.FormID))
		h.formEnd(submit)
	})
}

// AnswerShow renders an answer with its question and author.
func AnswerShow(a *domain.Answer) templ.Component {
	return component(func(h *htmlWriter) {
		h.heading(1, a.Name)
		if a.Question != nil {
			h.raw(`<p class="muted">answers `)
			h.link(MemberPath(QuestionsPath, a.Question.ID), a.Question.Sentence)
			h.raw("</p>")
		}
		if a.User != nil {
			h.raw(`<p class="muted">by `)
			h.link(MemberPath(UsersPath, a.User.ID), a.User.Name)
			h.raw("</p>")
		}
		h.actions(MemberPath(AnswersPath, a.ID))
	})
}

// AnswerEditor renders the answer form. A question must be chosen.
func AnswerEditor(a *domain.Answer, questions []*domain.Question, errMsg string) templ.Component {
	return component(func(h *htmlWriter) {
		action, submit := editorTarget(AnswersPath, a.ID)
		if a.ID == uuid.Nil {
			h.heading(1, "New answer")
		} else {
			h.heading(1, "Edit answer")
		}
		h.errorBox(errMsg)
		h.formStart(action)
		h.input("text", "name", "Answer", a.Name)
		opts := make([]Option, 0, len(questions))
		for _, q := range questions {
			opts = append(opts, Option{
				Value:    q.ID.String(),
				Label:    q.Sentence,
				Selected: q.ID == a.QuestionID && a.QuestionID != uuid.Nil,
			})
		}
		h.selectBox("question_id", "Question", "Choose a question", opts)
		h.formEnd(submit)
	})
}
