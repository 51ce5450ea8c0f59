package postgres

import (
	"database/sql"

	"github.com/phrazzld/quire/internal/domain"
)

// Column lists shared by the stores. Scan functions below read them in order.
const (
	postColumns     = "p.id, p.name, p.content, p.user_id, p.created_at, p.updated_at"
	categoryColumns = "c.id, c.title, c.form_id, c.created_at, c.updated_at"
	authorColumns   = "a.id, a.name, a.created_at, a.updated_at"
	formColumns     = "f.id, f.name, f.created_at, f.updated_at"
	questionColumns = "q.id, q.sentence, q.form_id, q.created_at, q.updated_at"
	answerColumns   = "an.id, an.name, an.question_id, an.user_id, an.created_at, an.updated_at"
	userColumns     = "u.id, u.name, u.email, u.hashed_password, u.created_at, u.updated_at"
)

func scanPost(row rowScanner) (*domain.Post, error) {
	var p domain.Post
	if err := row.Scan(&p.ID, &p.Name, &p.Content, &p.UserID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

// scanPostWithOwner reads postColumns followed by the owner's name and email.
func scanPostWithOwner(row rowScanner) (*domain.Post, error) {
	var (
		p                    domain.Post
		ownerName, ownerMail sql.NullString
	)
	err := row.Scan(&p.ID, &p.Name, &p.Content, &p.UserID, &p.CreatedAt, &p.UpdatedAt,
		&ownerName, &ownerMail)
	if err != nil {
		return nil, err
	}
	if p.UserID.Valid && ownerName.Valid {
		p.User = &domain.User{ID: p.UserID.UUID, Name: ownerName.String, Email: ownerMail.String}
	}
	return &p, nil
}

func scanCategory(row rowScanner) (*domain.Category, error) {
	var c domain.Category
	if err := row.Scan(&c.ID, &c.Title, &c.FormID, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

// scanCategoryWithForm reads categoryColumns followed by the form's name.
func scanCategoryWithForm(row rowScanner) (*domain.Category, error) {
	var (
		c        domain.Category
		formName sql.NullString
	)
	if err := row.Scan(&c.ID, &c.Title, &c.FormID, &c.CreatedAt, &c.UpdatedAt, &formName); err != nil {
		return nil, err
	}
	if c.FormID.Valid && formName.Valid {
		c.Form = &domain.Form{ID: c.FormID.UUID, Name: formName.String}
	}
	return &c, nil
}

func scanAuthor(row rowScanner) (*domain.Author, error) {
	var a domain.Author
	if err := row.Scan(&a.ID, &a.Name, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}

func scanForm(row rowScanner) (*domain.Form, error) {
	var f domain.Form
	if err := row.Scan(&f.ID, &f.Name, &f.CreatedAt, &f.UpdatedAt); err != nil {
		return nil, err
	}
	return &f, nil
}

func scanQuestion(row rowScanner) (*domain.Question, error) {
	var q domain.Question
	if err := row.Scan(&q.ID, &q.Sentence, &q.FormID, &q.CreatedAt, &q.UpdatedAt); err != nil {
		return nil, err
	}
	return &q, nil
}

// scanQuestionWithForm reads questionColumns followed by the form's name.
func scanQuestionWithForm(row rowScanner) (*domain.Question, error) {
	var (
		q        domain.Question
		formName string
	)
	if err := row.Scan(&q.ID, &q.Sentence, &q.FormID, &q.CreatedAt, &q.UpdatedAt, &formName); err != nil {
		return nil, err
	}
	q.Form = &domain.Form{ID: q.FormID, Name: formName}
	return &q, nil
}

func scanAnswer(row rowScanner) (*domain.Answer, error) {
	var a domain.Answer
	if err := row.Scan(&a.ID, &a.Name, &a.QuestionID, &a.UserID, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}

// scanAnswerWithRefs reads answerColumns followed by the question's sentence
// and the user's name.
func scanAnswerWithRefs(row rowScanner) (*domain.Answer, error) {
	var (
		a        domain.Answer
		sentence string
		userName sql.NullString
	)
	err := row.Scan(&a.ID, &a.Name, &a.QuestionID, &a.UserID, &a.CreatedAt, &a.UpdatedAt,
		&sentence, &userName)
	if err != nil {
		return nil, err
	}
	a.Question = &domain.Question{ID: a.QuestionID, Sentence: sentence}
	if a.UserID.Valid && userName.Valid {
		a.User = &domain.User{ID: a.UserID.UUID, Name: userName.String}
	}
	return &a, nil
}

func scanUser(row rowScanner) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.HashedPassword, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}
