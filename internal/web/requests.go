package web

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"reflect"
	"strings"

	"github.com/go-playground/form/v4"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/phrazzld/quire/internal/domain"
	"github.com/phrazzld/quire/internal/store"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their form name.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("form"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

type postRequest struct {
	Name        string   `form:"name"       validate:"required,max=255"`
	Content     string   `form:"content"`
	CategoryIDs []string `form:"categories" validate:"dive,uuid"`
	AuthorIDs   []string `form:"authors"    validate:"dive,uuid"`
}

type categoryRequest struct {
	Title  string `form:"title"   validate:"required,max=255"`
	FormID string `form:"form_id" validate:"omitempty,uuid"`
}

type authorRequest struct {
	Name string `form:"name" validate:"required,max=255"`
}

type formRequest struct {
	Name string `form:"name" validate:"required,max=255"`
}

type questionRequest struct {
	Sentence string `form:"sentence" validate:"required,max=255"`
	FormID   string `form:"form_id"  validate:"required,uuid"`
}

type answerRequest struct {
	Name       string `form:"name"        validate:"required,max=255"`
	QuestionID string `form:"question_id" validate:"required,uuid"`
}

type registerRequest struct {
	Name     string `form:"name"     validate:"required,max=255"`
	Email    string `form:"email"    validate:"required,email,max=255"`
	Password string `form:"password" validate:"required,min=8,max=72"`
}

type accountRequest struct {
	Name     string `form:"name"     validate:"required,max=255"`
	Email    string `form:"email"    validate:"required,email,max=255"`
	Password string `form:"password" validate:"omitempty,min=8,max=72"`
}

type loginRequest struct {
	Identifier string `form:"identifier" validate:"required"`
	Password   string `form:"password"   validate:"required"`
}

// errBadForm marks a body that could not be parsed at all.
var errBadForm = errors.New("malformed form body")

var formDecoder = form.NewDecoder()

// bindForm decodes the posted values into the fields of dst tagged
// `form:"..."` and validates dst. Text is trimmed except passwords, and
// blank entries of repeated fields are dropped.
func bindForm(r *http.Request, dst any) error {
	if err := r.ParseForm(); err != nil {
		return fmt.Errorf("%w: %w", errBadForm, err)
	}
	if err := formDecoder.Decode(dst, trimValues(r.PostForm)); err != nil {
		return fmt.Errorf("%w: %w", errBadForm, err)
	}
	return validate.Struct(dst)
}

// trimValues returns a trimmed copy of values without blank entries.
func trimValues(values url.Values) url.Values {
	out := make(url.Values, len(values))
	for key, vs := range values {
		if key == "password" {
			out[key] = vs
			continue
		}
		kept := make([]string, 0, len(vs))
		for _, v := range vs {
			if v = strings.TrimSpace(v); v != "" {
				kept = append(kept, v)
			}
		}
		if len(kept) > 0 {
			out[key] = kept
		}
	}
	return out
}

// isInvalid reports whether err describes bad input rather than a failure.
func isInvalid(err error) bool {
	var fieldErrs validator.ValidationErrors
	return errors.As(err, &fieldErrs) ||
		errors.Is(err, domain.ErrValidation) ||
		errors.Is(err, store.ErrInvalidEntity) ||
		errors.Is(err, errBadForm)
}

// validationMessage turns an input error into text for the form.
func validationMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return fe.Field() + " " + tagMessage(fe)
	}
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		return vErr.Error()
	}
	if errors.Is(err, store.ErrInvalidEntity) {
		return "refers to something that no longer exists"
	}
	return "the submitted form could not be read"
}

func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "uuid":
		return "must be a valid id"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	default:
		return "is invalid"
	}
}

// parseIDs converts validated id strings.
func parseIDs(raw []string) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		if id, err := uuid.Parse(s); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}

// parseOptionalID converts a validated, possibly empty id string.
func parseOptionalID(raw string) uuid.UUID {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil
	}
	return id
}

func idSet(ids []uuid.UUID) map[uuid.UUID]bool {
	set := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
