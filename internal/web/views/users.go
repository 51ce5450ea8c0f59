package views

import (
	"github.com/a-h/templ"
	"github.com/google/uuid"
	"github.com/phrazzld/quire/internal/domain"
)

// UserShow renders a user with their posts. The password hash is never shown.
func UserShow(u *domain.User) templ.Component {
	return component(func(h *htmlWriter) {
		h.heading(1, u.Name)
		h.paragraph("muted", u.Email)
		h.heading(2, "Posts")
		h.linkList(postItems(u.Posts), "No posts yet.")
		h.actions(MemberPath(UsersPath, u.ID))
	})
}

// UserEditor renders registration for a new user and account editing for an
// existing one. On edit an empty password keeps the current one.
func UserEditor(u *domain.User, errMsg string) templ.Component {
	return component(func(h *htmlWriter) {
		action, submit := editorTarget(UsersPath, u.ID)
		passwordLabel := "Password"
		if u.ID == uuid.Nil {
			h.heading(1, "Register")
			submit = "Register"
		} else {
			h.heading(1, "Edit account")
			passwordLabel = "New password (leave blank to keep)"
		}
		h.errorBox(errMsg)
		h.formStart(action)
		h.input("text", "name", "Username", u.Name)
		h.input("email", "email", "Email", u.Email)
		h.input("password", "password", passwordLabel, "")
		h.formEnd(submit)
	})
}

// Login renders the sign-in form. identifier is echoed back after a failure.
func Login(identifier, errMsg string) templ.Component {
	return component(func(h *htmlWriter) {
		h.heading(1, "Log in")
		h.errorBox(errMsg)
		h.formStart(LoginPath)
		h.input("text", "identifier", "Email or username", identifier)
		h.input("password", "password", "Password", "")
		h.formEnd("Log in")
		h.raw("<p>")
		h.link(UsersPath+"/new", "Create an account")
		h.raw("</p>")
	})
}
