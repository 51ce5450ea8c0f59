package views

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// htmlWriter writes markup and keeps the first write error.
type htmlWriter struct {
	w   io.Writer
	err error
}

// component adapts a writing function to templ.Component.
func component(fn func(h *htmlWriter)) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		fn(h)
		return h.err
	})
}

// raw writes trusted markup.
func (h *htmlWriter) raw(parts ...string) {
	for _, s := range parts {
		if h.err != nil {
			return
		}
		_, h.err = io.WriteString(h.w, s)
	}
}

// text writes s escaped.
func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

// attr writes ` name="value"` with the value escaped.
func (h *htmlWriter) attr(name, value string) {
	h.raw(" ", name, `="`, templ.EscapeString(value), `"`)
}

// link writes an anchor. Unsafe URLs are replaced by templ.URL.
func (h *htmlWriter) link(href, label string) {
	h.raw("<a")
	h.attr("href", string(templ.URL(href)))
	h.raw(">")
	h.text(label)
	h.raw("</a>")
}

func (h *htmlWriter) heading(level int, s string) {
	tag := "h" + strconv.Itoa(level)
	h.raw("<", tag, ">")
	h.text(s)
	h.raw("</", tag, ">")
}

func (h *htmlWriter) paragraph(class, s string) {
	h.raw("<p")
	if class != "" {
		h.attr("class", class)
	}
	h.raw(">")
	h.text(s)
	h.raw("</p>")
}

// Option is one choice of a select box or checkbox group.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

func (h *htmlWriter) formStart(action string) {
	h.raw(`<form method="post"`)
	h.attr("action", string(templ.URL(action)))
	h.raw(">")
}

func (h *htmlWriter) formEnd(submit string) {
	h.raw(`<button type="submit">`)
	h.text(submit)
	h.raw("</button></form>")
}

// errorBox writes the validation message of a rejected submission.
func (h *htmlWriter) errorBox(msg string) {
	if msg == "" {
		return
	}
	h.raw(`<div class="error" role="alert">`)
	h.text(msg)
	h.raw("</div>")
}

func (h *htmlWriter) input(typ, name, label, value string) {
	h.raw("<label")
	h.attr("for", name)
	h.raw(">")
	h.text(label)
	h.raw("</label><input")
	h.attr("type", typ)
	h.attr("id", name)
	h.attr("name", name)
	if typ != "password" {
		h.attr("value", value)
	}
	h.raw(">")
}

func (h *htmlWriter) textarea(name, label, value string) {
	h.raw("<label")
	h.attr("for", name)
	h.raw(">")
	h.text(label)
	h.raw("</label><textarea")
	h.attr("id", name)
	h.attr("name", name)
	h.raw(` rows="8">`)
	h.text(value)
	h.raw("</textarea>")
}

// selectBox writes a single choice. placeholder, when set, adds an empty first option.
func (h *htmlWriter) selectBox(name, label, placeholder string, opts []Option) {
	h.raw("<label")
	h.attr("for", name)
	h.raw(">")
	h.text(label)
	h.raw("</label><select")
	h.attr("id", name)
	h.attr("name", name)
	h.raw(">")
	if placeholder != "" {
		h.raw(`<option value="">`)
		h.text(placeholder)
		h.raw("</option>")
	}
	for _, o := range opts {
		h.raw("<option")
		h.attr("value", o.Value)
		if o.Selected {
			h.raw(" selected")
		}
		h.raw(">")
		h.text(o.Label)
		h.raw("</option>")
	}
	h.raw("</select>")
}

// checkboxes writes a multiple choice sharing one field name.
func (h *htmlWriter) checkboxes(name, legend string, opts []Option) {
	h.raw("<fieldset><legend>")
	h.text(legend)
	h.raw("</legend>")
	if len(opts) == 0 {
		h.raw(`<p class="muted">None yet.</p>`)
	}
	for _, o := range opts {
		h.raw(`<label class="check"><input type="checkbox"`)
		h.attr("name", name)
		h.attr("value", o.Value)
		if o.Selected {
			h.raw(" checked")
		}
		h.raw(">")
		h.text(o.Label)
		h.raw("</label>")
	}
	h.raw("</fieldset>")
}

// actions writes the edit link and delete button of a show page.
func (h *htmlWriter) actions(base string) {
	h.raw(`<div class="actions">`)
	h.link(base+"/edit", "Edit")
	h.raw(`<form method="post" class="inline"`)
	h.attr("action", string(templ.URL(base+"/delete")))
	h.raw(`><button type="submit">Delete</button></form></div>`)
}

// linkList writes one list item per link, or empty when there are none.
func (h *htmlWriter) linkList(links []Item, empty string) {
	if len(links) == 0 {
		h.paragraph("muted", empty)
		return
	}
	h.raw("<ul>")
	for _, l := range links {
		h.raw("<li>")
		h.link(l.Href, l.Label)
		if l.Detail != "" {
			h.raw(` <span class="muted">`)
			h.text(l.Detail)
			h.raw("</span>")
		}
		h.raw("</li>")
	}
	h.raw("</ul>")
}
