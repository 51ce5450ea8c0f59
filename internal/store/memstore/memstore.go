// Package memstore keeps every quire entity in process memory. It implements
// the store interfaces for tests and for running the server without a
// database. Data lives as long as the DB value.
package memstore

import (
	"context"
	"database/sql"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/quire/internal/domain"
	"github.com/phrazzld/quire/internal/store"
)

// DB holds the tables shared by the stores in this package.
// The zero value is not usable; call New.
type DB struct {
	mu  sync.RWMutex
	seq int64
	now func() time.Time

	posts      map[uuid.UUID]*postRow
	categories map[uuid.UUID]*categoryRow
	authors    map[uuid.UUID]*authorRow
	forms      map[uuid.UUID]*formRow
	questions  map[uuid.UUID]*questionRow
	answers    map[uuid.UUID]*answerRow
	users      map[uuid.UUID]*userRow
}

type postRow struct {
	seq        int64
	post       domain.Post
	categories []uuid.UUID
	authors    []uuid.UUID
}

type categoryRow struct {
	seq      int64
	category domain.Category
}

type authorRow struct {
	seq    int64
	author domain.Author
}

type formRow struct {
	seq  int64
	form domain.Form
}

type questionRow struct {
	seq      int64
	question domain.Question
}

type answerRow struct {
	seq    int64
	answer domain.Answer
}

type userRow struct {
	seq  int64
	user domain.User
}

// New returns an empty in-memory database.
func New() *DB {
	return &DB{
		now:        func() time.Time { return time.Now().UTC() },
		posts:      make(map[uuid.UUID]*postRow),
		categories: make(map[uuid.UUID]*categoryRow),
		authors:    make(map[uuid.UUID]*authorRow),
		forms:      make(map[uuid.UUID]*formRow),
		questions:  make(map[uuid.UUID]*questionRow),
		answers:    make(map[uuid.UUID]*answerRow),
		users:      make(map[uuid.UUID]*userRow),
	}
}

// Stores bundles one store of each kind over the same DB.
type Stores struct {
	Posts      *PostStore
	Categories *CategoryStore
	Authors    *AuthorStore
	Forms      *FormStore
	Questions  *QuestionStore
	Answers    *AnswerStore
	Users      *UserStore
	Tx         store.TxRunner
}

// NewStores returns a fresh DB wrapped in every store.
func NewStores() *Stores {
	db := New()
	return &Stores{
		Posts:      &PostStore{db: db},
		Categories: &CategoryStore{db: db},
		Authors:    &AuthorStore{db: db},
		Forms:      &FormStore{db: db},
		Questions:  &QuestionStore{db: db},
		Answers:    &AnswerStore{db: db},
		Users:      &UserStore{db: db},
		Tx:         TxRunner{},
	}
}

// TxRunner runs fn directly with a nil transaction. Each store call is atomic
// on its own; a failing unit of work is not rolled back.
type TxRunner struct{}

// RunInTx implements store.TxRunner.
func (TxRunner) RunInTx(ctx context.Context, fn store.TxFn) error {
	return fn(ctx, (*sql.Tx)(nil))
}

// stamp returns the next insertion sequence and the current time.
// Callers hold the write lock.
func (db *DB) stamp() (int64, time.Time) {
	db.seq++
	return db.seq, db.now()
}

func contains(label, query string) bool {
	return strings.Contains(strings.ToLower(label), strings.ToLower(query))
}

// sortBy orders rows by label, falling back to insertion order.
func sortBy[T any](items []T, label func(T) string, seq func(T) int64) {
	sort.SliceStable(items, func(i, j int) bool {
		li, lj := strings.ToLower(label(items[i])), strings.ToLower(label(items[j]))
		if li != lj {
			return li < lj
		}
		return seq(items[i]) < seq(items[j])
	})
}

func appendUnique(ids []uuid.UUID, id uuid.UUID) []uuid.UUID {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}

func without(ids []uuid.UUID, id uuid.UUID) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(ids))
	for _, existing := range ids {
		if existing != id {
			out = append(out, existing)
		}
	}
	return out
}

// The copy helpers return detached values holding only scalar columns, the
// same shape a SELECT of one table yields.

func (r *postRow) copy() *domain.Post {
	p := r.post
	p.User, p.Categories, p.Authors = nil, nil, nil
	return &p
}

func (r *categoryRow) copy() *domain.Category {
	c := r.category
	c.Form, c.Posts = nil, nil
	return &c
}

func (r *authorRow) copy() *domain.Author {
	a := r.author
	a.Posts = nil
	return &a
}

func (r *formRow) copy() *domain.Form {
	f := r.form
	f.Categories, f.Questions = nil, nil
	return &f
}

func (r *questionRow) copy() *domain.Question {
	q := r.question
	q.Form, q.Answers = nil, nil
	return &q
}

func (r *answerRow) copy() *domain.Answer {
	a := r.answer
	a.Question, a.User = nil, nil
	return &a
}

func (r *userRow) copy() *domain.User {
	u := r.user
	u.Password, u.Posts = "", nil
	return &u
}
