package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/phrazzld/quire/internal/platform/logger"
	"github.com/phrazzld/quire/internal/store"
)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// likePattern turns a search term into an ILIKE substring pattern with the
// wildcard characters escaped.
func likePattern(query string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(query) + "%"
}

// base carries what every store needs.
type base struct {
	db     store.DBTX
	logger *slog.Logger
}

func newBase(db store.DBTX, l *slog.Logger, component string) base {
	if db == nil {
		panic("db cannot be nil")
	}
	if l == nil {
		l = slog.Default()
	}
	return base{db: db, logger: l.With(slog.String("component", component))}
}

func (b base) log(ctx context.Context) *slog.Logger {
	return logger.FromContextOrDefault(ctx, b.logger)
}

// queryList runs a SELECT and scans every row with scan.
func queryList[T any](ctx context.Context, db store.DBTX, scan func(rowScanner) (*T, error), query string, args ...any) ([]*T, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	out := make([]*T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// replaceLinks rewrites the join rows of one owner. table must be a trusted
// identifier.
func replaceLinks(ctx context.Context, db store.DBTX, table, ownerCol, targetCol string, ownerID uuid.UUID, targets []uuid.UUID) error {
	if _, err := db.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s WHERE %s = $1", table, ownerCol), ownerID); err != nil {
		return err
	}
	insert := fmt.Sprintf("INSERT INTO %s (%s, %s) VALUES ($1, $2) ON CONFLICT DO NOTHING", table, ownerCol, targetCol)
	for _, id := range targets {
		if _, err := db.ExecContext(ctx, insert, ownerID, id); err != nil {
			return err
		}
	}
	return nil
}

// execDelete runs a DELETE by id and maps zero affected rows to notFound.
func execDelete(ctx context.Context, db store.DBTX, query string, id uuid.UUID, notFound error) error {
	result, err := db.ExecContext(ctx, query, id)
	if err != nil {
		return MapError(err, notFound)
	}
	return CheckRowsAffected(result, notFound)
}
