package readstore

import "github.com/jackc/pgx/v5"

// rowScanner is the common part of pgx.Row and pgx.CollectableRow.
type rowScanner interface {
	Scan(dest ...any) error
}

func rowTo[T any](scan func(rowScanner) (T, error)) pgx.RowToFunc[T] {
	return func(row pgx.CollectableRow) (T, error) {
		return scan(row)
	}
}
