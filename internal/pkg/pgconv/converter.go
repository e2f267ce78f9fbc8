package pgconv

import (
	"database/sql"
	"errors"
	"math/big"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

const pgErrCodeUniqueViolation = "23505"

var ErrNumericOutOfRange = errors.New("numeric value does not fit in cents")

func StringPtrToPgtype(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: *s, Valid: true}
}

func DateToPgtype(t time.Time) pgtype.Date {
	y, m, d := t.Date()
	return pgtype.Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC), Valid: true}
}

func DatePtrToPgtype(t *time.Time) pgtype.Date {
	if t == nil {
		return pgtype.Date{Valid: false}
	}
	return DateToPgtype(*t)
}

func MinutesToPgtypeTime(minutes int) pgtype.Time {
	return pgtype.Time{Microseconds: int64(minutes) * int64(time.Minute/time.Microsecond), Valid: true}
}

// PgtypeTimeToMinutes drops seconds and below.
func PgtypeTimeToMinutes(t pgtype.Time) int {
	return int(t.Microseconds / int64(time.Minute/time.Microsecond))
}

func CentsToNumeric(cents int64) pgtype.Numeric {
	return pgtype.Numeric{Int: big.NewInt(cents), Exp: -2, Valid: true}
}

// NumericToCents rescales n to two decimal places. Extra precision is rejected.
func NumericToCents(n pgtype.Numeric) (int64, error) {
	if !n.Valid || n.NaN || n.InfinityModifier != pgtype.Finite {
		return 0, ErrNumericOutOfRange
	}
	v := new(big.Int).Set(n.Int)
	ten := big.NewInt(10)
	switch shift := n.Exp + 2; {
	case shift > 0:
		v.Mul(v, new(big.Int).Exp(ten, big.NewInt(int64(shift)), nil))
	case shift < 0:
		q, r := new(big.Int).QuoRem(v, new(big.Int).Exp(ten, big.NewInt(int64(-shift)), nil), new(big.Int))
		if r.Sign() != 0 {
			return 0, ErrNumericOutOfRange
		}
		v = q
	}
	if !v.IsInt64() {
		return 0, ErrNumericOutOfRange
	}
	return v.Int64(), nil
}

// IsNoRows checks if the error is a "no rows" error from either sql or pgx
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}

// UniqueViolation reports whether err is a unique_violation and which constraint raised it.
func UniqueViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return "", false
	}
	if pgErr.Code != pgErrCodeUniqueViolation {
		return "", false
	}
	return pgErr.ConstraintName, true
}
