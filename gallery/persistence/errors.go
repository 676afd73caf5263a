package persistence

import (
	"database/sql"
	"database/sql/driver"
	"errors"

	"github.com/dfryer1193/shoebox/gallery/domain"
)

// Engine failures that mean the store itself is unreachable surface through
// database/sql as connection errors; everything else keeps the kind of the
// operation that failed.
func isConnErr(err error) bool {
	return errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone)
}

func readErr(op string, err error) error {
	if isConnErr(err) {
		return domain.NewConnectionError(op, err)
	}
	return domain.NewReadError(op, err)
}

func writeErr(op string, err error) error {
	if isConnErr(err) {
		return domain.NewConnectionError(op, err)
	}
	return domain.NewWriteError(op, err)
}

// ensureWrite catches transaction begin/commit failures, which surface from
// the tx helper without having passed through a repository constructor.
func ensureWrite(op string, err error) error {
	if err == nil || domain.KindOf(err) != "" {
		return err
	}
	return writeErr(op, err)
}
