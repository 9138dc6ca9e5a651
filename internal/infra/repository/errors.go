package repository

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/client-registry/internal/domain/client"
	"github.com/BruksfildServices01/client-registry/internal/httperr"
)

// classify maps driver errors to the domain error kinds. Errors that are
// already domain errors, or that match nothing, pass through unchanged.
func classify(err error) error {
	if err == nil {
		return nil
	}

	var be httperr.BusinessError
	if errors.As(err, &be) {
		return err
	}

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey),
		errors.Is(err, gorm.ErrCheckConstraintViolated):
		return wrap(domain.ErrConstraintViolation, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return wrap(domain.ErrReferenceViolation, err)
	case errors.Is(err, driver.ErrBadConn):
		return wrap(domain.ErrConnectionFailure, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == "23503":
			return wrap(domain.ErrReferenceViolation, err)
		case strings.HasPrefix(pgErr.Code, "23"), pgErr.Code == "22001":
			// integrity class, or value too long for the column
			return wrap(domain.ErrConstraintViolation, err)
		case strings.HasPrefix(pgErr.Code, "08"):
			return wrap(domain.ErrConnectionFailure, err)
		}
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return wrap(domain.ErrConnectionFailure, err)
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		switch {
		case liteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey:
			return wrap(domain.ErrReferenceViolation, err)
		case liteErr.Code == sqlite3.ErrConstraint:
			return wrap(domain.ErrConstraintViolation, err)
		case liteErr.Code == sqlite3.ErrCantOpen:
			return wrap(domain.ErrConnectionFailure, err)
		}
	}

	return err
}

func wrap(kind, cause error) error {
	return fmt.Errorf("%w: %w", kind, cause)
}
