package services

import (
	"errors"
	"fmt"
	"strings"

	mysql "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	// ErrNotFound: the identifier does not resolve to a row.
	ErrNotFound = errors.New("not_found")
	// ErrIntegrity: a row exists but a row it references does not.
	ErrIntegrity = errors.New("integrity_violation")
)

func missingRelation(what string, id uint) error {
	return fmt.Errorf("%w: %s %d is missing", ErrIntegrity, what, id)
}

// classifyDBError maps driver errors onto the service taxonomy.
func classifyDBError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if isForeignKeyError(err) {
		return fmt.Errorf("%w: %v", ErrIntegrity, err)
	}
	return err
}

func isForeignKeyError(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var merr *mysql.MySQLError
	if errors.As(err, &merr) {
		// 1451: parent row referenced, 1452: child row without parent
		return merr.Number == 1451 || merr.Number == 1452
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	return strings.Contains(strings.ToLower(err.Error()), "foreign key constraint")
}
