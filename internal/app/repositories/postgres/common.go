// Package postgres implements the repositories on PostgreSQL with pgx and squirrel.
package postgres

import (
	"errors"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/alumnihub/internal/pkg/apperrors"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// validID reports whether id can be used against a UUID column.
// Malformed ids are treated as unknown rather than as a client error.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// mapNoRows converts pgx.ErrNoRows into the not found sentinel
func mapNoRows(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrResourceNotFound
	}
	return err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching s anywhere
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
