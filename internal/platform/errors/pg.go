package errors

import (
	stderrs "errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// sqlstates maps the SQLSTATE codes that mean something to a client;
// every other postgres error is ErrorCodeDB
var sqlstates = map[string]ErrorCode{
	"23505": ErrorCodeDuplicateKey,    // unique_violation
	"23503": ErrorCodeInvalidArgument, // foreign_key_violation
	"22001": ErrorCodeInvalidArgument, // string_data_right_truncation
	"22003": ErrorCodeInvalidArgument, // numeric_value_out_of_range
	"22P02": ErrorCodeInvalidArgument, // invalid_text_representation
	"23502": ErrorCodeValidation,      // not_null_violation
	"23514": ErrorCodeValidation,      // check_violation
	"57014": ErrorCodeUnavailable,     // query_canceled
	"25006": ErrorCodeUnavailable,     // read_only_sql_transaction
	"57P03": ErrorCodeUnavailable,     // cannot_connect_now
}

// ExtractPgError finds a *pgconn.PgError anywhere in err's chain
func ExtractPgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	ok := stderrs.As(err, &pgErr)
	return pgErr, ok
}

// DBErrorCode classifies a postgres error; ok is false when err did not come from postgres
func DBErrorCode(err error) (ErrorCode, bool) {
	pgErr, ok := ExtractPgError(err)
	if !ok {
		return ErrorCodeUnknown, false
	}
	if c, known := sqlstates[pgErr.Code]; known {
		return c, true
	}
	return ErrorCodeDB, true
}

// FromPostgres wraps err with its mapped code, DB for anything postgres did not raise,
// and names the offending column as the field when postgres reports one
func FromPostgres(err error, msg string) error {
	if err == nil {
		return nil
	}
	code, ok := DBErrorCode(err)
	if !ok {
		return Wrap(err, ErrorCodeDB, msg)
	}
	out := Wrap(err, code, msg)
	if f := pgField(err); f != "" {
		out = WithField(out, f)
	}
	return out
}

// pgField prefers the column, then the constraint with its suffix and table prefix cut:
// recipe_ingredients_quantity_check on recipe_ingredients is quantity
func pgField(err error) string {
	pgErr, _ := ExtractPgError(err)
	if col := strings.TrimSpace(pgErr.ColumnName); col != "" {
		return col
	}
	name := strings.TrimSpace(pgErr.ConstraintName)
	for _, suffix := range []string{"_check", "_fkey", "_pkey", "_key"} {
		if s, cut := strings.CutSuffix(name, suffix); cut {
			name = s
			break
		}
	}
	tbl := strings.TrimSpace(pgErr.TableName)
	if tbl == "" {
		return name
	}
	if name == tbl {
		return ""
	}
	return strings.TrimPrefix(name, tbl+"_")
}
