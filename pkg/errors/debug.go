package errors

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// Report flattens an error for structured logging: the outermost message,
// the platform code, the unwrap chain, and Postgres driver detail when the
// failure came out of the database.
type Report struct {
	Message string   `json:"message"`
	Code    Code     `json:"code,omitempty"`
	Chain   []string `json:"chain,omitempty"`

	SQLState   string `json:"sql_state,omitempty"`
	Constraint string `json:"constraint,omitempty"`
	Table      string `json:"table,omitempty"`
	Column     string `json:"column,omitempty"`
	Detail     string `json:"detail,omitempty"`
	DriverMsg  string `json:"driver_msg,omitempty"`
}

// Dump builds a Report. Both the pgx and lib/pq error shapes are recognized
// since migrations run over database/sql while the API uses pgx.
func Dump(err error) Report {
	if err == nil {
		return Report{}
	}

	rep := Report{
		Message: err.Error(),
	}

	if typed := As(err); typed != nil {
		rep.Code = typed.Code()
	}

	for e := err; e != nil; e = errors.Unwrap(e) {
		rep.Chain = append(rep.Chain, fmt.Sprintf("%T: %v", e, e))
	}

	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		rep.SQLState = pgxErr.Code
		rep.Constraint = pgxErr.ConstraintName
		rep.Table = pgxErr.TableName
		rep.Column = pgxErr.ColumnName
		rep.Detail = pgxErr.Detail
		rep.DriverMsg = pgxErr.Message
		return rep
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		rep.SQLState = string(pqErr.Code)
		rep.Constraint = pqErr.Constraint
		rep.Table = pqErr.Table
		rep.Column = pqErr.Column
		rep.Detail = pqErr.Detail
		rep.DriverMsg = pqErr.Message
		return rep
	}

	return rep
}
