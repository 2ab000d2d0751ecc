package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Códigos SQLSTATE de PostgreSQL que los adaptadores traducen a errores de
// dominio; el resto de errores sube envuelto tal cual.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

func pgErrCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isUniqueViolation detecta choques contra una restricción UNIQUE (código
// interno de producto, número de lote por producto, nombre de categoría).
func isUniqueViolation(err error) bool {
	return pgErrCode(err) == codeUniqueViolation
}

// isForeignKeyViolation detecta referencias rotas (estantería destino o
// usuario de auditoría inexistentes).
func isForeignKeyViolation(err error) bool {
	return pgErrCode(err) == codeForeignKeyViolation
}
