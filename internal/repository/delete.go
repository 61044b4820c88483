package repository

import (
	"context"
	"database/sql"
)

// deleteByID removes one row from table; table is always a package constant.
func deleteByID(ctx context.Context, db *sql.DB, table, entity, id string) error {
	res, err := db.ExecContext(ctx, `DELETE FROM `+table+` WHERE id=$1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound(entity, id)
	}
	return nil
}
