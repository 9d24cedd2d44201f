package records

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/clientnotes/internal/common"
	"github.com/dmitrijs2005/clientnotes/internal/dbx"
	"github.com/dmitrijs2005/clientnotes/internal/models"
)

// SQLiteRepository implements Repository over a *sql.DB. Single-statement
// operations run as implicit transactions; PutMany wraps the whole batch in
// one explicit transaction via dbx.WithTx.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given database.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

const upsertQuery = `INSERT INTO records (id, created, name, tag, phone, email, note, follow, source, star)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET created = excluded.created,
			name = excluded.name,
			tag = excluded.tag,
			phone = excluded.phone,
			email = excluded.email,
			note = excluded.note,
			follow = excluded.follow,
			source = excluded.source,
			star = excluded.star
`

func upsert(ctx context.Context, db dbx.DBTX, r *models.Record) error {
	_, err := db.ExecContext(ctx, upsertQuery,
		r.Id, r.Created, r.Name, r.Tag, r.Phone, r.Email, r.Note, r.Follow, r.Source, r.Star)
	return err
}

// Put upserts one record by id. Replacement is full-record; there is no
// partial-field update path.
func (r *SQLiteRepository) Put(ctx context.Context, record *models.Record) error {
	if err := upsert(ctx, r.db, record); err != nil {
		return fmt.Errorf("%w: %v", common.ErrStorageWrite, err)
	}
	return nil
}

// PutMany upserts all records within a single transaction. Either every
// record is persisted or none is.
func (r *SQLiteRepository) PutMany(ctx context.Context, recs []models.Record) error {
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for i := range recs {
			if err := upsert(ctx, tx, &recs[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrStorageWrite, err)
	}
	return nil
}

// GetAll lists every record in unspecified order.
func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Record, error) {
	query := `SELECT id, created, name, tag, phone, email, note, follow, source, star FROM records`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
	}
	defer rows.Close()

	var result []models.Record
	for rows.Next() {
		var item models.Record
		if err := rows.Scan(&item.Id, &item.Created, &item.Name, &item.Tag, &item.Phone,
			&item.Email, &item.Note, &item.Follow, &item.Source, &item.Star); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Delete removes the record with the given id. Deleting an id that does not
// exist is a no-op.
func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM records WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrStorageWrite, err)
	}
	return nil
}
