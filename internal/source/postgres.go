package source

import (
	"context"

	"github.com/muyun-chen/stroke-sort/internal/collation/codetable"
	apperrors "github.com/muyun-chen/stroke-sort/pkg/errors"
	"github.com/muyun-chen/stroke-sort/pkg/postgres"
)

// LoadCodeTableFromPostgres reads the stroke_codes table as code-table
// records. The row shape mirrors the JSON records: one character per word,
// an opaque ordering code per character.
func LoadCodeTableFromPostgres(ctx context.Context, db *postgres.Client) ([]codetable.Record, error) {
	rows, err := db.DB.QueryContext(ctx, `SELECT word, code FROM stroke_codes`)
	if err != nil {
		return nil, apperrors.Newf(apperrors.ErrSourceUnavailable, 503, "querying stroke_codes: %v", err)
	}
	defer rows.Close()

	var records []codetable.Record
	for rows.Next() {
		var rec codetable.Record
		if err := rows.Scan(&rec.Word, &rec.Order); err != nil {
			return nil, apperrors.Newf(apperrors.ErrMalformedRecord, 500, "scanning stroke_codes row: %v", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Newf(apperrors.ErrSourceUnavailable, 503, "iterating stroke_codes: %v", err)
	}
	return records, nil
}
