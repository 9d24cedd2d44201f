// Package legacy performs the one-time import of records from the flat JSON
// blob written by the previous storage format.
package legacy

import (
	"context"
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/clientnotes/internal/logging"
	"github.com/dmitrijs2005/clientnotes/internal/models"
	"github.com/dmitrijs2005/clientnotes/internal/repositories/records"
)

// ImportIfEmpty migrates records from the legacy JSON array file at path into
// the repository, but only when the repository holds no records at all. A
// store that already has at least one record is never touched, even when the
// legacy blob still exists, so the import cannot run twice.
//
// The migration is best-effort: a missing or unreadable file and a blob that
// fails to parse are swallowed (logged at debug level). Only the initial
// emptiness check can fail the call, since a broken store must surface.
func ImportIfEmpty(ctx context.Context, repo records.Repository, path string, log logging.Logger) error {
	existing, err := repo.GetAll(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Debug(ctx, "legacy blob not read, skipping migration", "path", path, "error", err)
		return nil
	}

	var recs []models.Record
	if err := json.Unmarshal(data, &recs); err != nil {
		log.Debug(ctx, "legacy blob not parseable, skipping migration", "path", path, "error", err)
		return nil
	}
	if len(recs) == 0 {
		return nil
	}

	for i := range recs {
		recs[i].Normalize()
	}

	if err := repo.PutMany(ctx, recs); err != nil {
		log.Warn(ctx, "legacy migration failed", "path", path, "error", err)
		return nil
	}

	log.Info(ctx, "migrated legacy records", "count", len(recs))
	return nil
}
