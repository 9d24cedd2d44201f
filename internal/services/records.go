// Package services wires the persistence layer to the operations the CLI
// invokes. The in-memory record set held by callers is a disposable cache:
// after every mutation they re-List and re-render.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/clientnotes/internal/codec"
	"github.com/dmitrijs2005/clientnotes/internal/common"
	"github.com/dmitrijs2005/clientnotes/internal/ics"
	"github.com/dmitrijs2005/clientnotes/internal/logging"
	"github.com/dmitrijs2005/clientnotes/internal/models"
	"github.com/dmitrijs2005/clientnotes/internal/repositories/records"
)

type RecordService interface {
	// List reloads the full record set from the store.
	List(ctx context.Context) ([]models.Record, error)

	// Add persists a new record built from the draft's user fields.
	Add(ctx context.Context, draft models.Record) (*models.Record, error)

	// Get returns the record with the given id.
	Get(ctx context.Context, id string) (*models.Record, error)

	// Apply merges an edit request into the stored record and replaces it.
	Apply(ctx context.Context, id string, req models.EditRequest) error

	// ToggleStar flips the star flag and returns the new value.
	ToggleStar(ctx context.Context, id string) (bool, error)

	// Delete removes a record; a missing id is a no-op.
	Delete(ctx context.Context, id string) error

	// ImportCSV upserts rows parsed from CSV text one at a time. The import
	// is not atomic: rows persisted before a failing one stay persisted.
	// Returns the number of rows upserted.
	ImportCSV(ctx context.Context, text string) (int, error)

	// ImportJSON validates the whole payload first (rejecting anything that
	// is not a top-level array), then upserts element by element.
	ImportJSON(ctx context.Context, text string) (int, error)

	// ExportCSV renders the full record set as CSV text.
	ExportCSV(ctx context.Context) (string, error)

	// ExportJSON renders the full record set as pretty-printed JSON text.
	ExportJSON(ctx context.Context) (string, error)

	// CalendarEvent builds the ICS block for one record's follow-up.
	CalendarEvent(ctx context.Context, id string) (string, error)
}

type recordService struct {
	repo records.Repository
	log  logging.Logger
	now  func() time.Time
}

// NewRecordService returns a RecordService over the given repository.
func NewRecordService(repo records.Repository, log logging.Logger) RecordService {
	return &recordService{repo: repo, log: log, now: time.Now}
}

func (s *recordService) List(ctx context.Context) ([]models.Record, error) {
	recs, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading records: %w", err)
	}
	return recs, nil
}

func (s *recordService) Add(ctx context.Context, draft models.Record) (*models.Record, error) {
	rec := draft
	rec.Id = models.NewId()
	rec.Created = s.now().UnixMilli()

	if err := s.repo.Put(ctx, &rec); err != nil {
		return nil, fmt.Errorf("saving error: %w", err)
	}

	s.log.Debug(ctx, "record added", "id", rec.Id)
	return &rec, nil
}

func (s *recordService) Get(ctx context.Context, id string) (*models.Record, error) {
	recs, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range recs {
		if recs[i].Id == id {
			return &recs[i], nil
		}
	}
	return nil, fmt.Errorf("%w: record %s", common.ErrNotFound, id)
}

func (s *recordService) Apply(ctx context.Context, id string, req models.EditRequest) error {
	rec, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	updated := req.Apply(*rec)
	if err := s.repo.Put(ctx, &updated); err != nil {
		return fmt.Errorf("saving error: %w", err)
	}
	return nil
}

func (s *recordService) ToggleStar(ctx context.Context, id string) (bool, error) {
	rec, err := s.Get(ctx, id)
	if err != nil {
		return false, err
	}

	rec.Star = !rec.Star
	if err := s.repo.Put(ctx, rec); err != nil {
		return false, fmt.Errorf("saving error: %w", err)
	}
	return rec.Star, nil
}

func (s *recordService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete error: %w", err)
	}
	s.log.Debug(ctx, "record deleted", "id", id)
	return nil
}

func (s *recordService) ImportCSV(ctx context.Context, text string) (int, error) {
	recs, err := codec.ImportCSV(text)
	if err != nil {
		return 0, err
	}

	// row-by-row on purpose: a failure partway leaves prior rows persisted
	for i := range recs {
		if err := s.repo.Put(ctx, &recs[i]); err != nil {
			return i, fmt.Errorf("row %d: %w", i+1, err)
		}
	}

	s.log.Info(ctx, "csv import finished", "count", len(recs))
	return len(recs), nil
}

func (s *recordService) ImportJSON(ctx context.Context, text string) (int, error) {
	recs, err := codec.ImportJSON(text)
	if err != nil {
		return 0, err
	}

	for i := range recs {
		if err := s.repo.Put(ctx, &recs[i]); err != nil {
			return i, fmt.Errorf("element %d: %w", i+1, err)
		}
	}

	s.log.Info(ctx, "json import finished", "count", len(recs))
	return len(recs), nil
}

func (s *recordService) ExportCSV(ctx context.Context) (string, error) {
	recs, err := s.List(ctx)
	if err != nil {
		return "", err
	}
	return codec.ExportCSV(recs)
}

func (s *recordService) ExportJSON(ctx context.Context) (string, error) {
	recs, err := s.List(ctx)
	if err != nil {
		return "", err
	}
	return codec.ExportJSON(recs)
}

func (s *recordService) CalendarEvent(ctx context.Context, id string) (string, error) {
	rec, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return ics.BuildEvent(rec, s.now())
}
