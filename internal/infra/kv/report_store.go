package kv

import (
	"context"
	"encoding/json"

	domain "github.com/sitewalk/inspection-api/internal/domain/reports"
)

// reportsKey is the single storage key holding the JSON-serialized report
// collection.
const reportsKey = "reports"

// ReportStore implements reports.Repository over the single-key collection.
type ReportStore struct {
	kv *Store
}

func NewReportStore(kv *Store) *ReportStore {
	return &ReportStore{kv: kv}
}

func (r *ReportStore) load() ([]*domain.Report, error) {
	data, ok, err := r.kv.Get(reportsKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var list []*domain.Report
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *ReportStore) store(list []*domain.Report) error {
	data, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return r.kv.Set(reportsKey, data)
}

// Save appends the report to the collection. Saving an id that already
// exists replaces the stored copy, so a repeated save never duplicates.
func (r *ReportStore) Save(_ context.Context, rep *domain.Report) error {
	list, err := r.load()
	if err != nil {
		return err
	}
	for i, existing := range list {
		if existing.ID == rep.ID {
			list[i] = rep
			return r.store(list)
		}
	}
	list = append(list, rep)
	return r.store(list)
}

func (r *ReportStore) Get(_ context.Context, id domain.ReportID) (*domain.Report, error) {
	list, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, rep := range list {
		if rep.ID == id {
			return rep, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *ReportStore) List(_ context.Context) ([]*domain.Report, error) {
	return r.load()
}

func (r *ReportStore) Delete(_ context.Context, id domain.ReportID) error {
	list, err := r.load()
	if err != nil {
		return err
	}
	out := list[:0]
	for _, rep := range list {
		if rep.ID != id {
			out = append(out, rep)
		}
	}
	return r.store(out)
}
