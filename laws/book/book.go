// Package book keeps the outcomes of law suite runs in an in-memory
// database so that results can be compared across runs.
package book

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	memdb "github.com/hashicorp/go-memdb"
	"github.com/on-the-ground/kosmos/laws"
	"github.com/rickb777/date/v2/timespan"
)

const (
	runsTable     = "runs"
	outcomesTable = "outcomes"
)

// Run summarizes one recorded Report.
type Run struct {
	ID     string
	Suite  string
	Seed   int64
	Laws   int
	Passed bool
	Span   timespan.TimeSpan
}

// Entry is one recorded law outcome.
type Entry struct {
	// Key is RunID/Law.
	Key            string
	RunID          string
	Suite          string
	Law            string
	Status         string
	Seed           int64
	Succeeded      int
	Counterexample string
	Cause          string
}

func schema() *memdb.DBSchema {
	return &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			runsTable: {
				Name: runsTable,
				Indexes: map[string]*memdb.IndexSchema{
					"id": {
						Name:    "id",
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "ID"},
					},
					"suite": {
						Name:    "suite",
						Indexer: &memdb.StringFieldIndex{Field: "Suite"},
					},
				},
			},
			outcomesTable: {
				Name: outcomesTable,
				Indexes: map[string]*memdb.IndexSchema{
					"id": {
						Name:    "id",
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "Key"},
					},
					"run": {
						Name:    "run",
						Indexer: &memdb.StringFieldIndex{Field: "RunID"},
					},
					"suite": {
						Name:    "suite",
						Indexer: &memdb.StringFieldIndex{Field: "Suite"},
					},
					"law": {
						Name:    "law",
						Indexer: &memdb.StringFieldIndex{Field: "Law"},
					},
					"status": {
						Name:    "status",
						Indexer: &memdb.StringFieldIndex{Field: "Status"},
					},
				},
			},
		},
	}
}

// Book records reports. It is safe for concurrent use.
type Book struct {
	db *memdb.MemDB
}

// NewBook returns an empty book.
func NewBook() (*Book, error) {
	db, err := memdb.NewMemDB(schema())
	if err != nil {
		return nil, fmt.Errorf("book: %w", err)
	}
	return &Book{db: db}, nil
}

// Record stores a report and all of its outcomes in one transaction.
// Recording the same report twice replaces it.
func (b *Book) Record(r laws.Report) error {
	txn := b.db.Txn(true)
	defer txn.Abort()

	runID := r.ID.String()
	run := &Run{
		ID:     runID,
		Suite:  r.Suite,
		Seed:   r.Seed,
		Laws:   len(r.Outcomes),
		Passed: r.Passed(),
		Span:   r.Span,
	}
	if err := txn.Insert(runsTable, run); err != nil {
		return fmt.Errorf("book: record run %s: %w", runID, err)
	}
	for _, o := range r.Outcomes {
		e := &Entry{
			Key:       runID + "/" + o.Law,
			RunID:     runID,
			Suite:     r.Suite,
			Law:       o.Law,
			Status:    o.Status.String(),
			Seed:      o.Seed,
			Succeeded: o.Succeeded,
		}
		if o.Counterexample != nil {
			e.Counterexample = o.Counterexample.String()
		}
		if o.Cause != nil {
			e.Cause = o.Cause.Error()
		}
		if err := txn.Insert(outcomesTable, e); err != nil {
			return fmt.Errorf("book: record %s: %w", e.Key, err)
		}
	}
	txn.Commit()
	return nil
}

// Run returns the run with the given id.
func (b *Book) Run(id uuid.UUID) (Run, bool, error) {
	txn := b.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(runsTable, "id", id.String())
	if err != nil || raw == nil {
		return Run{}, false, err
	}
	return *raw.(*Run), true, nil
}

// Runs returns every recorded run, oldest first.
func (b *Book) Runs() ([]Run, error) {
	txn := b.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(runsTable, "id")
	if err != nil {
		return nil, err
	}
	var runs []Run
	for raw := it.Next(); raw != nil; raw = it.Next() {
		runs = append(runs, *raw.(*Run))
	}
	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].Span.Start().Before(runs[j].Span.Start())
	})
	return runs, nil
}

// Outcomes returns the outcomes of one run.
func (b *Book) Outcomes(id uuid.UUID) ([]Entry, error) {
	return b.entries("run", id.String())
}

// BySuite returns every outcome recorded for the named suite.
func (b *Book) BySuite(suite string) ([]Entry, error) {
	return b.entries("suite", suite)
}

// ByLaw returns every outcome recorded for the named law.
func (b *Book) ByLaw(law string) ([]Entry, error) {
	return b.entries("law", law)
}

// Failures returns every falsified law across runs.
func (b *Book) Failures() ([]Entry, error) {
	return b.entries("status", laws.Failed.String())
}

// Errors returns every law that could not be checked across runs.
func (b *Book) Errors() ([]Entry, error) {
	return b.entries("status", laws.Errored.String())
}

func (b *Book) entries(index, value string) ([]Entry, error) {
	txn := b.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(outcomesTable, index, value)
	if err != nil {
		return nil, fmt.Errorf("book: %s %q: %w", index, value, err)
	}
	var out []Entry
	for raw := it.Next(); raw != nil; raw = it.Next() {
		out = append(out, *raw.(*Entry))
	}
	return out, nil
}
