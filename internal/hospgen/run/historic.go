// Package run orchestrates the two generation modes: a one-shot historic run
// over a date range, and the background live feed that emits a small batch of
// rows on every tick. Both report progress through the shared status store.
package run

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/amc-dataeng/hospgen/internal/hospgen/catalog"
	"github.com/amc-dataeng/hospgen/internal/hospgen/gen"
	"github.com/amc-dataeng/hospgen/internal/hospgen/logger"
	"github.com/amc-dataeng/hospgen/internal/hospgen/sink"
	"github.com/amc-dataeng/hospgen/internal/hospgen/status"
)

// Params are the user-supplied knobs for a historic run.
type Params struct {
	Start    time.Time
	End      time.Time
	Patients int
}

// Validate rejects impossible parameter combinations before any file is
// touched.
func (p Params) Validate() error {
	if p.Patients <= 0 {
		return fmt.Errorf("num_patients must be positive, got %d", p.Patients)
	}
	if p.Start.IsZero() || p.End.IsZero() {
		return fmt.Errorf("start and end dates are required")
	}
	if p.End.Before(p.Start) {
		return fmt.Errorf("end date %s is before start date %s",
			p.End.Format(gen.DateLayout), p.Start.Format(gen.DateLayout))
	}
	return nil
}

// Summary reports the row counts of a completed historic run.
type Summary struct {
	RunID       string
	Patients    int
	Admissions  int
	Labs        int
	Diagnostics int
	Medications int
	RevenueRows int
	Files       []string
}

// Historic runs the full pipeline: primary entities, ancillary orders,
// derived tables, file output and the optional database mirror. Sink failures
// (file writes, database, uploads) are logged into the status record and the
// remaining steps still run; only parameter validation aborts.
type Historic struct {
	Catalog *catalog.Catalog
	Files   *sink.Files
	Store   *status.Store
	DB      *sink.DB // nil when the probe at startup failed
}

func (h *Historic) Run(ctx context.Context, p Params) (*Summary, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	prefix := p.Start.Format("2006-01")
	log := logger.L().With("run_id", runID)

	h.Store.Reset("historic", h.Files.Outdir)
	h.Store.Log("Run %s: %d patients, %s to %s", runID, p.Patients,
		p.Start.Format(gen.DateLayout), p.End.Format(gen.DateLayout))
	log.Infow("historic run started", "patients", p.Patients,
		"start", p.Start.Format(gen.DateLayout), "end", p.End.Format(gen.DateLayout))

	g := gen.New(h.Catalog)
	summary := &Summary{RunID: runID}

	h.Store.SetStep("patients")
	patients := g.Patients(p.Patients)
	summary.Patients = len(patients)
	summary.Files = append(summary.Files, saveTable(ctx, h, sink.HistoricBase(prefix, "patients"), patients)...)
	h.Store.Update(func(r *status.Record) { r.Patients = len(patients) })

	h.Store.SetStep("admissions")
	admissions := g.Admissions(patients, p.Start, p.End)
	summary.Admissions = len(admissions)
	summary.Files = append(summary.Files, saveTable(ctx, h, sink.HistoricBase(prefix, "admissions"), admissions)...)
	h.Store.Update(func(r *status.Record) { r.Admissions = len(admissions) })

	h.Store.SetStep("labs")
	labs := g.Labs(admissions)
	summary.Labs = len(labs)
	summary.Files = append(summary.Files, saveTable(ctx, h, sink.HistoricBase(prefix, "labs"), labs)...)
	h.Store.Update(func(r *status.Record) { r.Labs = len(labs) })

	h.Store.SetStep("diagnostics")
	diags := g.Diagnostics(admissions)
	summary.Diagnostics = len(diags)
	summary.Files = append(summary.Files, saveTable(ctx, h, sink.HistoricBase(prefix, "diagnostics"), diags)...)
	h.Store.Update(func(r *status.Record) { r.Diagnostics = len(diags) })

	h.Store.SetStep("medications")
	meds := g.Medications(admissions)
	summary.Medications = len(meds)
	summary.Files = append(summary.Files, saveTable(ctx, h, sink.HistoricBase(prefix, "medications"), meds)...)
	h.Store.Update(func(r *status.Record) { r.Medications = len(meds) })

	h.Store.SetStep("occupancy")
	occupancy := gen.BuildOccupancy(admissions)
	summary.Files = append(summary.Files, saveTable(ctx, h, sink.HistoricBase(prefix, "occupancy"), occupancy)...)

	h.Store.SetStep("revenue")
	revenue := gen.BuildRevenue(h.Catalog, admissions, labs, diags, meds)
	summary.RevenueRows = len(revenue)
	summary.Files = append(summary.Files, saveTable(ctx, h, sink.HistoricBase(prefix, "revenue"), revenue)...)
	h.Store.Update(func(r *status.Record) { r.RevenueRows = len(revenue) })

	if h.DB != nil {
		h.Store.SetStep("db_write")
		h.mirror(ctx, patients, admissions, labs, diags, meds, revenue)
	}

	h.Store.SetStep("done")
	h.Store.Log("Run %s complete: %d patients, %d admissions, %d labs, %d diagnostics, %d medications, %d revenue rows",
		runID, summary.Patients, summary.Admissions, summary.Labs,
		summary.Diagnostics, summary.Medications, summary.RevenueRows)
	log.Infow("historic run complete",
		"patients", summary.Patients, "admissions", summary.Admissions,
		"labs", summary.Labs, "diagnostics", summary.Diagnostics,
		"medications", summary.Medications, "revenue_rows", summary.RevenueRows)
	return summary, nil
}

// mirror writes all tables to the database. Failures mark db_write_ok false
// and stop mirroring, but never fail the run.
func (h *Historic) mirror(ctx context.Context,
	patients []gen.Patient, admissions []gen.Admission, labs []gen.Lab,
	diags []gen.Diagnostic, meds []gen.MedicationOrder, revenue []gen.Revenue) {

	err := func() error {
		if err := h.DB.EnsureSchema(ctx); err != nil {
			return err
		}
		inserts := []struct {
			table string
			count int
			do    func() error
		}{
			{"patients", len(patients), func() error { return h.DB.InsertPatients(ctx, patients) }},
			{"admissions", len(admissions), func() error { return h.DB.InsertAdmissions(ctx, admissions) }},
			{"labs", len(labs), func() error { return h.DB.InsertLabs(ctx, labs) }},
			{"diagnostics", len(diags), func() error { return h.DB.InsertDiagnostics(ctx, diags) }},
			{"medications", len(meds), func() error { return h.DB.InsertMedications(ctx, meds) }},
			{"revenue", len(revenue), func() error { return h.DB.InsertRevenue(ctx, revenue) }},
		}
		for _, ins := range inserts {
			if err := ins.do(); err != nil {
				return fmt.Errorf("table %s: %w", ins.table, err)
			}
			h.Store.Log("Inserted %d rows into table %s", ins.count, ins.table)
		}
		return nil
	}()

	ok := err == nil
	h.Store.Update(func(r *status.Record) {
		r.DBWriteOK = &ok
		if err != nil {
			r.DBWriteError = err.Error()
		}
	})
	if err != nil {
		h.Store.Log("Database write failed: %v", err)
		logger.L().Warnw("database mirror failed", "err", err)
		return
	}
	h.Store.Log("Database mirror complete")
}

// saveTable persists one table through the file sink. A failure is logged
// into the status record and yields no file paths; the run keeps going.
func saveTable[T any](ctx context.Context, h *Historic, base string, rows []T) []string {
	files, err := sink.SaveTable(ctx, h.Files, base, rows)
	if err != nil {
		h.Store.Log("File write failed for %s: %v", base, err)
		logger.L().Warnw("file write failed", "base", base, "err", err)
		return nil
	}
	return files
}
