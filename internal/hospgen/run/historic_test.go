package run

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amc-dataeng/hospgen/internal/hospgen/catalog"
	"github.com/amc-dataeng/hospgen/internal/hospgen/sink"
	"github.com/amc-dataeng/hospgen/internal/hospgen/status"
)

func testHistoric(t *testing.T) (*Historic, string) {
	t.Helper()
	dir := t.TempDir()
	store := status.NewStore(filepath.Join(dir, "status.json"))
	return &Historic{
		Catalog: catalog.Default(),
		Files:   &sink.Files{Outdir: dir, Store: store},
		Store:   store,
	}, dir
}

func TestParamsValidate(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	assert.NoError(t, Params{Start: start, End: end, Patients: 10}.Validate())
	assert.Error(t, Params{Start: start, End: end, Patients: 0}.Validate())
	assert.Error(t, Params{Start: start, End: end, Patients: -5}.Validate())
	assert.Error(t, Params{Patients: 10}.Validate())
	assert.Error(t, Params{Start: end, End: start, Patients: 10}.Validate(),
		"end before start must be rejected")
}

func TestHistoricRun(t *testing.T) {
	h, dir := testHistoric(t)
	p := Params{
		Start:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		End:      time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		Patients: 10,
	}

	summary, err := h.Run(context.Background(), p)
	require.NoError(t, err)

	assert.NotEmpty(t, summary.RunID)
	assert.Equal(t, 10, summary.Patients)
	assert.Equal(t, 30, summary.Admissions, "three admissions per patient")
	assert.GreaterOrEqual(t, summary.Labs, 30, "at least one lab per admission")
	assert.LessOrEqual(t, summary.Diagnostics, 30, "at most one diagnostic per admission")
	assert.GreaterOrEqual(t, summary.Medications, 30)
	assert.LessOrEqual(t, summary.Medications, 60)
	assert.Equal(t, 30, summary.RevenueRows, "one revenue row per admission")

	// Seven entities in three encodings each.
	assert.Len(t, summary.Files, 21)
	for _, f := range summary.Files {
		_, err := os.Stat(f)
		assert.NoError(t, err, "reported file %s must exist", f)
	}
	matches, err := filepath.Glob(filepath.Join(dir, "2024-01-*"))
	require.NoError(t, err)
	assert.Len(t, matches, 21, "all files carry the yyyy-mm- prefix")

	rec, ok := h.Store.Snapshot()
	require.True(t, ok)
	assert.Equal(t, "historic", rec.Mode)
	assert.Equal(t, "done", rec.Step)
	assert.Equal(t, 10, rec.Patients)
	assert.Equal(t, 30, rec.Admissions)
	assert.Equal(t, 30, rec.RevenueRows)
	assert.NotEmpty(t, rec.Logs)
	assert.Nil(t, rec.DBWriteOK, "no database configured, db_write_ok stays unset")
}

func TestHistoricRun_KeepsDBProbeOutcome(t *testing.T) {
	h, _ := testHistoric(t)
	connected := false
	h.Store.Update(func(r *status.Record) {
		r.DBURL = "mysql://amc@127.0.0.1:3306/amc"
		r.DBConnected = &connected
		r.DBError = "dial tcp 127.0.0.1:3306: connection refused"
	})

	_, err := h.Run(context.Background(), Params{
		Start:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		End:      time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		Patients: 5,
	})
	require.NoError(t, err)

	rec, ok := h.Store.Snapshot()
	require.True(t, ok)
	assert.Equal(t, "done", rec.Step)
	assert.Equal(t, "mysql://amc@127.0.0.1:3306/amc", rec.DBURL)
	require.NotNil(t, rec.DBConnected, "probe outcome must survive the run's status reset")
	assert.False(t, *rec.DBConnected)
	assert.Equal(t, "dial tcp 127.0.0.1:3306: connection refused", rec.DBError)
}

func TestHistoricRun_FileFailureDoesNotAbort(t *testing.T) {
	dir := t.TempDir()
	// An output path beneath a regular file makes every MkdirAll fail.
	blocker := filepath.Join(dir, "blocked")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	store := status.NewStore(filepath.Join(dir, "status.json"))
	h := &Historic{
		Catalog: catalog.Default(),
		Files:   &sink.Files{Outdir: filepath.Join(blocker, "out"), Store: store},
		Store:   store,
	}

	summary, err := h.Run(context.Background(), Params{
		Start:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		End:      time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		Patients: 5,
	})
	require.NoError(t, err, "sink failures must not abort the run")

	assert.Equal(t, 5, summary.Patients)
	assert.Equal(t, 15, summary.Admissions)
	assert.Empty(t, summary.Files)

	rec, ok := h.Store.Snapshot()
	require.True(t, ok)
	assert.Equal(t, "done", rec.Step)
	assert.Equal(t, 5, rec.Patients)
	var failures int
	for _, line := range rec.Logs {
		if strings.Contains(line, "File write failed") {
			failures++
		}
	}
	assert.Equal(t, 7, failures, "one logged failure per table")
}

func TestHistoricRun_RejectsBadParams(t *testing.T) {
	h, _ := testHistoric(t)
	_, err := h.Run(context.Background(), Params{Patients: 0})
	assert.Error(t, err)
	_, ok := h.Store.Snapshot()
	assert.False(t, ok, "invalid params must not touch the status file")
}
