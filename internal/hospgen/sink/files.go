// Package sink persists generated tables. Every table is written in three
// equivalent encodings (gzip CSV, gzip NDJSON, Parquet), optionally mirrored
// into a SQL database and uploaded to Azure Blob Storage. All sink failures
// are reported to the caller, which treats them as non-fatal.
package sink

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/parquet-go/parquet-go"

	"github.com/amc-dataeng/hospgen/internal/hospgen/logger"
	"github.com/amc-dataeng/hospgen/internal/hospgen/status"
)

// Files writes entity tables beneath an output directory and records every
// written path in the status store. An optional Uploader mirrors each file to
// blob storage.
type Files struct {
	Outdir   string
	Store    *status.Store
	Uploader *Uploader
}

// HistoricBase returns the historic file base name, prefixed yyyy-mm- from
// the run's start date.
func HistoricBase(datePrefix, entity string) string {
	return fmt.Sprintf("%s-%s", datePrefix, entity)
}

// LiveBase returns the per-tick file base name, e.g. patients_live_0004.
func LiveBase(entity string, batch int) string {
	return fmt.Sprintf("%s_live_%04d", entity, batch)
}

// SaveTable writes rows under base in all three encodings and returns the
// written paths. The status store is updated with the new files and a log
// line naming them.
func SaveTable[T any](ctx context.Context, s *Files, base string, rows []T) ([]string, error) {
	if err := os.MkdirAll(s.Outdir, 0o755); err != nil {
		return nil, fmt.Errorf("create outdir: %w", err)
	}

	csvPath := filepath.Join(s.Outdir, base+".csv.gz")
	if err := writeGzip(csvPath, func(gz *gzip.Writer) error {
		return writeCSV(gz, rows)
	}); err != nil {
		return nil, err
	}

	jsonPath := filepath.Join(s.Outdir, base+".json.gz")
	if err := writeGzip(jsonPath, func(gz *gzip.Writer) error {
		enc := json.NewEncoder(gz)
		for _, row := range rows {
			if err := enc.Encode(row); err != nil {
				return fmt.Errorf("encode row: %w", err)
			}
		}
		return nil
	}); err != nil {
		return nil, err
	}

	parquetPath := filepath.Join(s.Outdir, base+".parquet")
	if err := writeParquet(parquetPath, rows); err != nil {
		return nil, err
	}

	files := []string{csvPath, jsonPath, parquetPath}
	s.Store.Log("Saved %s → %s, %s, %s", base,
		filepath.Base(csvPath), filepath.Base(jsonPath), filepath.Base(parquetPath))
	s.Store.Update(func(r *status.Record) {
		r.FilesWritten = append(r.FilesWritten, files...)
	})

	if s.Uploader != nil {
		for _, f := range files {
			s.Uploader.Upload(ctx, f)
		}
	}
	return files, nil
}

func writeGzip(path string, fill func(*gzip.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	gz := gzip.NewWriter(f)
	if err := fill(gz); err != nil {
		gz.Close()
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := gz.Close(); err != nil {
		f.Close()
		return fmt.Errorf("flush %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

func writeParquet[T any](path string, rows []T) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	w := parquet.NewGenericWriter[T](f)
	if len(rows) > 0 {
		if _, err := w.Write(rows); err != nil {
			w.Close()
			f.Close()
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	if err := w.Close(); err != nil {
		f.Close()
		return fmt.Errorf("flush %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	logger.L().Debugw("table saved", "path", path, "rows", len(rows))
	return nil
}
