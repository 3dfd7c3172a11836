package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/amc-dataeng/hospgen/internal/hospgen/catalog"
	"github.com/amc-dataeng/hospgen/internal/hospgen/config"
	"github.com/amc-dataeng/hospgen/internal/hospgen/logger"
	"github.com/amc-dataeng/hospgen/internal/hospgen/run"
	"github.com/amc-dataeng/hospgen/internal/hospgen/sink"
	"github.com/amc-dataeng/hospgen/internal/hospgen/status"
)

var (
	cfgFile string
	Version = "v0.1"
	rootCmd = &cobra.Command{
		Use:   "hospgen",
		Short: "hospgen - synthetic hospital operations data generator",
		Long:  "hospgen: generate synthetic patient, admission, lab, diagnostic, medication, occupancy and revenue data for a fictitious Pakistani hospital.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// load config
			if cfgFile != "" {
				viper.SetConfigFile(cfgFile)
			} else {
				// default: ./config.yaml
				viper.SetConfigFile("config.yaml")
			}
			if err := viper.ReadInConfig(); err != nil {
				// Every command works on defaults alone, so a missing config
				// file is only worth a note.
				fmt.Fprintf(os.Stderr, "Warning: could not read config (%v). Using defaults and flags.\n", err)
			}
			if err := config.Load(viper.GetViper()); err != nil {
				return err
			}

			// init logger
			cfg := config.Get()
			if err := logger.InitLogger(cfg.Logging.Level); err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			return nil
		},
	}
)

func init() {
	cobra.OnInitialize()
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(liveCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(versionCmd)
}

// buildPipeline wires the shared plumbing every command needs: catalog,
// status store, file sink, optional blob uploader and the optional database.
// The database probe runs once here; a failed probe is recorded in status and
// the run proceeds file-only.
func buildPipeline(ctx context.Context) (*catalog.Catalog, *status.Store, *sink.Files, *sink.DB, error) {
	cfg := config.Get()

	cat, err := catalog.Load(cfg.Catalog.File)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("load catalog: %w", err)
	}

	store := status.NewStore(cfg.Output.StatusFile)
	files := &sink.Files{Outdir: cfg.Output.Dir, Store: store}

	if cfg.Azure.Enabled {
		up, err := sink.NewUploader(cfg.Azure, cfg.Output.Dir, store)
		if err != nil {
			logger.L().Warnw("blob upload disabled", "err", err)
			store.Log("Blob upload disabled: %v", err)
		} else {
			files.Uploader = up
		}
	}

	var db *sink.DB
	if cfg.DB.User != "" {
		db, err = sink.Connect(ctx, cfg.DB)
		connected := err == nil
		store.Update(func(r *status.Record) {
			r.DBURL = sink.DisplayURL(cfg.DB)
			r.DBConnected = &connected
			if err != nil {
				r.DBError = err.Error()
			}
		})
		if err != nil {
			logger.L().Warnw("database unavailable, continuing file-only", "err", err)
			db = nil
		}
	}

	return cat, store, files, db, nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newLive builds the live worker from config.
func newLive(cat *catalog.Catalog, files *sink.Files, store *status.Store, db *sink.DB) *run.Live {
	cfg := config.Get()
	return &run.Live{
		Catalog:  cat,
		Files:    files,
		Store:    store,
		DB:       db,
		Interval: cfg.Live.Interval(),
		Patients: cfg.Live.Patients,
		Admits:   cfg.Live.Admissions,
	}
}
