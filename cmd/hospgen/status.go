package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amc-dataeng/hospgen/internal/hospgen/config"
	"github.com/amc-dataeng/hospgen/internal/hospgen/status"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the current run status",
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	store := status.NewStore(config.Get().Output.StatusFile)
	rec, ok := store.Snapshot()
	if !ok {
		fmt.Println("idle")
		return nil
	}

	fmt.Printf("mode:    %s\n", rec.Mode)
	fmt.Printf("step:    %s\n", rec.Step)
	fmt.Printf("outdir:  %s\n", rec.Outdir)
	fmt.Printf("updated: %s\n", rec.UpdatedAt)
	if rec.Mode == "live" {
		fmt.Printf("batch:   %d\n", rec.Batch)
		if rec.LastLiveCounts != nil {
			fmt.Printf("last tick: %d patients, %d admissions\n",
				rec.LastLiveCounts.Patients, rec.LastLiveCounts.Admissions)
		}
	} else {
		fmt.Printf("rows:    %d patients, %d admissions, %d labs, %d diagnostics, %d medications, %d revenue\n",
			rec.Patients, rec.Admissions, rec.Labs, rec.Diagnostics, rec.Medications, rec.RevenueRows)
	}
	if rec.DBConnected != nil {
		fmt.Printf("db:      connected=%v %s\n", *rec.DBConnected, rec.DBURL)
		if rec.DBError != "" {
			fmt.Printf("db err:  %s\n", rec.DBError)
		}
	}
	if rec.LastMessage != "" {
		fmt.Printf("last:    %s\n", rec.LastMessage)
	}
	return nil
}
