package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/eppwiresh/eppwire/internal/store"
)

// ---------------------------------------------------------------------------
// journalCmd
// ---------------------------------------------------------------------------

func journalCmd() *cobra.Command {
	var (
		limit     int
		findArg   string
		pruneDays int
	)

	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Show the local transaction journal",
		RunE: func(cmd *cobra.Command, args []string) error {
			j, err := store.OpenJournal(dataDir())
			if err != nil {
				return fmt.Errorf("opening journal: %w", err)
			}
			defer j.Close()

			if pruneDays > 0 {
				n, err := j.Prune(time.Duration(pruneDays) * 24 * time.Hour)
				if err != nil {
					return err
				}
				fmt.Printf("Pruned %d entries older than %d days.\n", n, pruneDays)
				return nil
			}

			if findArg != "" {
				e, err := j.FindByClTRID(findArg)
				if err != nil {
					return err
				}
				if e == nil {
					return fmt.Errorf("no journal entry for clTRID %q", findArg)
				}
				printEntry(*e)
				return nil
			}

			entries, err := j.Recent(limit)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println("Journal is empty.")
				return nil
			}
			for _, e := range entries {
				printEntry(e)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum entries to show")
	cmd.Flags().StringVar(&findArg, "find", "", "Look up one entry by client transaction ID")
	cmd.Flags().IntVar(&pruneDays, "prune", 0, "Delete entries older than this many days")
	return cmd
}

func printEntry(e store.Entry) {
	fmt.Printf("%s  %-12s %-10s %4d  %6s  %s -> %s\n",
		e.RecordedAt.Format(time.RFC3339), e.Registry, e.Command,
		int(e.Code), e.Elapsed().Truncate(time.Millisecond), e.ClTRID, e.SvTRID)
}
