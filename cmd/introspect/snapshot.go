package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/conduit-lang/introspect/descriptor"
)

const snapshotSchemaVersion = "1.0"

func newSnapshotCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Manage snapshot files",
	}
	cmd.AddCommand(newSnapshotInitCommand())
	cmd.AddCommand(newSnapshotInfoCommand())
	return cmd
}

// newSnapshotInitCommand writes an empty, stamped snapshot file that a
// metadata exporter can fill in.
func newSnapshotInitCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write an empty snapshot skeleton",
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshot := descriptor.Snapshot{
				ID:        uuid.NewString(),
				Version:   snapshotSchemaVersion,
				Generated: time.Now().UTC(),
			}

			data, err := json.MarshalIndent(snapshot, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal snapshot: %w", err)
			}
			if err := os.WriteFile(output, append(data, '\n'), 0o644); err != nil {
				return fmt.Errorf("failed to write snapshot: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (id %s)\n", output, snapshot.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "introspect.snapshot.json", "Output file")
	return cmd
}

func newSnapshotInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Summarize the configured snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			defer logger.Sync()

			reg, err := loadRegistry(logger)
			if err != nil {
				return err
			}
			snapshot := reg.Snapshot()

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Version:    %s\n", snapshot.Version)
			fmt.Fprintf(w, "Generated:  %s\n", snapshot.Generated.Format(time.RFC3339))
			if snapshot.ID != "" {
				fmt.Fprintf(w, "ID:         %s\n", snapshot.ID)
			}
			fmt.Fprintf(w, "Routes:     %d\n", len(snapshot.Routes))
			fmt.Fprintf(w, "Models:     %d\n", len(snapshot.Models))
			fmt.Fprintf(w, "Views:      %d\n", len(snapshot.Views))
			fmt.Fprintf(w, "Middleware: %d\n", len(snapshot.Middleware))
			fmt.Fprintf(w, "Events:     %d\n", len(snapshot.Events))
			fmt.Fprintf(w, "Jobs:       %d\n", len(snapshot.Jobs))
			fmt.Fprintf(w, "Providers:  %d\n", len(snapshot.Providers))
			fmt.Fprintf(w, "Traits:     %d\n", len(snapshot.Traits))
			fmt.Fprintf(w, "Interfaces: %d\n", len(snapshot.Interfaces))
			return nil
		},
	}
}
