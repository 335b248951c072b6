package main

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"onutec/internal/registration/export"
	"onutec/internal/registration/models"
)

func newExportCmd() *cobra.Command {
	var (
		output string
		filter models.RegistrationFilter
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write registrations as CSV",
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			if output != "" {
				if output == "." {
					output = export.FileName(time.Now())
				}
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			return exportCSV(cmd.Context(), w, filter)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", `file to write, "." for a timestamped name (default stdout)`)
	cmd.Flags().StringSliceVar(&filter.Periods, "period", nil, "only these periods")
	cmd.Flags().StringSliceVar(&filter.Committees, "committee", nil, "only these committee names")
	cmd.Flags().StringSliceVar(&filter.Slots, "slot", nil, "only these slot names")
	return cmd
}

func exportCSV(ctx context.Context, w io.Writer, filter models.RegistrationFilter) error {
	a, err := loadApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	rows, err := a.registrationService(serviceOptions{}).ExportRows(ctx, filter)
	if err != nil {
		return err
	}
	return export.WriteCSV(w, rows)
}
