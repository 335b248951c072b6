package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"onutec/internal/registration/models"
)

// catalogFile is the seed document:
//
//	committees:
//	  - name: Security Council
//	    period: morning
//	    slots: [Brazil, France]
type catalogFile struct {
	Committees []models.CatalogCommittee `yaml:"committees"`
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed <catalog.yaml>",
		Short: "Create committees and slots from a YAML catalog; existing entries are kept",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			entries, err := parseCatalog(f)
			if err != nil {
				return err
			}
			return seed(cmd.Context(), cmd.OutOrStdout(), entries)
		},
	}
}

func parseCatalog(r io.Reader) ([]models.CatalogCommittee, error) {
	var doc catalogFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return doc.Committees, nil
}

func seed(ctx context.Context, out io.Writer, entries []models.CatalogCommittee) error {
	a, err := loadApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	summary, err := a.registrationService(serviceOptions{}).ImportCatalog(ctx, entries)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "committees created: %d, slots created: %d, slots already present: %d\n",
		summary.CommitteesCreated, summary.SlotsCreated, summary.SlotsExisting)
	return nil
}
