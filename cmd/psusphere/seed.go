package main

import (
	"github.com/spf13/cobra"

	"github.com/Chodoro/psusphere/internal/models"
	"github.com/Chodoro/psusphere/internal/seed"
)

func seedCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load demo records from a YAML fixture file",
		RunE: func(cmd *cobra.Command, args []string) error {
			fixtures, err := seed.LoadFile(file)
			if err != nil {
				return err
			}

			a, err := bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()
			if err := a.migrate(); err != nil {
				return err
			}

			summary, err := seed.NewSeeder(a.services().seedServices(), a.logger).Run(cmd.Context(), fixtures)
			if err != nil {
				return err
			}
			for _, e := range models.Entities {
				cmd.Printf("%-20s created %d, existing %d\n", e.Label(), summary.Created[e], summary.Skipped[e])
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "fixtures.yaml", "Fixture file")
	return cmd
}
