package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"foldersort/internal/classify"
)

func newMappingCommand(ctx *commandContext) *cobra.Command {
	var mapFile string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "mapping",
		Short: "Show the effective extension to category mapping",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			mapping, err := buildMapping(cfg, mapFile)
			if err != nil {
				return err
			}

			entries := mapping.Entries()
			if jsonOutput {
				return writeJSON(cmd, entries)
			}

			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				rows = append(rows, []string{e.Category, e.Extension})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, tableSpec{
				headers: []string{"Category", "Extension"},
				rows:    rows,
				footer:  []string{fmt.Sprintf("%d extensions", len(entries)), ""},
			}.render())
			fmt.Fprintf(out, "Unlisted extensions go to %s.\n", classify.Fallback)
			return nil
		},
	}

	cmd.Flags().StringVar(&mapFile, "map", "", "Extension override file to apply on top of the configuration")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the mapping as JSON")
	return cmd
}
