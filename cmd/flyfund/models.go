package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"flyfund/internal/registry"
)

func buildModelsCmd(cfgPath *string) *cobra.Command {
	var modelsDir string

	cmd := &cobra.Command{
		Use:   "models",
		Short: "List *.gguf models visible in the models directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*cfgPath)
			if err != nil {
				return err
			}
			if modelsDir != "" {
				cfg.ModelsDir = modelsDir
			}
			models, err := registry.LoadDir(cfg.ModelsDir)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tSIZE\tFINGERPRINT")
			for _, m := range models {
				fmt.Fprintf(tw, "%s\t%d\t%s\n", m.ID, m.SizeBytes, m.Fingerprint)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&modelsDir, "models-dir", "", "Directory to scan for *.gguf model files")
	return cmd
}
