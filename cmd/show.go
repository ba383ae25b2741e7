package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/salesops/pulse/internal/render"
	"github.com/salesops/pulse/internal/report"
)

var showCmd = &cobra.Command{
	Use:   "show FILE",
	Short: "Render a generated report in the terminal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening report: %w", err)
		}
		defer f.Close()

		rep, err := report.Read(f)
		if err != nil {
			return fmt.Errorf("reading report: %w", err)
		}

		fmt.Print(render.Render(rep))
		return nil
	},
}
