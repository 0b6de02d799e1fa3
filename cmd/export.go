/*
Copyright © 2020 Mars Galactic <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xoviat/rpt2pnp/lib"
)

var exportCmd = &cobra.Command{
	Use:   "export <report> <plan.xlsx>",
	Short: "Export the placement plan.",
	Long: `Export the sequenced placement plan in the xlsx format.

	With a tape layout every part is resolved to its pick position; the
	feeder state is not touched.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		dst := args[1]
		if !strings.HasSuffix(dst, "xlsx") {
			return fmt.Errorf("export file name must be an excel file")
		}

		opts, err := jobOptions(cmd)
		if err != nil {
			return err
		}
		cmd.SilenceUsage = true

		board, err := loadBoard(args[0])
		if err != nil {
			return err
		}

		config, err := loadConfig(board)
		if err != nil {
			return err
		}
		opts.Resolve = config != nil

		plan := &lib.PlanRecorder{}
		summary, err := lib.Run(board, config, plan, opts)
		if err != nil {
			return err
		}
		reportProblems(summary, config)

		if err := lib.WritePlan(dst, plan.Placements, config); err != nil {
			return err
		}

		fmt.Printf("exported %d placements to %s\n", len(plan.Placements), dst)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	addJobFlags(exportCmd)
}
