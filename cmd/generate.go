/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

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
	"io"
	"os"

	"github.com/mholt/archiver"
	"github.com/spf13/cobra"
	"github.com/xoviat/rpt2pnp/lib"
	"go.uber.org/zap"
)

var (
	mode        string
	output      string
	initMs      float64
	areaMs      float64
	statePath   string
	planPath    string
	archivePath string
)

var generateCmd = &cobra.Command{
	Use:   "generate <report>",
	Short: "Generate a machine program from a placement report.",
	Long: `Generate a machine program from a placement report (.rpt, .csv, .pos or .kicad_pcb).

	Modes:
		- dispense   : solder paste dispensing G-code (default)
		- corners    : dry run visiting the part nearest each board corner
		- pnp        : pick and place G-code, needs --config or --calibration
		- postscript : PostScript preview of the board
		- list       : CSV listing in machine coordinates
	`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
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

		var store *lib.FeederStore
		if statePath != "" && config != nil {
			store, err = lib.OpenFeederStore(statePath)
			if err != nil {
				return fmt.Errorf("failed to open feeder state: %w", err)
			}
			defer store.Close()

			if err := store.Restore(config); err != nil {
				return fmt.Errorf("failed to restore feeder state: %w", err)
			}
		}

		var w io.Writer = os.Stdout
		if output != "" {
			fp, err := os.Create(output)
			if err != nil {
				return err
			}
			defer fp.Close()
			w = fp
		}

		var sink lib.Sink
		switch mode {
		case "dispense":
			g := lib.NewDispenseGCode(w, initMs, areaMs)
			g.Machine = machineSettings()
			sink = g
		case "corners":
			opts.Corners = lib.NewCornerPartCollector(board.Dimension())
			g := lib.NewCornerGCode(w, opts.Corners)
			g.Machine = machineSettings()
			sink = g
		case "pnp":
			opts.Resolve = true
			g := lib.NewPlaceGCode(w)
			g.Machine = machineSettings()
			sink = g
		case "postscript":
			opts.Corners = lib.NewCornerPartCollector(board.Dimension())
			sink = lib.NewPostScriptPrinter(w, opts.Corners)
		case "list":
			sink = lib.NewListing(w)
		default:
			return fmt.Errorf("unknown mode %q", mode)
		}

		// postscript shows the pick paths when a layout is known, parts
		// without a tape are still drawn
		if mode == "postscript" && config != nil {
			opts.Resolve = true
			opts.ResolveOptional = true
		}

		plan := &lib.PlanRecorder{}
		if planPath != "" {
			sink = lib.MultiSink(sink, plan)
		}

		summary, err := lib.Run(board, config, sink, opts)
		if err != nil {
			return err
		}

		reportProblems(summary, config)
		zap.S().Infof("Emitted %d of %d parts, skipped %d", summary.Emitted, summary.Parts, summary.Skipped)

		if store != nil && savesFeederState(mode) {
			if err := store.Save(config); err != nil {
				return fmt.Errorf("failed to save feeder state: %w", err)
			}
		}

		files := []string{}
		if output != "" {
			files = append(files, output)
		}
		if planPath != "" {
			if err := lib.WritePlan(planPath, plan.Placements, config); err != nil {
				return fmt.Errorf("failed to write plan: %w", err)
			}
			files = append(files, planPath)
		}

		if archivePath != "" {
			if len(files) == 0 {
				return fmt.Errorf("--archive needs --output or --plan")
			}
			if err := archiver.Archive(files, archivePath); err != nil {
				return fmt.Errorf("failed to archive output: %w", err)
			}
		}

		return nil
	},
}

/*
	Only a pick and place run takes components off the tapes.
*/
func savesFeederState(mode string) bool {
	return mode == "pnp"
}

func init() {
	rootCmd.AddCommand(generateCmd)

	addJobFlags(generateCmd)
	generateCmd.Flags().StringVarP(&mode, "mode", "m", "dispense", "dispense, corners, pnp, postscript or list")
	generateCmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	generateCmd.Flags().Float64VarP(&initMs, "init-ms", "d", 50, "dispensing init time ms")
	generateCmd.Flags().Float64VarP(&areaMs, "area-ms", "D", 25, "dispensing time ms/mm^2")
	generateCmd.Flags().StringVar(&statePath, "state", "", "feeder state database to continue tapes across runs (saved by --mode pnp)")
	generateCmd.Flags().StringVar(&planPath, "plan", "", "also write the resolved plan as xlsx")
	generateCmd.Flags().StringVar(&archivePath, "archive", "", "bundle the output and plan into an archive (.zip, .tar.gz)")
}
