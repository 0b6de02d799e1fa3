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
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "rpt2pnp",
	Short: "Turn a component placement report into machine programs.",
	Long: `rpt2pnp converts a KiCad placement report into solder paste
dispensing G-code, pick and place G-code, corner calibration runs or a
PostScript preview.

Examples:
	rpt2pnp generate board.rpt > paste.gcode
	rpt2pnp generate -m corners board.rpt
	rpt2pnp generate -m pnp -c tapes.cfg --state feeders.db board.rpt
	rpt2pnp calibrate board.rpt jog.log
	rpt2pnp export -c tapes.cfg board.rpt plan.xlsx`,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger(logLevel)
		if err != nil {
			return err
		}
		zap.ReplaceGlobals(logger)

		return initConfig()
	},
}

/*
	Development logger on stderr, so that generated programs on stdout
	stay clean.
*/
func newLogger(level string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true

	return cfg.Build()
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		zap.S().Error(err)
		zap.S().Sync()
		os.Exit(1)
	}
	zap.S().Sync()
}

func init() {
	// errors before PersistentPreRunE still need a logger
	if logger, err := newLogger("info"); err == nil {
		zap.ReplaceGlobals(logger)
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug, info, warn or error")
	rootCmd.PersistentFlags().StringVar(&machineFile, "machine", "", "machine settings file (default ./rpt2pnp.yaml if present)")
}
