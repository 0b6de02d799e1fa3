/*
Copyright © 2023 NAME HERE <EMAIL ADDRESS>

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
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/xoviat/rpt2pnp/lib"
	"go.uber.org/zap"
)

var (
	configFile      string
	calibrationFile string
	noOptimize      bool
)

/*
	Flags shared by every command that sequences a board.
*/
func addJobFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&configFile, "config", "c", "", "tape layout (text or .yaml)")
	cmd.Flags().StringVarP(&calibrationFile, "calibration", "C", "", "calibration log to infer the tape layout from")
	cmd.Flags().Float64("offset-x", lib.DefaultOffset.X, "board X offset in machine coordinates")
	cmd.Flags().Float64("offset-y", lib.DefaultOffset.Y, "board Y offset in machine coordinates")
	cmd.Flags().String("start", "home", "optimizer start: home or first")
	cmd.Flags().Float64("home-x", 0, "machine home X for --start home")
	cmd.Flags().Float64("home-y", 0, "machine home Y for --start home")
	cmd.Flags().BoolVar(&noOptimize, "no-optimize", false, "keep report order")
}

func jobOptions(cmd *cobra.Command) (lib.JobOptions, error) {
	opts := lib.DefaultJobOptions()
	if err := bindJobFlags(cmd); err != nil {
		return opts, err
	}

	opts.Offset = lib.Pos(viper.GetFloat64("offset-x"), viper.GetFloat64("offset-y"))
	opts.Home = lib.Pos(viper.GetFloat64("home-x"), viper.GetFloat64("home-y"))
	opts.Optimize = !noOptimize

	start, ok := lib.ParseStartMode(viper.GetString("start"))
	if !ok {
		return opts, fmt.Errorf("invalid --start %q, expected home or first", viper.GetString("start"))
	}
	opts.Start = start

	return opts, nil
}

func loadBoard(src string) (*lib.Board, error) {
	parts, err := lib.ReadParts(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read report: %w", err)
	}

	board, err := lib.NewBoard(parts)
	if err != nil {
		return nil, err
	}

	zap.S().Infof("Found %d components", len(board.Parts()))
	return board, nil
}

/*
	Load the feeder configuration from --config or --calibration. Returns
	nil without either flag.
*/
func loadConfig(board *lib.Board) (*lib.PnPConfig, error) {
	if configFile != "" && calibrationFile != "" {
		return nil, errors.New("--config and --calibration are mutually exclusive")
	}

	if configFile != "" {
		config, err := lib.ReadPnPConfiguration(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read configuration %s: %w", configFile, err)
		}
		return config, nil
	}

	if calibrationFile != "" {
		config, problems, err := lib.ReadCalibrationLog(board, calibrationFile)
		if err != nil {
			return nil, err
		}
		for _, problem := range problems {
			zap.S().Warnf("%s: %s", calibrationFile, problem)
		}
		return config, nil
	}

	return nil, nil
}

/*
	Report the parts the run had to skip, with suggestions for parts that
	have no tape.
*/
func reportProblems(summary *lib.Summary, config *lib.PnPConfig) {
	if len(summary.Problems) == 0 {
		return
	}

	var suggester *lib.Suggester
	if config != nil {
		s, err := lib.NewSuggester(config)
		if err != nil {
			zap.S().Errorf("failed to build suggestions: %s", err)
		} else {
			suggester = s
			defer suggester.Close()
		}
	}

	for _, problem := range summary.Problems {
		zap.S().Warn(problem)

		var lerr *lib.Error
		if suggester == nil || !errors.As(problem, &lerr) || lerr.Kind != lib.KindLookup || lerr.Part == nil {
			continue
		}

		keys, err := suggester.Suggest(lerr.Part, 3)
		if err == nil && len(keys) > 0 {
			zap.S().Infow("did you mean", "part", lerr.Part.ComponentName, "keys", keys)
		}
	}
}
