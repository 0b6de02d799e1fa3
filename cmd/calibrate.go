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
	"os"
	"strings"

	"github.com/c-bata/go-prompt"
	"github.com/spf13/cobra"
	"github.com/xoviat/rpt2pnp/lib"
)

var calibrateCmd = &cobra.Command{
	Use:   "calibrate <report> <log>",
	Short: "Record a calibration log.",
	Long: `Record measured machine positions into a calibration log.

		Jog the machine to a component and enter one line per measurement:
			- tape<N>:<key> x y z      : slot N of the tape for key
			- board:<designator> x y z : a reference part on the board
		An empty line or "done" ends the session. Lines are appended to the log.
	`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		board, err := loadBoard(args[0])
		if err != nil {
			return err
		}

		fp, err := os.OpenFile(args[1], os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return err
		}
		defer fp.Close()

		suggestions := calibrationSuggestions(board)
		completer := func(d prompt.Document) []prompt.Suggest {
			return prompt.FilterHasPrefix(suggestions, d.GetWordBeforeCursor(), true)
		}

		recorded := 0
		for {
			text := strings.TrimSpace(prompt.Input("> ", completer))
			if text == "" || text == "done" {
				break
			}

			entry, err := lib.ParseCalibrationLine(text)
			if err != nil {
				fmt.Printf("failed to parse line: %s\n", err)
				continue
			}
			if entry.Board {
				if _, ok := board.FindPart(entry.Key); !ok {
					fmt.Printf("%s is not on the board\n", entry.Key)
					continue
				}
			}

			if _, err := fmt.Fprintln(fp, entry.String()); err != nil {
				return err
			}
			recorded++
		}

		fmt.Printf("recorded %d lines to %s\n", recorded, args[1])
		return nil
	},
}

/*
	Completion for the first slot of every component key and for every
	designator as a board reference.
*/
func calibrationSuggestions(board *lib.Board) []prompt.Suggest {
	suggestions := []prompt.Suggest{}

	keys, counts := board.CountByKey()
	for _, key := range keys {
		suggestions = append(suggestions, prompt.Suggest{
			Text:        "tape1:" + key,
			Description: fmt.Sprintf("%d on board", counts[key]),
		})
	}

	for _, part := range board.Parts() {
		suggestions = append(suggestions, prompt.Suggest{
			Text:        "board:" + part.ComponentName,
			Description: part.Key(),
		})
	}

	return suggestions
}

func init() {
	rootCmd.AddCommand(calibrateCmd)
}
