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

var feedersCmd = &cobra.Command{
	Use:   "feeders <state.db>",
	Short: "Show the feeder state",
	Long: `Show how far every tape in the feeder state database has been used.
	With --config, also list the configured tapes and what remains on them.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		store, err := lib.OpenFeederStore(args[0])
		if err != nil {
			return fmt.Errorf("failed to open feeder state: %w", err)
		}
		defer store.Close()

		states, err := store.States()
		if err != nil {
			return err
		}
		for _, state := range states {
			fmt.Printf("%-24s used %4d  %s  (%s)\n",
				state.Name, state.Cursor, strings.Join(state.Keys, " "),
				state.Updated.Format("2006-01-02 15:04"))
		}

		if configFile == "" {
			return nil
		}

		config, err := lib.ReadPnPConfiguration(configFile)
		if err != nil {
			return err
		}
		if err := store.Restore(config); err != nil {
			return err
		}

		fmt.Println()
		for idx, tape := range config.Tapes() {
			remaining := "unbounded"
			if n := tape.Remaining(); n >= 0 {
				remaining = fmt.Sprintf("%d left", n)
			}
			next := tape.PositionAt(tape.Cursor())
			fmt.Printf("%-24s next %s  %s  [%s]\n",
				tape.Name, next, remaining, strings.Join(config.KeysFor(idx), " "))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(feedersCmd)

	feedersCmd.Flags().StringVarP(&configFile, "config", "c", "", "tape layout (text or .yaml)")
}
