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
	"github.com/spf13/viper"
	"github.com/xoviat/rpt2pnp/lib"
	"go.uber.org/zap"
)

var machineFile string

/*
	Machine settings come from, in order of precedence: command line
	flags, RPT2PNP_* environment variables, the settings file and the
	built-in defaults.

		offset-x: 10
		offset-y: 10
		machine:
		  z-dispensing: 1.7
		  z-travel: 10
		  feed-rapid: 20000
*/
func initConfig() error {
	viper.SetEnvPrefix("RPT2PNP")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	defaults := lib.DefaultMachineSettings()
	viper.SetDefault("machine.z-dispensing", defaults.ZDispensing)
	viper.SetDefault("machine.z-hover", defaults.ZHover)
	viper.SetDefault("machine.z-high-up", defaults.ZHighUp)
	viper.SetDefault("machine.z-travel", defaults.ZTravel)
	viper.SetDefault("machine.feed-rapid", defaults.FeedRapid)
	viper.SetDefault("machine.feed-work", defaults.FeedWork)
	viper.SetDefault("machine.feed-corner", defaults.FeedCorner)
	viper.SetDefault("machine.dwell-ms", defaults.DwellMs)

	if machineFile != "" {
		viper.SetConfigFile(machineFile)
	} else {
		viper.SetConfigName("rpt2pnp")
		viper.AddConfigPath(".")
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok && machineFile == "" {
			return nil
		}
		return fmt.Errorf("failed to read machine settings: %w", err)
	}

	zap.S().Debugf("machine settings from %s", viper.ConfigFileUsed())
	return nil
}

func machineSettings() lib.MachineSettings {
	return lib.MachineSettings{
		ZDispensing: viper.GetFloat64("machine.z-dispensing"),
		ZHover:      viper.GetFloat64("machine.z-hover"),
		ZHighUp:     viper.GetFloat64("machine.z-high-up"),
		ZTravel:     viper.GetFloat64("machine.z-travel"),
		FeedRapid:   viper.GetFloat64("machine.feed-rapid"),
		FeedWork:    viper.GetFloat64("machine.feed-work"),
		FeedCorner:  viper.GetFloat64("machine.feed-corner"),
		DwellMs:     viper.GetInt("machine.dwell-ms"),
	}
}

/*
	Bind the job flags of the running command, so a flag given on the
	command line wins over the settings file.
*/
func bindJobFlags(cmd *cobra.Command) error {
	for _, name := range []string{"offset-x", "offset-y", "home-x", "home-y", "start"} {
		if err := viper.BindPFlag(name, cmd.Flags().Lookup(name)); err != nil {
			return err
		}
	}
	return nil
}
