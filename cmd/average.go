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
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/notargets/gowing/averaging"
	"github.com/notargets/gowing/readfiles"
	"github.com/notargets/gowing/types"
	"github.com/notargets/gowing/utils"
)

// AverageCmd represents the average command
var AverageCmd = &cobra.Command{
	Use:   "average",
	Short: "Time average the slice files of a folder",
	Long: `
Merges the last navg time steps of prefix*.<step>suffix files in a folder and
averages every field over the points of the slices. navg, prefix, suffix and
the merge policy are read from the average section of the config file,

gowing average -f wing_slices`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			cfg    *Config
			folder string
			doShow bool
			avg    *types.Frame
			steps  []int
		)
		if cfg, err = loadConfig(); err != nil {
			return
		}
		if folder, err = cmd.Flags().GetString("folder"); err != nil {
			return
		}
		doShow, _ = cmd.Flags().GetBool("show")
		if avg, steps, err = RunAverage(folder, cfg); err != nil {
			return
		}
		oname := filepath.Join(folder, cfg.Average.Output)
		if err = readfiles.WriteCSV(oname, avg); err != nil {
			return
		}
		logrus.WithFields(logrus.Fields{"file": oname, "steps": len(steps)}).Info("wrote averaged slices")
		logrus.Debug(utils.GetMemUsage())
		if doShow {
			err = readfiles.FormatCSV(os.Stdout, avg)
		}
		return
	},
}

func init() {
	rootCmd.AddCommand(AverageCmd)
	AverageCmd.Flags().StringP("folder", "f", "", "Folder where the slice files are stored")
	AverageCmd.Flags().BoolP("show", "s", false, "print the averaged table")
	_ = AverageCmd.MarkFlagRequired("folder")
}

// RunAverage selects, merges and averages the time steps of folder
func RunAverage(folder string, cfg *Config) (avg *types.Frame, steps []int, err error) {
	var (
		sel = averaging.NewSelector(folder)
		crd = cfg.Average.Coordinates
	)
	sel.Prefix, sel.Suffix, sel.NAvg = cfg.Average.Prefix, cfg.Average.Suffix, cfg.Average.NAvg
	if sel.Policy, err = types.NewMergePolicy(cfg.Average.Policy); err != nil {
		return
	}
	return averaging.Average(sel, averaging.NewAggregator(crd[0], crd[1], crd[2]))
}
