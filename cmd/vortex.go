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
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/notargets/gowing/mcalister"
	"github.com/notargets/gowing/plotting"
)

// VortexCmd represents the vortex command
var VortexCmd = &cobra.Command{
	Use:   "vortex",
	Short: "Tip vortex through the wake survey planes",
	Long: `
Locates the tip vortex core in every wake survey plane and plots velocity
lineouts through it for one or more cases, compared with the experiment,

gowing vortex -f SST-12 -f SA-12`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			cfg     *Config
			st      *mcalister.Settings
			folders []string
			cases   []*mcalister.Case
			bk      *plotting.Book
		)
		if cfg, err = loadConfig(); err != nil {
			return
		}
		if folders, err = cmd.Flags().GetStringSlice("folder"); err != nil {
			return
		}
		st = cfg.Settings()
		for _, folder := range folders {
			var c *mcalister.Case
			if c, err = mcalister.NewCase(folder, st); err != nil {
				return
			}
			c.Input.Print()
			cases = append(cases, c)
		}
		if bk, _, err = mcalister.Vortex(cases, st); err != nil {
			return
		}
		if err = bk.Save(cfg.Vortex.Output); err != nil {
			return
		}
		logrus.WithFields(logrus.Fields{"file": cfg.Vortex.Output, "cases": len(cases)}).Info("wrote vortex plots")
		if show, _ := cmd.Flags().GetBool("show"); show {
			err = showBook(bk)
		}
		return
	},
}

func init() {
	rootCmd.AddCommand(VortexCmd)
	VortexCmd.Flags().StringSliceP("folder", "f", nil, "Folders of the simulation cases, may be repeated")
	VortexCmd.Flags().BoolP("show", "s", false, "Show the plots")
	_ = VortexCmd.MarkFlagRequired("folder")
}
