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
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/notargets/gowing/mcalister"
	"github.com/notargets/gowing/plotting"
)

const WingCpFile = "wing_cp.pdf"

// WingCmd represents the wing command
var WingCmd = &cobra.Command{
	Use:   "wing",
	Short: "Surface pressure along the span of the wing",
	Long: `
Plots the chordwise pressure coefficient of every averaged wing slice against
the experiment, one page per slice in wing_cp.pdf,

gowing wing -f SST-12`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			c  *mcalister.Case
			st *mcalister.Settings
			bk *plotting.Book
		)
		if c, st, err = openCase(cmd); err != nil {
			return
		}
		if bk, err = mcalister.WingCp(c, st); err != nil {
			return
		}
		oname := filepath.Join(c.Folder, WingCpFile)
		if err = bk.Save(oname); err != nil {
			return
		}
		logrus.WithFields(logrus.Fields{"file": oname, "pages": len(bk.Pages)}).Info("wrote pressure plots")
		if show, _ := cmd.Flags().GetBool("show"); show {
			err = showBook(bk)
		}
		return
	},
}

func init() {
	rootCmd.AddCommand(WingCmd)
	WingCmd.Flags().StringP("folder", "f", "", "Folder of the simulation case")
	WingCmd.Flags().BoolP("show", "s", false, "Show the plots")
	_ = WingCmd.MarkFlagRequired("folder")
}

// openCase reads the run settings and the case named by the folder flag
func openCase(cmd *cobra.Command) (c *mcalister.Case, st *mcalister.Settings, err error) {
	var (
		cfg    *Config
		folder string
	)
	if cfg, err = loadConfig(); err != nil {
		return
	}
	if folder, err = cmd.Flags().GetString("folder"); err != nil {
		return
	}
	st = cfg.Settings()
	if c, err = mcalister.NewCase(folder, st); err != nil {
		return
	}
	c.Input.Print()
	return
}
