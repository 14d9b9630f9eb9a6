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

	"github.com/notargets/gowing/mcalister"
	"github.com/notargets/gowing/plotting"
	"github.com/notargets/gowing/readfiles"
	"github.com/notargets/gowing/types"
)

const ForcesPlotFile = "wing_forces.pdf"

// ForcesCmd represents the forces command
var ForcesCmd = &cobra.Command{
	Use:   "forces",
	Short: "Lift and drag history of the wing",
	Long: `
Converts the integrated forces of a case into lift and drag coefficients and
plots their history against the measured values in wing_forces.pdf,

gowing forces -f SST-12`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			c    *mcalister.Case
			st   *mcalister.Settings
			bk   *plotting.Book
			coef *types.Frame
		)
		if c, st, err = openCase(cmd); err != nil {
			return
		}
		st.Reference.Print()
		if bk, coef, _, err = mcalister.Forces(c, st); err != nil {
			return
		}
		oname := filepath.Join(c.Folder, ForcesPlotFile)
		if err = bk.Save(oname); err != nil {
			return
		}
		logrus.WithFields(logrus.Fields{"file": oname, "samples": coef.Len()}).Info("wrote force plots")
		if show, _ := cmd.Flags().GetBool("show"); show {
			if err = readfiles.FormatCSV(os.Stdout, coef); err != nil {
				return
			}
			err = showBook(bk)
		}
		return
	},
}

func init() {
	rootCmd.AddCommand(ForcesCmd)
	ForcesCmd.Flags().StringP("folder", "f", "", "Folder of the simulation case")
	ForcesCmd.Flags().BoolP("show", "s", false, "Show the plots")
	_ = ForcesCmd.MarkFlagRequired("folder")
}
