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

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/gowing/InputParameters"
	"github.com/notargets/gowing/graphics"
	"github.com/notargets/gowing/mcalister"
	"github.com/notargets/gowing/plotting"
)

var (
	cfgFile  string
	profiler interface{ Stop() }
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gowing",
	Short: "Post processing of the McAlister wing simulations",
	Long: `
Averages the slice output of the wing simulations over time and compares
surface pressure, forces and the tip vortex against the McAlister experiment,

gowing average -f wing_slices
gowing wing -f SST-12`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
		var mode string
		if mode, err = cmd.Flags().GetString("profile"); err != nil {
			return
		}
		switch mode {
		case "":
		case "cpu":
			profiler = profile.Start(profile.CPUProfile, profile.ProfilePath("."))
		case "mem":
			profiler = profile.Start(profile.MemProfile, profile.ProfilePath("."))
		default:
			return fmt.Errorf("unknown profile mode %q, use cpu or mem", mode)
		}
		return
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}

// execute runs the command tree, the profile is flushed whether or not the command failed
func execute() error {
	defer stopProfile()
	return rootCmd.Execute()
}

func stopProfile() {
	if profiler != nil {
		profiler.Stop()
		profiler = nil
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.gowing.yaml)")
	rootCmd.PersistentFlags().String("profile", "", "write a cpu or mem profile to the current directory")
	setDefaults()
}

func setDefaults() {
	viper.SetDefault("average.prefix", "output")
	viper.SetDefault("average.suffix", ".csv")
	viper.SetDefault("average.navg", 1)
	viper.SetDefault("average.policy", "warn")
	viper.SetDefault("average.output", "avg_slice.csv")
	viper.SetDefault("average.coordinates", []string{"Points:0", "Points:1", "Points:2"})
	viper.SetDefault("input.file", "mcalister.yaml")
	viper.SetDefault("reference.area", 6.6)
	viper.SetDefault("reference.chord", 1.)
	viper.SetDefault("reference.halfWingLength", 3.3)
	viper.SetDefault("reference.rotationCenter", 0.25)
	viper.SetDefault("reference.baselineAoA", 12.)
	viper.SetDefault("reference.expChord", 0.52)
	viper.SetDefault("reference.clExp", 1.05)
	viper.SetDefault("reference.cdExp", 0.05)
	viper.SetDefault("experiment.dir", "exp_data")
	viper.SetDefault("experiment.referenceDir", "sitaraman_data")
	viper.SetDefault("wing.sliceDir", "wing_slices")
	viper.SetDefault("vortex.sliceDir", "vortex_slices")
	viper.SetDefault("vortex.ninterp", 200)
	viper.SetDefault("vortex.origin", []float64{1, 0})
	viper.SetDefault("vortex.output", "vortex.pdf")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			logrus.WithError(err).Warn("no home directory, using default settings")
			return
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".gowing")
	}
	viper.SetEnvPrefix("GOWING")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		logrus.WithField("file", viper.ConfigFileUsed()).Info("using config file")
	} else if cfgFile != "" {
		logrus.WithError(err).Fatal("unable to read config file")
	}
}

// Config is the run settings document, defaults are set in setDefaults
type Config struct {
	Average struct {
		Prefix      string   `mapstructure:"prefix"`
		Suffix      string   `mapstructure:"suffix"`
		NAvg        int      `mapstructure:"navg"`
		Policy      string   `mapstructure:"policy"`
		Output      string   `mapstructure:"output"`
		Coordinates []string `mapstructure:"coordinates"`
	} `mapstructure:"average"`
	Input struct {
		File string `mapstructure:"file"`
	} `mapstructure:"input"`
	Reference  InputParameters.Reference `mapstructure:"reference"`
	Experiment struct {
		Dir          string `mapstructure:"dir"`
		ReferenceDir string `mapstructure:"referenceDir"`
	} `mapstructure:"experiment"`
	Wing struct {
		SliceDir string `mapstructure:"sliceDir"`
	} `mapstructure:"wing"`
	Vortex struct {
		SliceDir string    `mapstructure:"sliceDir"`
		NInterp  int       `mapstructure:"ninterp"`
		Origin   []float64 `mapstructure:"origin"`
		Output   string    `mapstructure:"output"`
	} `mapstructure:"vortex"`
}

func loadConfig() (cfg *Config, err error) {
	cfg = &Config{}
	if err = viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("bad run settings: %w", err)
	}
	if len(cfg.Vortex.Origin) != 2 {
		return nil, fmt.Errorf("bad run settings: vortex.origin needs 2 values, has %v", cfg.Vortex.Origin)
	}
	if len(cfg.Average.Coordinates) != 3 {
		return nil, fmt.Errorf("bad run settings: average.coordinates needs 3 names, has %v", cfg.Average.Coordinates)
	}
	return
}

// Settings converts the run settings into those of the studies
func (cfg *Config) Settings() (st *mcalister.Settings) {
	st = mcalister.NewSettings()
	st.Reference = cfg.Reference
	st.InputFile = cfg.Input.File
	st.SliceFile = cfg.Average.Output
	st.ExpDir = cfg.Experiment.Dir
	st.RefDir = cfg.Experiment.ReferenceDir
	st.WingSliceDir = cfg.Wing.SliceDir
	st.VortexSliceDir = cfg.Vortex.SliceDir
	st.NInterp = cfg.Vortex.NInterp
	st.Origin = [2]float64{cfg.Vortex.Origin[0], cfg.Vortex.Origin[1]}
	return
}

// showBook opens the curves of the last page that has any in an interactive chart
func showBook(bk *plotting.Book) error {
	for i := len(bk.Pages) - 1; i >= 0; i-- {
		if len(bk.Pages[i].Curves) != 0 {
			return graphics.ShowCurves(bk.Pages[i].Curves, os.Stdin)
		}
	}
	return nil
}
