package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gowing/readfiles"
)

func TestConfig(t *testing.T) {
	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "output", cfg.Average.Prefix)
	assert.Equal(t, []string{"Points:0", "Points:1", "Points:2"}, cfg.Average.Coordinates)
	assert.Equal(t, 3.3, cfg.Reference.HalfWingLength)
	assert.Equal(t, 12., cfg.Reference.BaselineAoA)
	assert.Equal(t, "sitaraman_data", cfg.Experiment.ReferenceDir)
	st := cfg.Settings()
	assert.Equal(t, [2]float64{1, 0}, st.Origin)
	assert.Equal(t, 200, st.NInterp)
	assert.Equal(t, "avg_slice.csv", st.SliceFile)
	assert.Equal(t, "wing_slices", st.WingSliceDir)
	assert.Equal(t, "vortex.pdf", cfg.Vortex.Output)
	{ // Scripts take only the folder and show flags
		for _, c := range []*cobra.Command{AverageCmd, WingCmd, ForcesCmd, VortexCmd} {
			var names []string
			c.LocalNonPersistentFlags().VisitAll(func(f *pflag.Flag) {
				if f.Name != "help" {
					names = append(names, f.Name)
				}
			})
			assert.ElementsMatch(t, []string{"folder", "show"}, names, c.Name())
		}
	}
}

// setAverage overrides average settings the way a config file would, restoring the defaults after the test
func setAverage(t *testing.T, navg int, policy string) {
	viper.Set("average.navg", navg)
	viper.Set("average.policy", policy)
	t.Cleanup(func() {
		viper.Set("average.navg", 1)
		viper.Set("average.policy", "warn")
	})
}

func TestAverageCommand(t *testing.T) {
	var (
		dir   = t.TempDir()
		write = func(name, content string) {
			require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
		}
	)
	write("output_a.1.csv", "Points:0,Points:1,Points:2,pressure\n0,0,0,1\n1,0,-0,3\n")
	write("output_b.1.csv", "Points:0,Points:1,Points:2,pressure\n0,0,1e-17,5\n")
	write("output_a.2.csv", "Points:0,Points:1,Points:2,pressure\n0,0,0,3\n")

	setAverage(t, 2, "warn")
	rootCmd.SetArgs([]string{"average", "-f", dir})
	require.NoError(t, rootCmd.Execute())
	avg, err := readfiles.ReadCSV(filepath.Join(dir, "avg_slice.csv"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Points:0", "Points:1", "Points:2", "pressure", "time"}, avg.Names)
	require.Equal(t, 2, avg.Len())
	assert.Equal(t, []float64{0, 1}, avg.MustCol("Points:0"))
	assert.Equal(t, []float64{3, 3}, avg.MustCol("pressure"))
	assert.InDeltaSlice(t, []float64{4. / 3, 1}, avg.MustCol("time"), 1.e-15)

	{ // Only the last step
		setAverage(t, 1, "warn")
		require.NoError(t, rootCmd.Execute())
		avg, err = readfiles.ReadCSV(filepath.Join(dir, "avg_slice.csv"))
		require.NoError(t, err)
		assert.Equal(t, []float64{0, 0, 0, 3, 2}, avg.Row(0))
	}
	{ // An empty file fails the run under the strict policy
		write("output_c.2.csv", "")
		setAverage(t, 1, "fail")
		err = rootCmd.Execute()
		require.Error(t, err)
		assert.True(t, errors.Is(err, readfiles.ErrEmptyFile))
		setAverage(t, 1, "skip")
		require.NoError(t, rootCmd.Execute())
	}
	{ // Unknown policy
		setAverage(t, 1, "sometimes")
		assert.Error(t, rootCmd.Execute())
	}
}

type stopCounter struct{ n int }

func (s *stopCounter) Stop() { s.n++ }

func TestExecuteStopsProfile(t *testing.T) {
	{ // A failing command still flushes the profile
		sc := &stopCounter{}
		profiler = sc
		rootCmd.SetArgs([]string{"average", "-f", filepath.Join(t.TempDir(), "missing")})
		assert.Error(t, execute())
		assert.Equal(t, 1, sc.n)
		assert.Nil(t, profiler)
	}
	{ // And so does a successful one
		sc := &stopCounter{}
		profiler = sc
		rootCmd.SetArgs([]string{"average", "--help"})
		assert.NoError(t, execute())
		assert.Equal(t, 1, sc.n)
		assert.Nil(t, profiler)
	}
}
