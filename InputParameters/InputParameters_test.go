package InputParameters

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var naluInput = []byte(`
Simulations:
  - name: sim1
    time_integrator: ti_1
realms:
  - name: realm_1
    mesh: mcalister.exo
    initial_conditions:
      - constant: ic_1
        target_name: [fluid]
        value:
          pressure: 0
          velocity: [46.0, 0.0, "0.0"]
    material_properties:
      target_name: [fluid]
      specifications:
        - name: density
          type: constant
          value: 1.225
        - name: viscosity
          type: constant
          value: 1.8e-5
`)

func TestFreeStream(t *testing.T) {
	ni := &NaluInput{}
	require.NoError(t, ni.Parse(naluInput))
	fs, err := ni.FreeStream()
	require.NoError(t, err)
	assert.Equal(t, []float64{46, 0, 0}, fs.Velocity)
	assert.Equal(t, 1.225, fs.Density)
	assert.Equal(t, 1.8e-5, fs.Viscosity)
	assert.InDelta(t, 46., fs.Speed(), 1.e-12)
	fs.Print()

	{ // Single component velocity
		ni := &NaluInput{}
		require.NoError(t, ni.Parse([]byte(`
realms:
  - initial_conditions:
      - value: {velocity: [3, 4]}
    material_properties:
      specifications: [{value: 1}, {value: "2e-5"}]
`)))
		fs, err := ni.FreeStream()
		require.NoError(t, err)
		assert.InDelta(t, 5., fs.Speed(), 1.e-12)
		assert.Equal(t, 2.e-5, fs.Viscosity)
	}
	{ // Malformed documents are reported
		for _, doc := range []string{
			`realms: []`,
			`realms: [{initial_conditions: []}]`,
			`realms: [{initial_conditions: [{value: {pressure: 0}}]}]`,
			`realms: [{initial_conditions: [{value: {velocity: [1,2,3,4]}}]}]`,
			`realms: [{initial_conditions: [{value: {velocity: [1]}}], material_properties: {specifications: [{value: 1}]}}]`,
			`realms: [{initial_conditions: [{value: {velocity: [1]}}], material_properties: {specifications: [{value: abc}, {value: 1}]}}]`,
		} {
			ni := &NaluInput{}
			require.NoError(t, ni.Parse([]byte(doc)))
			_, err := ni.FreeStream()
			assert.True(t, errors.Is(err, ErrMalformedInput), doc)
		}
	}
}

func TestReadFreeStream(t *testing.T) {
	dir := t.TempDir()
	fname := filepath.Join(dir, "mcalister.yaml")
	require.NoError(t, os.WriteFile(fname, naluInput, 0644))
	fs, err := ReadFreeStream(fname)
	require.NoError(t, err)
	assert.Equal(t, 1.225, fs.Density)

	require.NoError(t, os.WriteFile(fname, []byte("realms: [\n"), 0644))
	_, err = ReadFreeStream(fname)
	assert.True(t, errors.Is(err, ErrMalformedInput))

	_, err = ReadFreeStream(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestParseAngle(t *testing.T) {
	for dir, aoa := range map[string]float64{
		"SST-12":           12,
		"/runs/aoa-10/":    10,
		"/runs/12/DES-8.5": 8.5,
		"exp_data/aoa-12":  12,
	} {
		got, err := ParseAngle(dir)
		require.NoError(t, err)
		assert.Equal(t, aoa, got, dir)
	}
	_, err := ParseAngle("/runs/baseline")
	assert.Error(t, err)
}
