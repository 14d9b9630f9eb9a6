package InputParameters

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/ghodss/yaml"
	"github.com/spf13/cast"
	"gonum.org/v1/gonum/floats"
)

var ErrMalformedInput = errors.New("malformed solver input")

// Subset of the Nalu input deck holding the freestream definition
type NaluInput struct {
	Realms []Realm `json:"realms"`
}

type Realm struct {
	Name               string             `json:"name"`
	InitialConditions  []InitialCondition `json:"initial_conditions"`
	MaterialProperties MaterialProperties `json:"material_properties"`
}

type InitialCondition struct {
	Name  string                 `json:"constant"`
	Value map[string]interface{} `json:"value"`
}

type MaterialProperties struct {
	TargetName     interface{}     `json:"target_name"`
	Specifications []Specification `json:"specifications"`
}

type Specification struct {
	Name  string      `json:"name"`
	Type  string      `json:"type"`
	Value interface{} `json:"value"`
}

func (ni *NaluInput) Parse(data []byte) error {
	return yaml.Unmarshal(data, ni)
}

// FreeStream holds the reference state every coefficient is normalized by
type FreeStream struct {
	Velocity  []float64
	Density   float64
	Viscosity float64
}

// Speed is the magnitude of the freestream velocity vector
func (fs *FreeStream) Speed() float64 {
	return floats.Norm(fs.Velocity, 2)
}

func (fs *FreeStream) Print() {
	fmt.Printf("%v\t= Velocity\n", fs.Velocity)
	fmt.Printf("%8.5f\t= Speed\n", fs.Speed())
	fmt.Printf("%8.5f\t= Density\n", fs.Density)
	fmt.Printf("%8.5g\t= Viscosity\n", fs.Viscosity)
}

/*
FreeStream extracts the freestream condition from the first realm:
	velocity  = realms[0].initial_conditions[0].value.velocity
	density   = realms[0].material_properties.specifications[0].value
	viscosity = realms[0].material_properties.specifications[1].value
*/
func (ni *NaluInput) FreeStream() (fs *FreeStream, err error) {
	var (
		vel    interface{}
		ok     bool
		vals   []interface{}
		realm  Realm
		specs  []Specification
		fsTemp = &FreeStream{}
	)
	if len(ni.Realms) == 0 {
		return nil, fmt.Errorf("%w: no realms", ErrMalformedInput)
	}
	realm = ni.Realms[0]
	if len(realm.InitialConditions) == 0 {
		return nil, fmt.Errorf("%w: no initial_conditions in realm %q", ErrMalformedInput, realm.Name)
	}
	if vel, ok = realm.InitialConditions[0].Value["velocity"]; !ok {
		return nil, fmt.Errorf("%w: no initial velocity", ErrMalformedInput)
	}
	switch v := vel.(type) {
	case []interface{}:
		vals = v
	default:
		vals = []interface{}{v}
	}
	if len(vals) < 1 || len(vals) > 3 {
		return nil, fmt.Errorf("%w: velocity has %d components", ErrMalformedInput, len(vals))
	}
	fsTemp.Velocity = make([]float64, len(vals))
	for i, v := range vals {
		if fsTemp.Velocity[i], err = cast.ToFloat64E(v); err != nil {
			return nil, fmt.Errorf("%w: velocity component %d: %v", ErrMalformedInput, i, err)
		}
	}
	specs = realm.MaterialProperties.Specifications
	if len(specs) < 2 {
		return nil, fmt.Errorf("%w: need density and viscosity specifications, have %d",
			ErrMalformedInput, len(specs))
	}
	if fsTemp.Density, err = cast.ToFloat64E(specs[0].Value); err != nil {
		return nil, fmt.Errorf("%w: density: %v", ErrMalformedInput, err)
	}
	if fsTemp.Viscosity, err = cast.ToFloat64E(specs[1].Value); err != nil {
		return nil, fmt.Errorf("%w: viscosity: %v", ErrMalformedInput, err)
	}
	return fsTemp, nil
}

func ReadFreeStream(filename string) (fs *FreeStream, err error) {
	var (
		data []byte
		ni   = &NaluInput{}
	)
	if data, err = os.ReadFile(filename); err != nil {
		return
	}
	if err = ni.Parse(data); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedInput, filename, err)
	}
	if fs, err = ni.FreeStream(); err != nil {
		err = fmt.Errorf("%s: %w", filename, err)
	}
	return
}

var angleRun = regexp.MustCompile(`\d+(\.\d+)?`)

/*
ParseAngle takes the angle of attack in degrees from the last number in the base
name of a case directory, e.g. "SST-12" or "aoa-10".
*/
func ParseAngle(dir string) (aoa float64, err error) {
	var (
		base = filepath.Base(filepath.Clean(dir))
		runs = angleRun.FindAllString(base, -1)
	)
	if len(runs) == 0 {
		return 0, fmt.Errorf("no angle of attack in directory name %q", base)
	}
	return strconv.ParseFloat(runs[len(runs)-1], 64)
}

// Reference holds the geometric and experimental constants of a study
type Reference struct {
	Area           float64 `mapstructure:"area"`
	Chord          float64 `mapstructure:"chord"`
	HalfWingLength float64 `mapstructure:"halfWingLength"`
	RotationCenter float64 `mapstructure:"rotationCenter"`
	BaselineAoA    float64 `mapstructure:"baselineAoA"`
	ExpChord       float64 `mapstructure:"expChord"`
	ClExp          float64 `mapstructure:"clExp"`
	CdExp          float64 `mapstructure:"cdExp"`
}

func (ref *Reference) Print() {
	fmt.Printf("%8.5f\t= Reference Area\n", ref.Area)
	fmt.Printf("%8.5f\t= Chord\n", ref.Chord)
	fmt.Printf("%8.5f\t= Half Wing Length\n", ref.HalfWingLength)
	fmt.Printf("%8.5f\t= Rotation Center\n", ref.RotationCenter)
	fmt.Printf("%8.5f\t= Baseline AoA\n", ref.BaselineAoA)
}
