package mcalister

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/notargets/gowing/aerodynamics"
	"github.com/notargets/gowing/experiment"
	"github.com/notargets/gowing/geometry2D"
	"github.com/notargets/gowing/plotting"
	"github.com/notargets/gowing/types"
	"github.com/notargets/gowing/utils"
)

const contourLevels = 15

/*
WakeFrame reads the vortex slices of the case and brings them into the frame
of the unpitched wing: z measured from the tip, positions rotated about the
origin and velocities rotated by the angle of attack. It adds the columns xr,
yr, uxr, uyr and magvel.
*/
func WakeFrame(c *Case, st *Settings) (df *types.Frame, err error) {
	if df, err = c.ReadSlices(st.VortexSliceDir, st.SliceFile); err != nil {
		return
	}
	for _, name := range []string{"ux", "uy", "uz"} {
		if df.Index(name) < 0 {
			return nil, fmt.Errorf("%s: %w: missing %q", c.Folder, types.ErrUnknownColumn, name)
		}
	}
	var (
		rot        = aerodynamics.NewRotation(c.AoA)
		ux, uy, uz = df.MustCol("ux"), df.MustCol("uy"), df.MustCol("uz")
		z          = make([]float64, df.Len())
		mag        = make([]float64, df.Len())
	)
	copy(z, df.MustCol("z"))
	floats.AddConst(-st.Reference.HalfWingLength, z)
	xr, yr := rot.RotateAbout(df.MustCol("x"), df.MustCol("y"), st.Origin[0], st.Origin[1])
	uxr, uyr := rot.ApplyAll(ux, uy)
	for i := range mag {
		mag[i] = math.Sqrt(utils.POW(ux[i], 2) + utils.POW(uy[i], 2) + utils.POW(uz[i], 2))
	}
	df.SetCol("z", z)
	df.SetCol("xr", xr)
	df.SetCol("yr", yr)
	df.SetCol("uxr", uxr)
	df.SetCol("uyr", uyr)
	df.SetCol("magvel", mag)
	return
}

/*
Vortex follows the tip vortex of every case through the wake survey planes.
For each plane it finds the core at the pressure minimum, plots lineouts of the
rotated velocities through the core and, for the first case, a velocity
magnitude map and the comparison data. The last page compares the core
pressure of all cases. One core table, columns xc yc zc pc, is returned per case.
*/
func Vortex(cases []*Case, st *Settings) (bk *plotting.Book, cores []*types.Frame, err error) {
	var (
		xslices  = experiment.VortexSlices()
		ref      = st.Reference
		uxPages  = make([]*plotting.Page, len(xslices))
		uyPages  = make([]*plotting.Page, len(xslices))
		magPages = make([]*plotting.Page, len(xslices))
	)
	bk = plotting.NewBook()
	for k, xs := range xslices {
		title := fmt.Sprintf("x=%.2f", xs+1)
		uxPages[k] = bk.Add(plotting.NewPage(title, "z/c", "ux/U"))
		uyPages[k] = bk.Add(plotting.NewPage(title, "z/c", "uy/U"))
		magPages[k] = bk.Add(plotting.NewPage(title, "z/c", "y/c"))
	}
	corePage := bk.Add(plotting.NewPage("vortex core", "x/c", "p"))

	for i, c := range cases {
		var (
			df   *types.Frame
			core = types.NewFrame("xc", "yc", "zc", "pc")
			exp  = experiment.NewDataset(st.ExpDir, c.AoA, c.Log)
			mdl  = experiment.NewDataset(st.RefDir, c.AoA, c.Log)
		)
		if df, err = WakeFrame(c, st); err != nil {
			return
		}
		for k, xs := range xslices {
			var (
				xt  = xs + 1
				sub = sliceRows(df, "xr", xt)
				log = c.Log.WithField("slice", xt)
			)
			if sub.Len() == 0 {
				log.Warn("no wake points in survey plane")
				continue
			}
			var (
				p          = sub.MustCol("p")
				ic         = floats.MinIdx(p)
				ys, zs     = sub.MustCol("yr"), sub.MustCol("z")
				yc, zc     = ys[ic], zs[ic]
				ymin, ymax = floats.Min(ys), floats.Max(ys)
				zmin, zmax = floats.Min(zs), floats.Max(zs)
				tm         *geometry2D.TriMesh
			)
			core.AppendRow([]float64{sub.MustCol("xr")[ic], yc, zc, p[ic]})

			if tm, err = geometry2D.NewTriMesh(ys, zs); err != nil {
				log.WithError(err).Warn("survey plane cannot be triangulated")
				err = nil
				continue
			}
			zline := utils.Linspace(zmin, zmax, st.NInterp)
			yline := utils.ConstArray(st.NInterp, yc)
			zovc := scaled(zline, 1/ref.Chord)
			uxl := scaled(tm.Interpolate(sub.MustCol("uxr"), yline, zline), 1/c.FreeStream.Speed)
			uyl := scaled(tm.Interpolate(sub.MustCol("uyr"), yline, zline), 1/c.FreeStream.Speed)
			if utils.AllNan(uxl) {
				log.Warn("lineout misses the survey plane")
			}
			if err = uxPages[k].Line(c.Label, zovc, uxl, i); err != nil {
				return
			}
			if err = uyPages[k].Line(c.Label, zovc, uyl, i); err != nil {
				return
			}
			if i != 0 {
				continue
			}

			for _, pg := range []*plotting.Page{uxPages[k], uyPages[k]} {
				pg.SetLimits(zmin/ref.Chord, zmax/ref.Chord, math.NaN(), math.NaN())
			}
			if err = magnitudeMap(magPages[k], tm, sub.MustCol("magvel"),
				[4]float64{ymin, ymax, zmin, zmax}, yc, zc, st.NInterp, ref.Chord); err != nil {
				return
			}
			if err = vortexOverlays(uxPages[k], uyPages[k], exp, mdl, xs, ref.ExpChord); err != nil {
				return
			}
		}
		cores = append(cores, core)
		if err = corePage.Line(c.Label, core.MustCol("xc"), core.MustCol("pc"), i); err != nil {
			return
		}
	}
	return
}

func scaled(v []float64, s float64) (r []float64) {
	r = make([]float64, len(v))
	floats.ScaleTo(r, s, v)
	return
}

// magnitudeMap draws |u| over the (z, y) box of a survey plane with the core and the lineout marked
func magnitudeMap(pg *plotting.Page, tm *geometry2D.TriMesh, mag []float64, box [4]float64,
	yc, zc float64, n int, chord float64) (err error) {
	var (
		yi     = utils.Linspace(box[0], box[1], n)
		zi     = utils.Linspace(box[2], box[3], n)
		yq, zq = make([]float64, 0, n*n), make([]float64, 0, n*n)
		vals   = make([][]float64, n)
	)
	for r := range yi {
		for c := range zi {
			yq = append(yq, yi[r])
			zq = append(zq, zi[c])
		}
	}
	vi := tm.Interpolate(mag, yq, zq)
	for r := range vals {
		vals[r] = vi[r*n : (r+1)*n]
	}
	pg.HeatMap(plotting.NewGrid(scaled(zi, 1/chord), scaled(yi, 1/chord), vals), contourLevels)
	if err = pg.HLine("", box[2]/chord, box[3]/chord, yc/chord); err != nil {
		return
	}
	if err = pg.Points("", []float64{zc / chord}, []float64{yc / chord}, 2, false); err != nil {
		return
	}
	pg.SetLimits(box[2]/chord, box[3]/chord, box[0]/chord, box[1]/chord)
	return
}

func vortexOverlays(uxPage, uyPage *plotting.Page, exp, mdl *experiment.Dataset, xs, expChord float64) (err error) {
	var (
		f *types.Frame
	)
	for _, ov := range []struct {
		component string
		pg        *plotting.Page
	}{
		{"ux", uxPage},
		{"uz", uyPage},
	} {
		f, err = exp.VortexProfile(ov.component, xs, expChord)
		switch {
		case absent(err):
			continue
		case err != nil:
			return
		}
		if err = ov.pg.Points("Exp.", f.MustCol("z"), f.MustCol(ov.component), 0, true); err != nil {
			return
		}
	}
	f, err = mdl.VortexModel(xs + 1)
	switch {
	case absent(err):
		return nil
	case err != nil:
		return
	}
	return uyPage.Reference("Sitaraman et al. (2010)", f.MustCol("y"), f.MustCol("uz"))
}
