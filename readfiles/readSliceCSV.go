package readfiles

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/notargets/gowing/types"
)

// ErrEmptyFile marks a file with no header line at all
var ErrEmptyFile = errors.New("empty file")

/*
ReadCSV reads a comma separated numeric table with one heading line, as written
by the slice extraction and by WriteCSV. Blank cells become NaN.
*/
func ReadCSV(filename string) (f *types.Frame, err error) {
	var (
		file *os.File
	)
	if file, err = os.Open(filename); err != nil {
		return
	}
	defer file.Close()
	if f, err = ParseCSV(file); err != nil {
		err = fmt.Errorf("%s: %w", filename, err)
	}
	return
}

func ParseCSV(r io.Reader) (f *types.Frame, err error) {
	var (
		reader  = csv.NewReader(bufio.NewReader(r))
		heading []string
		rec     []string
		line    int
	)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1
	if heading, err = reader.Read(); err != nil {
		if err == io.EOF {
			err = ErrEmptyFile
		}
		return
	}
	for i := range heading {
		heading[i] = strings.TrimSpace(heading[i])
	}
	f = types.NewFrame(heading...)
	row := make([]float64, len(heading))
	for line = 2; ; line++ {
		if rec, err = reader.Read(); err != nil {
			if err == io.EOF {
				err = nil
			}
			return
		}
		if len(rec) == 1 && strings.TrimSpace(rec[0]) == "" {
			continue
		}
		if len(rec) != len(heading) {
			err = fmt.Errorf("line %d has %d fields, heading has %d", line, len(rec), len(heading))
			return
		}
		for j, txt := range rec {
			if row[j], err = parseValue(txt); err != nil {
				err = fmt.Errorf("line %d, column %q: %w", line, heading[j], err)
				return
			}
		}
		f.AppendRow(row)
	}
}

/*
ReadCSVNamed reads a table whose heading line is discarded and replaced by
names, the layout of the digitized experimental curves.
*/
func ReadCSVNamed(filename string, names ...string) (f *types.Frame, err error) {
	if f, err = ReadCSV(filename); err != nil {
		return
	}
	if len(f.Names) != len(names) {
		err = fmt.Errorf("%s: has %d columns, expected %d (%v)", filename, len(f.Names), len(names), names)
		return
	}
	f.Names = append([]string{}, names...)
	return
}

// WriteCSV writes the frame with a heading line, NaN values are written as blank cells
func WriteCSV(filename string, f *types.Frame) (err error) {
	var (
		file *os.File
	)
	if file, err = os.Create(filename); err != nil {
		return
	}
	if err = FormatCSV(file, f); err != nil {
		_ = file.Close()
		return
	}
	return file.Close()
}

func FormatCSV(w io.Writer, f *types.Frame) (err error) {
	var (
		writer = csv.NewWriter(w)
		rec    = make([]string, len(f.Names))
	)
	if err = writer.Write(f.Names); err != nil {
		return
	}
	for i := 0; i < f.Len(); i++ {
		for j := range f.Cols {
			rec[j] = formatValue(f.Cols[j][i])
		}
		if err = writer.Write(rec); err != nil {
			return
		}
	}
	writer.Flush()
	return writer.Error()
}

func parseValue(txt string) (val float64, err error) {
	txt = strings.TrimSpace(txt)
	if txt == "" {
		return math.NaN(), nil
	}
	return strconv.ParseFloat(txt, 64)
}

func formatValue(val float64) string {
	if math.IsNaN(val) {
		return ""
	}
	return strconv.FormatFloat(val, 'g', -1, 64)
}
