package readfiles

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/notargets/gowing/types"
)

/*
ReadWhitespace reads a whitespace delimited table with one heading line, the
layout of the solver's force history (forces.dat). Lines starting with # are
skipped.
*/
func ReadWhitespace(filename string) (f *types.Frame, err error) {
	var (
		file *os.File
	)
	if file, err = os.Open(filename); err != nil {
		return
	}
	defer file.Close()
	if f, err = ParseWhitespace(file); err != nil {
		err = fmt.Errorf("%s: %w", filename, err)
	}
	return
}

func ParseWhitespace(r io.Reader) (f *types.Frame, err error) {
	var (
		scanner = bufio.NewScanner(r)
		row     []float64
		line    int
	)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		line++
		fields := strings.Fields(getLineNoComments(scanner.Text()))
		if len(fields) == 0 {
			continue
		}
		if f == nil {
			f = types.NewFrame(fields...)
			row = make([]float64, len(fields))
			continue
		}
		if len(fields) != len(f.Names) {
			err = fmt.Errorf("line %d has %d fields, heading has %d", line, len(fields), len(f.Names))
			return
		}
		for j, txt := range fields {
			if row[j], err = parseValue(txt); err != nil {
				err = fmt.Errorf("line %d, column %q: %w", line, f.Names[j], err)
				return
			}
		}
		f.AppendRow(row)
	}
	if err = scanner.Err(); err != nil {
		return
	}
	if f == nil {
		err = ErrEmptyFile
	}
	return
}

func getLineNoComments(line string) string {
	if ind := strings.Index(line, "#"); ind >= 0 {
		line = line[:ind]
	}
	return line
}
