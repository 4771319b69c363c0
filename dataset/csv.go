package dataset

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/jmurray1022/learnR/pkg/errors"
)

// FromCSV reads a table with a header row and extracts the named predictor
// and response columns as a Sample. Rows where either field is empty are
// skipped; non-numeric values in either column are an error.
func FromCSV(r io.Reader, xCol, yCol string) (*Sample, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrap(err, "dataset.FromCSV: reading header")
	}

	xIdx, yIdx := -1, -1
	for i, name := range header {
		switch name {
		case xCol:
			xIdx = i
		case yCol:
			yIdx = i
		}
	}
	if xIdx < 0 {
		return nil, errors.NewInvalidParameterError("dataset.FromCSV", "xCol",
			"column not found in header", xCol)
	}
	if yIdx < 0 {
		return nil, errors.NewInvalidParameterError("dataset.FromCSV", "yCol",
			"column not found in header", yCol)
	}

	var xs, ys []float64
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "dataset.FromCSV: line %d", line)
		}
		if record[xIdx] == "" || record[yIdx] == "" {
			continue
		}
		x, err := strconv.ParseFloat(record[xIdx], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "dataset.FromCSV: line %d, column %q", line, xCol)
		}
		y, err := strconv.ParseFloat(record[yIdx], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "dataset.FromCSV: line %d, column %q", line, yCol)
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}

	return New(xs, ys)
}

// ReadCSV opens path and loads it via FromCSV.
func ReadCSV(path, xCol, yCol string) (*Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "dataset.ReadCSV")
	}
	defer f.Close()

	return FromCSV(f, xCol, yCol)
}
