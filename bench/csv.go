package bench

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

// Header is the first CSV record written by WriteCSV.
var Header = []string{"input_file", "algorithm", "cost", "execution_time"}

// WriteCSV writes the header and one record per trial.
func WriteCSV(w io.Writer, trials []Trial) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, tr := range trials {
		rec := []string{
			tr.InputFile,
			tr.Method.String(),
			strconv.FormatInt(tr.Cost, 10),
			strconv.FormatFloat(tr.Elapsed.Seconds(), 'f', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteCSVFile creates the parent directory of path if needed and writes trials to it.
func WriteCSVFile(path string, trials []Trial) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = WriteCSV(f, trials); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
