package slack

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// CSVWriter writes history tables to CSV files on disk. Existing files are
// overwritten; a failed write may leave a partial file behind.
type CSVWriter struct{}

// NewCSVWriter creates a CSV table writer
func NewCSVWriter() *CSVWriter {
	return &CSVWriter{}
}

// WriteMessages writes the messages table (timestamp,text,user) to path
func (w *CSVWriter) WriteMessages(path string, records []MessageRecord) (FileRef, error) {
	return writeTable(path, &records, len(records))
}

// WriteReactions writes the reactions table (timestamp,reaction,reacted_by) to path
func (w *CSVWriter) WriteReactions(path string, records []ReactionRecord) (FileRef, error) {
	return writeTable(path, &records, len(records))
}

// writeTable marshals a pointer to a slice of csv-tagged structs, header first
func writeTable(path string, rows any, n int) (FileRef, error) {
	file, err := os.Create(path)
	if err != nil {
		return FileRef{}, fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	bw := bufio.NewWriter(file)
	if err := gocsv.Marshal(rows, bw); err != nil {
		return FileRef{}, fmt.Errorf("failed to write rows: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return FileRef{}, fmt.Errorf("failed to flush buffer: %w", err)
	}

	fi, err := file.Stat()
	if err != nil {
		return FileRef{}, fmt.Errorf("failed to stat file: %w", err)
	}

	return FileRef{
		Path:  path,
		Name:  filepath.Base(path),
		Bytes: fi.Size(),
		Lines: n + 1,
	}, nil
}
