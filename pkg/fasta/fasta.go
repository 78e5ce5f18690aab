// Package fasta is a minimal FASTA reader/writer, just enough to split an
// assembly into per-bin files.
package fasta

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Record is one FASTA sequence. ID is the first whitespace-delimited token
// of the header line.
type Record struct {
	ID     string
	Header string // full header without the leading ">"
	Seq    string
}

const lineWidth = 60

// Read loads every record of a FASTA file, keyed by ID.
func Read(path string) (map[string]Record, error) {

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records := make(map[string]Record)

	var current Record
	var seq strings.Builder
	inRecord := false

	flush := func() {
		if inRecord {
			current.Seq = seq.String()
			records[current.ID] = current
			seq.Reset()
		}
	}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 8*1024*1024)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ">") {
			flush()
			header := strings.TrimPrefix(line, ">")
			if header == "" {
				return nil, fmt.Errorf("read %s: line %d: empty header", path, lineno)
			}
			id := strings.Fields(header)[0]
			current = Record{ID: id, Header: header}
			inRecord = true
			continue
		}
		if !inRecord {
			return nil, fmt.Errorf("read %s: line %d: sequence before any header", path, lineno)
		}
		seq.WriteString(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	flush()

	if len(records) == 0 {
		return nil, fmt.Errorf("read %s: no records", path)
	}
	return records, nil
}

// Write writes records to path, wrapping sequence lines at 60 columns.
func Write(path string, records []Record) error {

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, rec := range records {
		fmt.Fprintln(w, ">"+rec.Header)
		for start := 0; start < len(rec.Seq); start += lineWidth {
			end := start + lineWidth
			if end > len(rec.Seq) {
				end = len(rec.Seq)
			}
			fmt.Fprintln(w, rec.Seq[start:end])
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
