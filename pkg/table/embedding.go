// Package table reads the vizbin embedding and marker tables and writes the
// refinement output tables.
package table

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yumyai/rebin/pkg/cluster"
	"github.com/yumyai/rebin/pkg/model"
)

// Columns the embedding table must carry. Anything else is preserved
// verbatim in the output tables.
var requiredColumns = []string{"contig", "vizbin_x", "vizbin_y", "length", "gc", "cov"}

// EmbeddingTable is the typed load of a vizbin coordinate table. Raw rows
// are kept so the output tables can reproduce columns rebin does not use.
type EmbeddingTable struct {
	Header  []string
	Rows    [][]string
	Records []model.ContigRecord
}

// ReadEmbeddingTable loads a whitespace-delimited coordinate table with a
// header row. Any malformed row is fatal; there is no partial recovery.
func ReadEmbeddingTable(path string) (*EmbeddingTable, error) {

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		return nil, fmt.Errorf("read %s: empty file, expected a header row", path)
	}

	header := strings.Fields(scanner.Text())
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}
	for _, name := range requiredColumns {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("read %s: header is missing column %q", path, name)
		}
	}

	t := &EmbeddingTable{Header: header}

	lineno := 1
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != len(header) {
			return nil, fmt.Errorf("read %s: line %d has %d fields, want %d", path, lineno, len(fields), len(header))
		}

		rec, err := parseRecord(fields, col)
		if err != nil {
			return nil, fmt.Errorf("read %s: line %d: %w", path, lineno, err)
		}

		t.Rows = append(t.Rows, fields)
		t.Records = append(t.Records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(t.Records) == 0 {
		return nil, fmt.Errorf("read %s: no contig rows", path)
	}

	return t, nil
}

func parseRecord(fields []string, col map[string]int) (model.ContigRecord, error) {

	var rec model.ContigRecord
	rec.Contig = fields[col["contig"]]

	var err error
	if rec.X, err = strconv.ParseFloat(fields[col["vizbin_x"]], 64); err != nil {
		return rec, fmt.Errorf("bad vizbin_x %q", fields[col["vizbin_x"]])
	}
	if rec.Y, err = strconv.ParseFloat(fields[col["vizbin_y"]], 64); err != nil {
		return rec, fmt.Errorf("bad vizbin_y %q", fields[col["vizbin_y"]])
	}
	if rec.Length, err = strconv.Atoi(fields[col["length"]]); err != nil {
		return rec, fmt.Errorf("bad length %q", fields[col["length"]])
	}
	if rec.Length <= 0 {
		return rec, fmt.Errorf("length must be positive, got %d", rec.Length)
	}
	if rec.GC, err = strconv.ParseFloat(fields[col["gc"]], 64); err != nil {
		return rec, fmt.Errorf("bad gc %q", fields[col["gc"]])
	}
	if rec.Cov, err = strconv.ParseFloat(fields[col["cov"]], 64); err != nil {
		return rec, fmt.Errorf("bad cov %q", fields[col["cov"]])
	}
	if rec.Cov < 0 {
		return rec, fmt.Errorf("cov must be non-negative, got %v", rec.Cov)
	}

	return rec, nil
}

// Points extracts the clustering input in record order.
func (t *EmbeddingTable) Points() []cluster.Point {
	points := make([]cluster.Point, len(t.Records))
	for i, rec := range t.Records {
		points[i] = cluster.Point{X: rec.X, Y: rec.Y}
	}
	return points
}
