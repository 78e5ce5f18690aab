package table

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/yumyai/rebin/pkg/model"
)

// NoMarkers is the sentinel the marker table uses for a contig with no
// marker genes called on it.
const NoMarkers = "NA"

// ReadMarkerTable loads a tab-delimited marker table. The first line is a
// header and is skipped; every other line is [contig, comma-separated marker
// list or NA].
func ReadMarkerTable(path string) ([]model.MarkerRow, error) {

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var rows []model.MarkerRow

	scanner := bufio.NewScanner(f)
	lineno := 0
	for scanner.Scan() {
		lineno++
		if lineno == 1 {
			continue // header
		}
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) < 2 {
			return nil, fmt.Errorf("read %s: line %d has %d fields, want 2", path, lineno, len(fields))
		}

		row := model.MarkerRow{Contig: fields[0]}
		if fields[1] != NoMarkers {
			row.Markers = strings.Split(fields[1], ",")
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return rows, nil
}
