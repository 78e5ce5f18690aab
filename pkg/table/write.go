package table

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/yumyai/rebin/pkg/model"
)

// WriteContigTable writes the selected rows of the embedding table with a
// db_cluster column appended, tab separated.
func WriteContigTable(path string, t *EmbeddingTable, rowIdx []int, labels []int) error {

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)

	fmt.Fprintln(w, strings.Join(t.Header, "\t")+"\tdb_cluster")
	for _, i := range rowIdx {
		fmt.Fprintln(w, strings.Join(t.Rows[i], "\t")+"\t"+strconv.Itoa(labels[i]))
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// WriteSummaryTable writes one row per cluster of the selected assignment,
// in ascending label order.
func WriteSummaryTable(path string, summaries map[int]model.Summary, qualities map[int]model.Quality, completenessCutoff, purityCutoff float64) error {

	labels := make([]int, 0, len(summaries))
	for label := range summaries {
		labels = append(labels, label)
	}
	sort.Ints(labels)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, "cluster\tsize\tlongest_contig\tn50\tnumber_contigs\tcompleteness\tpurity\tcov\tgc_percent\tstatus")

	for _, label := range labels {
		s := summaries[label]
		q := qualities[label]
		fields := []string{
			strconv.Itoa(label),
			strconv.Itoa(s.Size),
			strconv.Itoa(s.LongestContig),
			strconv.Itoa(s.N50),
			strconv.Itoa(s.NumberContigs),
			formatFloat(q.Completeness),
			formatFloat(q.Purity),
			formatFloat(s.Cov),
			formatFloat(s.GC),
			model.StatusOf(q, completenessCutoff, purityCutoff),
		}
		fmt.Fprintln(w, strings.Join(fields, "\t"))
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
