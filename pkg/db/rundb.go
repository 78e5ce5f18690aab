// Package db archives refinement runs in a sqlite database so successive
// iterations over the same assembly can be compared without re-parsing the
// output tables.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/yumyai/rebin/pkg/model"
)

type RunDB struct {
	sql *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id              TEXT PRIMARY KEY,
	started_at          TEXT NOT NULL,
	domain              TEXT NOT NULL,
	completeness_cutoff REAL NOT NULL,
	purity_cutoff       REAL NOT NULL,
	best_eps            REAL NOT NULL
);
CREATE TABLE IF NOT EXISTS run_clusters (
	run_id         TEXT NOT NULL REFERENCES runs(run_id),
	cluster        INTEGER NOT NULL,
	size           INTEGER NOT NULL,
	longest_contig INTEGER NOT NULL,
	n50            INTEGER NOT NULL,
	number_contigs INTEGER NOT NULL,
	completeness   REAL NOT NULL,
	purity         REAL NOT NULL,
	cov            REAL NOT NULL,
	gc_percent     REAL NOT NULL,
	status         TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS run_contigs (
	run_id  TEXT NOT NULL REFERENCES runs(run_id),
	contig  TEXT NOT NULL,
	cluster INTEGER NOT NULL,
	status  TEXT NOT NULL
);
`

// NewRunDB prepares the archive schema on an open connection.
func NewRunDB(db *sql.DB) (*RunDB, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("create run archive schema: %w", err)
	}
	return &RunDB{sql: db}, nil
}

// Run is one refinement run ready for archiving.
type Run struct {
	Domain             string
	CompletenessCutoff float64
	PurityCutoff       float64
	BestEps            float64
	Clusters           []ClusterRow
	Contigs            []ContigRow
}

type ClusterRow struct {
	Cluster int
	Summary model.Summary
	Quality model.Quality
	Status  string
}

type ContigRow struct {
	Contig  string
	Cluster int
	Status  string
}

// SaveRun writes one run and its per-cluster and per-contig rows in a single
// transaction, and returns the generated run id.
func (r *RunDB) SaveRun(ctx context.Context, run Run) (string, error) {

	run_id := uuid.New().String()

	tx, err := r.sql.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (run_id, started_at, domain, completeness_cutoff, purity_cutoff, best_eps)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		run_id, time.Now().UTC().Format(time.RFC3339), run.Domain,
		run.CompletenessCutoff, run.PurityCutoff, run.BestEps)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	clusterStm, err := tx.PrepareContext(ctx,
		`INSERT INTO run_clusters (run_id, cluster, size, longest_contig, n50, number_contigs,
		                           completeness, purity, cov, gc_percent, status)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", err
	}
	defer clusterStm.Close()

	for _, c := range run.Clusters {
		_, err := clusterStm.ExecContext(ctx, run_id, c.Cluster,
			c.Summary.Size, c.Summary.LongestContig, c.Summary.N50, c.Summary.NumberContigs,
			c.Quality.Completeness, c.Quality.Purity, c.Summary.Cov, c.Summary.GC, c.Status)
		if err != nil {
			return "", fmt.Errorf("insert cluster %d: %w", c.Cluster, err)
		}
	}

	contigStm, err := tx.PrepareContext(ctx,
		`INSERT INTO run_contigs (run_id, contig, cluster, status) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return "", err
	}
	defer contigStm.Close()

	for _, c := range run.Contigs {
		if _, err := contigStm.ExecContext(ctx, run_id, c.Contig, c.Cluster, c.Status); err != nil {
			return "", fmt.Errorf("insert contig %s: %w", c.Contig, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return run_id, nil
}

// CountRuns reports how many runs the archive holds.
func (r *RunDB) CountRuns(ctx context.Context) (int, error) {
	var n int
	err := r.sql.QueryRowContext(ctx, `SELECT COUNT(*) FROM runs`).Scan(&n)
	return n, err
}

// ClustersOf loads the archived cluster rows of one run, in label order.
func (r *RunDB) ClustersOf(ctx context.Context, run_id string) ([]ClusterRow, error) {

	rows, err := r.sql.QueryContext(ctx,
		`SELECT cluster, size, longest_contig, n50, number_contigs,
		        completeness, purity, cov, gc_percent, status
		 FROM run_clusters WHERE run_id = ? ORDER BY cluster`, run_id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []ClusterRow
	for rows.Next() {
		var c ClusterRow
		if err := rows.Scan(&c.Cluster,
			&c.Summary.Size, &c.Summary.LongestContig, &c.Summary.N50, &c.Summary.NumberContigs,
			&c.Quality.Completeness, &c.Quality.Purity, &c.Summary.Cov, &c.Summary.GC, &c.Status); err != nil {
			return nil, err
		}
		results = append(results, c)
	}
	return results, rows.Err()
}
