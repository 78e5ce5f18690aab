package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/yumyai/rebin/internal/util"
	"github.com/yumyai/rebin/logger"
	"github.com/yumyai/rebin/pkg/cluster"
	"github.com/yumyai/rebin/pkg/config"
	rundb "github.com/yumyai/rebin/pkg/db"
	"github.com/yumyai/rebin/pkg/fasta"
	"github.com/yumyai/rebin/pkg/model"
	"github.com/yumyai/rebin/pkg/table"

	_ "modernc.org/sqlite"
)

const VERSION = "0.1.0"

var (
	flagMarkerTab          string
	flagVizbinTab          string
	flagDomain             string
	flagFasta              string
	flagOutdir             string
	flagPurityCutoff       float64
	flagCompletenessCutoff float64
	flagConfig             string
	flagDB                 string
	flagVerbose            bool
)

var rootCmd = &cobra.Command{
	Use:   "rebin",
	Short: "Secondary clustering of unbinned contigs by eps sweep and marker-gene purity",
	Long: `rebin reruns density clustering over re-embedded unbinned contigs at
increasing eps values, scores every clustering against expected single-copy
marker genes, and keeps the clusters that come out complete and pure.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVarP(&flagMarkerTab, "marker-tab", "m", "", "marker table (contig\\tmarkers)")
	rootCmd.Flags().StringVarP(&flagVizbinTab, "vizbin-tab", "v", "", "table of vizbin coordinates")
	rootCmd.Flags().StringVarP(&flagDomain, "domain", "d", "bacteria", "microbial domain (bacteria|archaea)")
	rootCmd.Flags().StringVarP(&flagFasta, "fasta", "f", "", "assembly FASTA, enables per-bin FASTA output")
	rootCmd.Flags().StringVarP(&flagOutdir, "outdir", "o", "", "output directory")
	rootCmd.Flags().Float64VarP(&flagPurityCutoff, "purity-cutoff", "p", 90, "purity cutoff (%)")
	rootCmd.Flags().Float64VarP(&flagCompletenessCutoff, "completeness-cutoff", "c", 90, "completeness cutoff (%)")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "YAML file overriding the sweep schedule and cutoffs")
	rootCmd.Flags().StringVar(&flagDB, "db", "", "sqlite run archive (default $REBIN_DB)")
	rootCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "debug logging")

	rootCmd.MarkFlagRequired("marker-tab")
	rootCmd.MarkFlagRequired("vizbin-tab")
	rootCmd.MarkFlagRequired("outdir")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {

	logLevel := zapcore.InfoLevel
	if flagVerbose {
		logLevel = zapcore.DebugLevel
	}
	if err := logger.Init(logLevel); err != nil {
		return err
	}
	defer logger.Sync()

	if err := godotenv.Load(); err != nil {
		logger.Debug("No .env found, using local environment")
	}
	if flagDB == "" {
		flagDB = os.Getenv("REBIN_DB")
	}

	params, err := buildParams(cmd)
	if err != nil {
		return err
	}

	logger.Info("Start:", zap.String("Version", VERSION), zap.String("domain", params.Domain))

	expected, err := model.ExpectedMarkers(params.Domain)
	if err != nil {
		return err
	}

	// 1. Marker profile
	markerRows, err := table.ReadMarkerTable(flagMarkerTab)
	if err != nil {
		return err
	}
	profile, err := model.BuildMarkerProfile(markerRows)
	if err != nil {
		return fmt.Errorf("%s: %w", flagMarkerTab, err)
	}
	logger.Info("Loaded marker table", zap.Int("contigs_with_markers", len(profile)))

	// 2. Embedding table
	emb, err := table.ReadEmbeddingTable(flagVizbinTab)
	if err != nil {
		return err
	}
	logger.Info("Loaded embedding table", zap.Int("contigs", len(emb.Records)))

	// 3. Eps sweep
	assignments, err := model.Sweep(cluster.DBSCAN{}, emb.Points(),
		params.EpsStart, params.EpsStep, params.MinPoints, params.MaxSweepRounds)
	if err != nil {
		return err
	}
	logger.Info("Sweep finished", zap.Int("rounds", len(assignments)))

	// 4. Score every round and pick the best eps
	scored := model.ScoreSweep(emb.Records, assignments, profile, expected,
		params.CompletenessCutoff, params.PurityCutoff)
	best, err := model.SelectBest(scored)
	if err != nil {
		return err
	}
	logger.Info("Selected eps",
		zap.Float64("eps", best.Eps),
		zap.Int("complete_and_pure", best.CompleteAndPure),
		zap.Int("clusters", len(best.Qualities)))

	// 5. Summaries and partition for the selected assignment
	summaries := model.Summarize(emb.Records, best.Assignment)
	part := model.PartitionClusters(emb.Records, best.Assignment, best.Qualities,
		params.CompletenessCutoff, params.PurityCutoff)

	if err := util.EnsureDir(flagOutdir); err != nil {
		return fmt.Errorf("outdir %s: %w", flagOutdir, err)
	}

	if err := writeTables(emb, best, summaries, part, params); err != nil {
		return err
	}

	if flagFasta != "" {
		if err := writeFastas(emb, best, part); err != nil {
			return err
		}
	}

	if flagDB != "" {
		if err := archiveRun(cmd.Context(), emb, best, summaries, part, params); err != nil {
			return err
		}
	}

	logger.Info("Done",
		zap.Int("finished_clusters", len(part.Finished)),
		zap.Int("contigs_binned", len(part.FinishedRows)),
		zap.Int("contigs_remaining", len(part.RemainingRows)))
	return nil
}

// buildParams layers CLI flags over the optional YAML file over the
// defaults. Only flags the user actually set override the file.
func buildParams(cmd *cobra.Command) (config.Params, error) {

	params := config.Default()
	if flagConfig != "" {
		var err error
		if params, err = config.Load(flagConfig); err != nil {
			return params, err
		}
	}

	if cmd.Flags().Changed("domain") || flagConfig == "" {
		params.Domain = flagDomain
	}
	if cmd.Flags().Changed("purity-cutoff") {
		params.PurityCutoff = flagPurityCutoff
	}
	if cmd.Flags().Changed("completeness-cutoff") {
		params.CompletenessCutoff = flagCompletenessCutoff
	}

	if err := params.Validate(); err != nil {
		return params, err
	}
	return params, nil
}

func writeTables(emb *table.EmbeddingTable, best model.ScoredAssignment,
	summaries map[int]model.Summary, part model.Partition, params config.Params) error {

	clusteredPath := filepath.Join(flagOutdir, "clustered_table")
	if err := table.WriteContigTable(clusteredPath, emb, part.FinishedRows, best.Labels); err != nil {
		return err
	}

	nonclusteredPath := filepath.Join(flagOutdir, "nonclustered_table")
	if err := table.WriteContigTable(nonclusteredPath, emb, part.RemainingRows, best.Labels); err != nil {
		return err
	}

	summaryPath := filepath.Join(flagOutdir, "summary_table")
	return table.WriteSummaryTable(summaryPath, summaries, best.Qualities,
		params.CompletenessCutoff, params.PurityCutoff)
}

// writeFastas emits one FASTA per finished cluster plus unclustered.fasta
// with everything else. Every contig of the assignment must be present in
// the assembly.
func writeFastas(emb *table.EmbeddingTable, best model.ScoredAssignment, part model.Partition) error {

	seqs, err := fasta.Read(flagFasta)
	if err != nil {
		return err
	}

	collect := func(rows []int) ([]fasta.Record, error) {
		records := make([]fasta.Record, 0, len(rows))
		for _, i := range rows {
			contig := emb.Records[i].Contig
			rec, ok := seqs[contig]
			if !ok {
				return nil, fmt.Errorf("contig %s is missing from %s", contig, flagFasta)
			}
			records = append(records, rec)
		}
		return records, nil
	}

	for label, rows := range part.GroupFinished(best.Labels) {
		records, err := collect(rows)
		if err != nil {
			return err
		}
		path := filepath.Join(flagOutdir, fmt.Sprintf("cluster_%d.fasta", label))
		if err := fasta.Write(path, records); err != nil {
			return err
		}
	}

	records, err := collect(part.RemainingRows)
	if err != nil {
		return err
	}
	return fasta.Write(filepath.Join(flagOutdir, "unclustered.fasta"), records)
}

func archiveRun(ctx context.Context, emb *table.EmbeddingTable, best model.ScoredAssignment,
	summaries map[int]model.Summary, part model.Partition, params config.Params) error {

	conn, err := sql.Open("sqlite", flagDB)
	if err != nil {
		return err
	}
	defer conn.Close()

	archive, err := rundb.NewRunDB(conn)
	if err != nil {
		return err
	}

	run := rundb.Run{
		Domain:             params.Domain,
		CompletenessCutoff: params.CompletenessCutoff,
		PurityCutoff:       params.PurityCutoff,
		BestEps:            best.Eps,
	}

	labels := make([]int, 0, len(summaries))
	for label := range summaries {
		labels = append(labels, label)
	}
	sort.Ints(labels)
	for _, label := range labels {
		run.Clusters = append(run.Clusters, rundb.ClusterRow{
			Cluster: label,
			Summary: summaries[label],
			Quality: best.Qualities[label],
			Status:  model.StatusOf(best.Qualities[label], params.CompletenessCutoff, params.PurityCutoff),
		})
	}

	for i, rec := range emb.Records {
		status := model.StatusIncompleteOrImpure
		if part.Finished[best.Labels[i]] {
			status = model.StatusCompleteAndPure
		}
		run.Contigs = append(run.Contigs, rundb.ContigRow{
			Contig:  rec.Contig,
			Cluster: best.Labels[i],
			Status:  status,
		})
	}

	run_id, err := archive.SaveRun(ctx, run)
	if err != nil {
		return err
	}
	logger.Info("Archived run", zap.String("run_id", run_id), zap.String("db", flagDB))
	return nil
}
