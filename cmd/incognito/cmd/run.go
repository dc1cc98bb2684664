package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/latticek/incognito/dataset"
	"github.com/latticek/incognito/hierarchy"
	"github.com/latticek/incognito/internal/runconfig"
	"github.com/latticek/incognito/report"
	"github.com/latticek/incognito/search"
	"github.com/latticek/incognito/vgh"
)

var (
	flagDataset      string
	flagQID          []string
	flagK            int
	flagDataDir      string
	flagHierarchyDir string
	flagDropNaN      bool
	flagNaNSentinel  string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Search for k-anonymous generalizations of a dataset",
	RunE: func(cmd *cobra.Command, args []string) error {
		v := viper.New()
		v.Set("dataset", flagDataset)
		v.Set("qid", flagQID)
		v.Set("k", flagK)
		v.Set("data_dir", flagDataDir)
		v.Set("hierarchy_dir", flagHierarchyDir)
		v.Set("drop_nan", flagDropNaN)
		v.Set("nan_sentinel", flagNaNSentinel)
		v.Set("verbose", verbose)
		v.AutomaticEnv()

		cfg, err := runconfig.Load(v)
		if err != nil {
			return err
		}

		return runSearch(cmd.Context(), cfg)
	},
}

func init() {
	runCmd.Flags().StringVar(&flagDataset, "dataset", "", "dataset name (adult, atus, cup, fars, ihis, acs13_ma)")
	runCmd.Flags().StringArrayVar(&flagQID, "qid", nil, "a quasi-identifier column; repeatable")
	runCmd.Flags().IntVar(&flagK, "k", 2, "minimum group size for k-anonymity")
	runCmd.Flags().StringVar(&flagDataDir, "data-dir", "./Data", "directory holding {dataset}/{dataset}.csv")
	runCmd.Flags().StringVar(&flagHierarchyDir, "hierarchy-dir", "./Data/hierarchies", "directory holding per-column hierarchy files")
	runCmd.Flags().BoolVar(&flagDropNaN, "drop-nan", false, "drop rows with a missing value in any quasi-identifier column")
	runCmd.Flags().StringVar(&flagNaNSentinel, "nan-sentinel", "?", "literal string treated as a missing value")
}

func runSearch(ctx context.Context, cfg *runconfig.Config) error {
	t, err := cache.Load(cfg.DataDir, cfg.Dataset)
	if err != nil {
		return err
	}

	t = dataset.ReplaceSentinel(t, cfg.NaNSentinel, cfg.QuasiIdentifiers)
	if cfg.DropNaN {
		t = dataset.DropIncomplete(t, cfg.QuasiIdentifiers)
	}

	trees, err := hierarchy.Load(cfg.QuasiIdentifiers, cfg.HierarchyDir)
	if err != nil {
		return err
	}
	store, err := vgh.NewStoreFromTrees(trees)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}

	result, err := search.Run(ctx, t, store, cfg.QuasiIdentifiers, cfg.K, logger)
	if err != nil {
		return err
	}

	if err := report.Verify(t, store, result, cfg.K); err != nil {
		return err
	}
	report.Print(os.Stdout, result, cfg.QuasiIdentifiers, cfg.K)

	return nil
}
