// campaigngen is a standalone offline tool that writes a synthetic
// campaign dataset as CSV. The dataset feeds the training pipeline that
// produces the engagement model artifact; the tool is never part of the
// served system.
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"advision/internal/core/domain"
	"advision/internal/synth"
)

func main() {
	var (
		count int
		seed  int64
		out   string
	)

	cmd := &cobra.Command{
		Use:   "campaigngen",
		Short: "Generate a synthetic marketing campaign dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(count, seed, out)
		},
	}
	cmd.Flags().IntVar(&count, "count", 1000, "number of campaigns to generate")
	cmd.Flags().Int64Var(&seed, "seed", 42, "random seed for reproducible datasets")
	cmd.Flags().StringVar(&out, "out", filepath.Join("data", "campaigns_synthetic.csv"), "output CSV path")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(count int, seed int64, out string) error {
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	// The eight schema columns in model order, then the training target.
	header := append([]string{}, domain.FeatureColumns[:]...)
	header = append(header, "engagement_rate")
	if err = w.Write(header); err != nil {
		return err
	}

	gen := synth.New(seed)
	for i := 0; i < count; i++ {
		s := gen.Campaign()
		row := []string{
			s.Platform,
			s.Country,
			s.ProductCategory,
			strconv.FormatFloat(s.Spend, 'f', 2, 64),
			strconv.FormatInt(s.Impressions, 10),
			strconv.FormatInt(s.Clicks, 10),
			strconv.FormatInt(s.Conversions, 10),
			strconv.FormatInt(s.Reach, 10),
			strconv.FormatFloat(s.EngagementRate, 'f', -1, 64),
		}
		if err = w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	if err = w.Error(); err != nil {
		return err
	}
	fmt.Printf("wrote %d campaigns to %s\n", count, out)
	return nil
}
