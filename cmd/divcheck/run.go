// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"text/tabwriter"

	"github.com/ajroetker/go-intdiv/hwy"
	"github.com/ajroetker/go-intdiv/hwy/contrib/intdiv"
	"github.com/ajroetker/go-intdiv/hwy/contrib/workerpool"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"
)

func newRootCommand() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "divcheck",
		Short: "Cross-check integer floor-division kernels against the scalar reference",
		Long: "divcheck runs randomized differential checks of the integer floor-division\n" +
			"kernels for each element type: every dispatch strategy, the batch kernel,\n" +
			"the parallel driver and indexed division.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath, cmd.Flags())
			if err != nil {
				return err
			}
			logger, err := newLogger(cfg.Verbose)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()
			intdiv.SetLogger(logger)
			defer intdiv.SetLogger(nil)

			reports, err := run(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			writeReports(cmd.OutOrStdout(), reports)
			if bad := countMismatches(reports); bad > 0 {
				return fmt.Errorf("%d kernel results differ from the reference", bad)
			}
			return nil
		},
	}

	def := defaultConfig()
	flags := cmd.Flags()
	flags.StringVar(&configPath, "config", "", "TOML configuration file")
	flags.StringSlice("types", def.Types, "element types to check (comma-separated, or 'all')")
	flags.Int("iterations", def.Iterations, "randomized rounds per element type")
	flags.Int("max-length", def.MaxLength, "maximum operand length per round")
	flags.Uint64("seed", def.Seed, "random seed")
	flags.Int("workers", def.Workers, "parallel driver workers (0 uses GOMAXPROCS)")
	flags.BoolP("verbose", "v", def.Verbose, "log kernel fallbacks at debug level")
	return cmd
}

func newLogger(verbose bool) (*zap.Logger, error) {
	zcfg := zap.NewDevelopmentConfig()
	zcfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if verbose {
		zcfg.Level.SetLevel(zapcore.DebugLevel)
	}
	zcfg.DisableStacktrace = true
	return zcfg.Build()
}

// run checks every configured element type concurrently. Each type owns its
// own status register; the registers are merged into the reports.
func run(ctx context.Context, cfg Config, logger *zap.Logger) ([]Report, error) {
	names, err := parseTypes(cfg.Types)
	if err != nil {
		return nil, err
	}

	workers := cfg.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	pool := workerpool.New(workers)
	defer pool.Close()

	logger.Info("starting",
		zap.Strings("types", names),
		zap.String("dispatch", hwy.CurrentName()),
		zap.Int("width", hwy.CurrentWidth()),
		zap.Int("iterations", cfg.Iterations),
		zap.Uint64("seed", cfg.Seed),
	)

	reports := make([]Report, len(names))
	g, ctx := errgroup.WithContext(ctx)
	for i, name := range names {
		g.Go(func() error {
			c := &checker{
				cfg:    cfg,
				pool:   pool,
				log:    logger.With(zap.String("type", name)),
				flags:  new(intdiv.Register),
				stream: uint64(i),
				report: Report{Type: name},
			}
			if err := checks[name](ctx, c); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			c.report.Status = c.flags.Clear()
			reports[i] = c.report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

func countMismatches(reports []Report) int {
	return lo.SumBy(reports, func(r Report) int { return r.Mismatches })
}

func writeReports(w io.Writer, reports []Report) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TYPE\tCASES\tMISMATCHES\tFLAGS")
	for _, r := range reports {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\n", r.Type, r.Cases, r.Mismatches, r.Status)
	}
	tw.Flush()
}
