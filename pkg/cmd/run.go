package cmd

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/quantstream/quantstream/pkg/config"
	binancesource "github.com/quantstream/quantstream/pkg/datasource/binance"
	"github.com/quantstream/quantstream/pkg/indicator"
	"github.com/quantstream/quantstream/pkg/metrics"
	"github.com/quantstream/quantstream/pkg/stream"
	"github.com/quantstream/quantstream/pkg/types"
)

func init() {
	RootCmd.AddCommand(RunCmd)
}

var RunCmd = &cobra.Command{
	Use:   "run",
	Short: "stream klines and maintain the configured indicators",

	SilenceUsage: true,

	RunE: func(cmd *cobra.Command, args []string) error {
		configFile, err := cmd.Flags().GetString("config")
		if err != nil {
			return err
		}

		userConfig, err := config.Load(configFile)
		if err != nil {
			return err
		}

		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		return run(ctx, userConfig)
	},
}

func run(ctx context.Context, userConfig *config.Config) error {
	atr, err := userConfig.BuildATR()
	if err != nil {
		return err
	}

	log.Infof("starting %s on %s %s", atr.String(), userConfig.Symbol, userConfig.Interval)

	if userConfig.Backfill > 0 {
		if err := warmup(ctx, userConfig, atr); err != nil {
			return err
		}
	}

	if userConfig.Metrics != nil {
		go serveMetrics(userConfig.Metrics.Listen)
	}

	s := stream.NewStream(userConfig.Symbol, userConfig.Interval)
	s.OnKLineClosed(func(k types.KLine) {
		atr.HandleBar(k)
		observe(k, atr)

		log.Infof("%s %s close=%f atr=%f initialized=%v",
			k.Symbol, k.Interval, k.Close, atr.Value(), atr.IsInitialized())
	})

	if err := s.Connect(ctx); err != nil {
		return err
	}
	defer s.Close()

	<-ctx.Done()
	log.Info("shutting down")
	return nil
}

func warmup(ctx context.Context, userConfig *config.Config, atr *indicator.AverageTrueRange) error {
	history := binancesource.NewHistoryService()

	queryCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	kLines, err := history.QueryKLines(queryCtx, userConfig.Symbol, userConfig.Interval, userConfig.Backfill)
	if err != nil {
		return err
	}

	for _, k := range kLines {
		atr.HandleBar(k)
		observe(k, atr)
	}

	log.Infof("warmed up %s with %d klines, atr=%f initialized=%v",
		atr.String(), len(kLines), atr.Value(), atr.IsInitialized())
	return nil
}

func observe(k types.KLine, atr *indicator.AverageTrueRange) {
	labels := map[string]string{
		"symbol":    k.Symbol,
		"interval":  k.Interval.String(),
		"indicator": atr.Name(),
	}
	metrics.IndicatorValueMetrics.With(labels).Set(atr.Value())
	metrics.IndicatorUpdatesMetrics.With(labels).Inc()
}

func serveMetrics(listen string) {
	http.Handle("/metrics", promhttp.Handler())
	log.Infof("serving prometheus metrics on %s", listen)
	if err := http.ListenAndServe(listen, nil); err != nil {
		log.WithError(err).Error("metrics server stopped")
	}
}
