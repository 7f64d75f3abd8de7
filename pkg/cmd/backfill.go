package cmd

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/quantstream/quantstream/pkg/config"
	binancesource "github.com/quantstream/quantstream/pkg/datasource/binance"
)

func init() {
	BackfillCmd.Flags().Int("limit", 0, "number of klines to fetch, overrides the config backfill setting")
	RootCmd.AddCommand(BackfillCmd)
}

var BackfillCmd = &cobra.Command{
	Use:   "backfill",
	Short: "fetch historical klines, run the indicator over them and print the result",

	SilenceUsage: true,

	RunE: func(cmd *cobra.Command, args []string) error {
		configFile, err := cmd.Flags().GetString("config")
		if err != nil {
			return err
		}

		limit, err := cmd.Flags().GetInt("limit")
		if err != nil {
			return err
		}

		userConfig, err := config.Load(configFile)
		if err != nil {
			return err
		}

		if limit <= 0 {
			limit = userConfig.Backfill
		}
		if limit <= 0 {
			limit = userConfig.ATR.Period + 1
		}

		atr, err := userConfig.BuildATR()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		history := binancesource.NewHistoryService()
		kLines, err := history.QueryKLines(ctx, userConfig.Symbol, userConfig.Interval, limit)
		if err != nil {
			return err
		}

		for _, k := range kLines {
			atr.HandleBar(k)
			log.Debugf("%s atr=%f", k.String(), atr.Value())
		}

		fmt.Printf("%s %s %s: value=%f count=%d initialized=%v\n",
			userConfig.Symbol, userConfig.Interval, atr.String(), atr.Value(), atr.Count(), atr.IsInitialized())
		return nil
	},
}
