package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"exam-question-categorizer/configs"
	"exam-question-categorizer/monitor"
)

func newRootCmd() *cobra.Command {
	var (
		configPath string
		threshold  float64
		once       bool
	)
	cmd := &cobra.Command{
		Use:   "monitor",
		Short: "Watch CPU and memory usage and provision a VM when it runs high",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := configs.Load(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("threshold") {
				conf.Monitor.Threshold = threshold
				if err := conf.Validate(); err != nil {
					return err
				}
			}
			log := configs.NewLogger(&conf.App, cmd.OutOrStdout())

			record, err := os.OpenFile(conf.Monitor.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
			if err != nil {
				return err
			}
			defer record.Close()

			m := monitor.New(
				monitor.Options{
					Threshold: conf.Monitor.Threshold,
					Interval:  conf.Monitor.IntervalDuration(),
					Cooldown:  conf.Monitor.CooldownDuration(),
				},
				monitor.HostSampler{Window: conf.Monitor.CPUSampleDuration()},
				monitor.CommandProvisioner{Command: conf.Monitor.ProvisionCommand, Log: log},
				log,
				record,
			)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			if once {
				_, err = m.Check(ctx)
				return err
			}
			log.WithFields(logrus.Fields{
				"threshold": conf.Monitor.Threshold,
				"interval":  conf.Monitor.Interval,
			}).Info("resource monitor started")
			if err := m.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "configs/config.json", "path to config.json")
	cmd.Flags().Float64Var(&threshold, "threshold", 75, "usage percent that triggers provisioning")
	cmd.Flags().BoolVar(&once, "once", false, "check once and exit")
	return cmd
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
