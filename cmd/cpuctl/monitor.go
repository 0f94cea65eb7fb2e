package main

import (
	"context"
	"time"

	"codeberg.org/mutker/cpuctl/internal/config"
	"codeberg.org/mutker/cpuctl/internal/cpu"
	"codeberg.org/mutker/cpuctl/internal/errors"
	"codeberg.org/mutker/cpuctl/internal/logger"
	"codeberg.org/mutker/cpuctl/internal/metrics"
	"codeberg.org/mutker/cpuctl/internal/pid"
	"github.com/spf13/cobra"
)

type CPUState struct {
	Temperature  int
	PresentCores int
	Frequencies  []string
	Probe        cpu.FrequencySnapshot
	ProbeOK      bool
}

func newMonitorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "monitor",
		Short: "Log CPU temperature and frequencies every interval",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lock := pid.New("")
			if err := lock.Write(); err != nil {
				return err
			}
			defer func() {
				if err := lock.Remove(); err != nil {
					logger.Error().Err(err).Msg("failed to remove pid file")
				}
			}()

			collector, err := metrics.NewCollector(metrics.Config{
				DBPath:       cfg.GetMetricsDBPath(),
				BatchSize:    cfg.MetricsBatchSize,
				BatchTimeout: cfg.MetricsBatchTimeout,
				Enabled:      cfg.IsMetricsEnabled(),
			}, logger.New("metrics"))
			if err != nil {
				return err
			}
			defer func() {
				if err := collector.Close(); err != nil {
					logger.Error().Err(err).Msg("failed to close metrics")
				}
			}()

			ctx := cmd.Context()
			if cfg.ConfigFile() != "" {
				watchLogLevel(ctx, cfg)
			}

			if err := loop(ctx, cfg, frequencyProbe(), collector); err != nil {
				return errors.New().Wrap(errors.ErrMainLoop, err)
			}
			return nil
		},
	}
}

// watchLogLevel applies log level changes from the config file.
func watchLogLevel(ctx context.Context, w config.Watcher) {
	err := w.Watch(ctx, func(updated *config.Config) {
		logger.SetLogLevel(logger.ParseLevel(string(updated.GetLogLevel())))
		logger.Info().Str("log_level", string(updated.GetLogLevel())).Msg("Config reloaded")
	})
	if err != nil {
		logger.Warn().Err(err).Msg("Config watch unavailable")
	}
}

func loop(ctx context.Context, settings config.Provider, probe *cpu.FrequencyProbe, collector metrics.Collector) error {
	interval := settings.GetInterval()
	if interval <= 0 {
		return errors.New().WithData(errors.ErrInvalidInterval, interval.String())
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Info().Dur("interval", interval).Msg("Monitor mode activated. Logging CPU status...")

	for {
		select {
		case <-ctx.Done():
			logger.Info().Msg("Exiting...")
			return nil
		case <-ticker.C:
			state := getCPUState(ctx, probe, settings.GetProbeTimeout())
			logCPUState(state)

			if err := collector.Record(ctx, toSnapshot(state)); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				logger.Error().Err(err).Msg("failed to record metrics")
			}
		}
	}
}

func getCPUState(ctx context.Context, probe *cpu.FrequencyProbe, probeTimeout time.Duration) CPUState {
	state := CPUState{
		Temperature:  service.Temperature(),
		PresentCores: service.CoreCount(),
	}

	for core := 0; core < min(state.PresentCores, cpu.MaxCores); core++ {
		state.Frequencies = append(state.Frequencies, service.CurrentFrequency(core))
	}

	probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	snapshot, err := probe.Await(probeCtx)
	if err != nil {
		logger.Debug().Err(err).Msg("Frequency probe failed")
		return state
	}
	state.Probe = snapshot
	state.ProbeOK = true

	return state
}

func logCPUState(state CPUState) {
	labels := make([]string, len(state.Frequencies))
	for i, freq := range state.Frequencies {
		labels[i] = cpu.ToMHz(freq)
	}

	event := logger.Info()
	if cfg.Debug {
		event = logger.Debug()
		event.Strs("raw_frequencies", state.Frequencies).
			Strs("available", state.Probe.Available)
	}

	event.
		Int("temperature", state.Temperature).
		Int("cores", state.PresentCores).
		Strs("frequencies", labels).
		Bool("probe_ok", state.ProbeOK).
		Str("max_frequency", cpu.ToMHz(state.Probe.Maximum)).
		Str("min_frequency", cpu.ToMHz(state.Probe.Minimum)).
		Msg("")
}

func toSnapshot(state CPUState) *metrics.Snapshot {
	snapshot := &metrics.Snapshot{
		Timestamp:    time.Now(),
		Temperature:  state.Temperature,
		PresentCores: state.PresentCores,
		MaxFrequency: state.Probe.Maximum,
		MinFrequency: state.Probe.Minimum,
	}
	for core, freq := range state.Frequencies {
		snapshot.Cores = append(snapshot.Cores, metrics.CoreSample{Core: core, Frequency: freq})
	}
	return snapshot
}
