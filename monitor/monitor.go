// Package monitor polls host CPU and memory usage and runs a provisioning
// command when either goes above a threshold.
package monitor

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

type Usage struct {
	CPU    float64
	Memory float64
}

type Sampler interface {
	Sample(ctx context.Context) (Usage, error)
}

type Provisioner interface {
	Provision(ctx context.Context) error
}

type Options struct {
	Threshold float64
	Interval  time.Duration
	// Cooldown is the minimum time between two provisioning runs; zero
	// provisions on every check above the threshold.
	Cooldown time.Duration
}

type Monitor struct {
	opts        Options
	sampler     Sampler
	provisioner Provisioner
	log         logrus.FieldLogger
	record      io.Writer

	now             func() time.Time
	lastProvisioned time.Time
}

// New creates a Monitor. Every sample is appended to record when it is not nil.
func New(opts Options, sampler Sampler, provisioner Provisioner, log logrus.FieldLogger, record io.Writer) *Monitor {
	return &Monitor{
		opts:        opts,
		sampler:     sampler,
		provisioner: provisioner,
		log:         log,
		record:      record,
		now:         time.Now,
	}
}

// Check samples usage once and provisions when it is over the threshold.
// It reports whether provisioning was started.
func (m *Monitor) Check(ctx context.Context) (bool, error) {
	usage, err := m.sampler.Sample(ctx)
	if err != nil {
		return false, fmt.Errorf("sample usage: %w", err)
	}
	m.log.WithFields(logrus.Fields{"cpu": usage.CPU, "memory": usage.Memory}).Info("resource usage")
	if m.record != nil {
		if _, err := fmt.Fprintf(m.record, "CPU: %.1f%%, Memory: %.1f%%\n", usage.CPU, usage.Memory); err != nil {
			m.log.WithError(err).Warn("write resource log")
		}
	}

	if usage.CPU <= m.opts.Threshold && usage.Memory <= m.opts.Threshold {
		return false, nil
	}
	now := m.now()
	if m.opts.Cooldown > 0 && !m.lastProvisioned.IsZero() && now.Sub(m.lastProvisioned) < m.opts.Cooldown {
		m.log.WithField("since", now.Sub(m.lastProvisioned).String()).Warn("high resource usage, provisioning cooling down")
		return false, nil
	}
	m.log.WithField("threshold", m.opts.Threshold).Warn("high resource usage detected, provisioning a new VM")
	m.lastProvisioned = now
	if err := m.provisioner.Provision(ctx); err != nil {
		return true, fmt.Errorf("provision: %w", err)
	}
	return true, nil
}

// Run checks immediately and then on every interval until ctx is done.
// Failed checks are logged and do not stop the loop.
func (m *Monitor) Run(ctx context.Context) error {
	ticker := time.NewTicker(m.opts.Interval)
	defer ticker.Stop()
	for {
		if _, err := m.Check(ctx); err != nil {
			m.log.WithError(err).Error("resource check failed")
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
