package monitor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/sirupsen/logrus"
)

// HostSampler reads usage of the local machine. CPU usage is measured over Window.
type HostSampler struct {
	Window time.Duration
}

func (h HostSampler) Sample(ctx context.Context) (Usage, error) {
	percents, err := cpu.PercentWithContext(ctx, h.Window, false)
	if err != nil {
		return Usage{}, err
	}
	if len(percents) == 0 {
		return Usage{}, errors.New("no cpu sample")
	}
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return Usage{}, err
	}
	return Usage{CPU: percents[0], Memory: vm.UsedPercent}, nil
}

// CommandProvisioner runs an external command, such as the gcloud CLI.
type CommandProvisioner struct {
	Command []string
	Log     logrus.FieldLogger
}

func (p CommandProvisioner) Provision(ctx context.Context) error {
	if len(p.Command) == 0 {
		return errors.New("no provision command configured")
	}
	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, p.Command[0], p.Command[1:]...)
	cmd.Stdout = &out
	cmd.Stderr = &out
	p.Log.WithField("command", strings.Join(p.Command, " ")).Info("deploying new VM")
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w: %s", p.Command[0], err, strings.TrimSpace(out.String()))
	}
	p.Log.WithField("output", strings.TrimSpace(out.String())).Debug("provision command finished")
	return nil
}
