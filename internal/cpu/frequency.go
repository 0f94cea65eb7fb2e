package cpu

import (
	"context"
	"strings"

	"codeberg.org/mutker/cpuctl/internal/errors"
	"codeberg.org/mutker/cpuctl/internal/logger"
	"codeberg.org/mutker/cpuctl/internal/shell"
)

const (
	maxTag = '['
	minTag = ']'
)

// FrequencySnapshot is the result of one probe. Values are raw kHz
// strings; any of them may be empty when the underlying read failed.
type FrequencySnapshot struct {
	Available []string
	Maximum   string
	Minimum   string
}

// FrequencyListener receives probe results.
type FrequencyListener interface {
	OnFrequency(snapshot FrequencySnapshot)
}

// FrequencyListenerFunc adapts a function to FrequencyListener.
type FrequencyListenerFunc func(snapshot FrequencySnapshot)

func (f FrequencyListenerFunc) OnFrequency(snapshot FrequencySnapshot) {
	f(snapshot)
}

// FrequencyScript returns the shell script that prints the available
// frequencies, then "[" and core 0's max, then "]" and core 0's min, as
// one line.
func FrequencyScript(t *Topology) string {
	var b strings.Builder
	b.WriteString("command=$(")
	b.WriteString("cat " + t.AvailableFrequenciesPath() + " 2> /dev/null;")
	b.WriteString(`echo -n "[";`)
	b.WriteString("cat " + t.Path(0, MaxFrequency) + " 2> /dev/null;")
	b.WriteString(`echo -n "]";`)
	b.WriteString("cat " + t.Path(0, MinFrequency) + " 2> /dev/null;")
	b.WriteString(");")
	b.WriteString(`echo $command | tr -d "\n"`)
	return b.String()
}

// ParseFrequencyLine splits the probe output on spaces. A token starting
// with "[" is the maximum, one starting with "]" the minimum (the last
// occurrence wins), and every other non-empty token is an available
// frequency.
func ParseFrequencyLine(line string) FrequencySnapshot {
	snapshot := FrequencySnapshot{Available: []string{}}

	for _, token := range strings.Split(line, " ") {
		if token == "" {
			continue
		}

		switch token[0] {
		case maxTag:
			snapshot.Maximum = token[1:]
		case minTag:
			snapshot.Minimum = token[1:]
		default:
			snapshot.Available = append(snapshot.Available, token)
		}
	}

	return snapshot
}

// FrequencyProbe reads available/max/min frequencies through a root
// shell and delivers the parsed result on its Dispatcher.
type FrequencyProbe struct {
	shells     shell.Provider
	dispatcher Dispatcher
	topology   *Topology
	logger     logger.Logger
}

func NewFrequencyProbe(shells shell.Provider, dispatcher Dispatcher, topology *Topology, log logger.Logger) *FrequencyProbe {
	if topology == nil {
		topology = DefaultTopology
	}

	return &FrequencyProbe{
		shells:     shells,
		dispatcher: dispatcher,
		topology:   topology,
		logger:     log,
	}
}

// Probe dispatches one probe. The listener is called at most once, on
// the dispatcher, after the command completes. If the shell cannot be
// acquired or is closed the failure is logged and the listener is never
// called, so callers waiting on it need their own timeout. A ctx that is
// done by delivery time suppresses the callback.
func (p *FrequencyProbe) Probe(ctx context.Context, listener FrequencyListener) {
	if err := p.dispatch(ctx, listener); err != nil {
		var appErr errors.Error
		if errors.As(err, &appErr) {
			p.logger.ErrorWithCode(appErr).Msg("Frequency probe not dispatched")
			return
		}
		p.logger.Error().Err(err).Msg("Frequency probe not dispatched")
	}
}

// Await runs one probe and waits for its result or for ctx to end.
func (p *FrequencyProbe) Await(ctx context.Context) (FrequencySnapshot, error) {
	errFactory := errors.New()

	result := make(chan FrequencySnapshot, 1)
	listener := FrequencyListenerFunc(func(snapshot FrequencySnapshot) {
		result <- snapshot
	})

	if err := p.dispatch(ctx, listener); err != nil {
		return FrequencySnapshot{}, err
	}

	select {
	case snapshot := <-result:
		return snapshot, nil
	case <-ctx.Done():
		return FrequencySnapshot{}, errFactory.Wrap(ErrProbeTimeout, ctx.Err())
	}
}

func (p *FrequencyProbe) dispatch(ctx context.Context, listener FrequencyListener) error {
	errFactory := errors.New()

	sh, err := p.shells.Get(true)
	if err != nil {
		return errFactory.Wrap(ErrShellUnavailable, err)
	}
	if sh == nil {
		return errFactory.New(ErrShellUnavailable)
	}

	script := FrequencyScript(p.topology)
	p.logger.Debug().Str("script", script).Msg("Probing frequencies")

	// Output and completion callbacks run sequentially on the shell worker.
	var output strings.Builder
	cmd := &shell.Command{
		ID:     shell.NextID(),
		Script: script,
		OnOutput: func(_ int, line string) {
			p.logger.Trace().Str("line", line).Msg("Probe output")
			output.WriteString(line)
		},
		OnCompleted: func(id int, exitCode int) {
			if exitCode != 0 {
				p.logger.Debug().Int("id", id).Int("exit_code", exitCode).Msg("Probe exited non-zero")
			}
			snapshot := ParseFrequencyLine(output.String())
			accepted := p.dispatcher.Post(func() {
				if ctx.Err() != nil {
					p.logger.Debug().Int("id", id).Msg("Probe result dropped, context done")
					return
				}
				listener.OnFrequency(snapshot)
			})
			if !accepted {
				p.logger.Debug().Int("id", id).Msg("Probe result dropped, dispatcher closed")
			}
		},
	}

	if sh.IsClosed() {
		return errFactory.New(ErrShellClosed)
	}

	if err := sh.Add(cmd); err != nil {
		return errFactory.Wrap(ErrProbeDispatch, err)
	}

	return nil
}
