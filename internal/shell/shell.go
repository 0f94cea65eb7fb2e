package shell

import (
	"bufio"
	"context"
	"os/exec"
	"sync"
	"sync/atomic"

	"codeberg.org/mutker/cpuctl/internal/errors"
	"codeberg.org/mutker/cpuctl/internal/logger"
	"golang.org/x/sys/unix"
)

const (
	maxLineSize = 1024 * 1024
	minQueue    = 1
)

var commandIDs atomic.Int64

// NextID returns a process-wide unique command id.
func NextID() int {
	return int(commandIDs.Add(1))
}

type Config struct {
	Binary string
	Su     string
	Queue  int
}

type processShell struct {
	argv   []string
	root   bool
	queue  chan *Command
	done   chan struct{}
	ctx    context.Context
	cancel context.CancelFunc
	mu     sync.Mutex
	closed bool
	logger logger.Logger
}

func newProcessShell(argv []string, root bool, queue int, log logger.Logger) *processShell {
	if queue < minQueue {
		queue = minQueue
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &processShell{
		argv:   argv,
		root:   root,
		queue:  make(chan *Command, queue),
		done:   make(chan struct{}),
		ctx:    ctx,
		cancel: cancel,
		logger: log,
	}
	go s.worker()

	return s
}

func (s *processShell) Add(cmd *Command) error {
	errFactory := errors.New()

	if cmd == nil || cmd.Script == "" {
		return errFactory.New(ErrInvalidCommand)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return errFactory.New(ErrClosed)
	}

	select {
	case s.queue <- cmd:
		return nil
	default:
		return errFactory.WithData(ErrQueueFull, cap(s.queue))
	}
}

func (s *processShell) IsClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Close stops accepting commands and waits for the queued ones to finish.
func (s *processShell) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	close(s.queue)
	s.mu.Unlock()

	<-s.done
	s.cancel()

	s.logger.Debug().Bool("root", s.root).Msg("Shell closed")

	return nil
}

func (s *processShell) worker() {
	defer close(s.done)

	for cmd := range s.queue {
		s.execute(cmd)
	}
}

func (s *processShell) execute(cmd *Command) {
	args := append(append([]string{}, s.argv[1:]...), cmd.Script)
	proc := exec.CommandContext(s.ctx, s.argv[0], args...)

	stdout, err := proc.StdoutPipe()
	if err != nil {
		s.fail(cmd, err)
		return
	}

	if err := proc.Start(); err != nil {
		s.fail(cmd, err)
		return
	}

	scanner := bufio.NewScanner(stdout)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		if cmd.OnOutput != nil {
			cmd.OnOutput(cmd.ID, scanner.Text())
		}
	}
	if err := scanner.Err(); err != nil {
		s.logger.Warn().Err(err).Int("id", cmd.ID).Msg("Failed to read command output")
	}

	exitCode := 0
	if err := proc.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		} else {
			exitCode = -1
		}
	}

	s.logger.Trace().Int("id", cmd.ID).Int("exit_code", exitCode).Msg("Command completed")

	if cmd.OnCompleted != nil {
		cmd.OnCompleted(cmd.ID, exitCode)
	}
}

func (s *processShell) fail(cmd *Command, err error) {
	s.logger.ErrorWithCode(errors.New().Wrap(ErrStartFailed, err)).
		Int("id", cmd.ID).
		Strs("argv", s.argv).
		Msg("Failed to start command")

	if cmd.OnCompleted != nil {
		cmd.OnCompleted(cmd.ID, -1)
	}
}

// Pool is the process-wide Provider: one plain and one root shell,
// created lazily and replaced once closed.
type Pool struct {
	cfg    Config
	mu     sync.Mutex
	shells map[bool]*processShell
	logger logger.Logger
	euid   func() int
}

func NewPool(cfg Config, log logger.Logger) *Pool {
	if cfg.Binary == "" {
		cfg.Binary = "sh"
	}
	if cfg.Su == "" {
		cfg.Su = "su"
	}

	return &Pool{
		cfg:    cfg,
		shells: make(map[bool]*processShell, 2),
		logger: log,
		euid:   unix.Geteuid,
	}
}

func (p *Pool) Get(root bool) (Shell, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if s, ok := p.shells[root]; ok && !s.IsClosed() {
		return s, nil
	}

	argv, err := p.argv(root)
	if err != nil {
		return nil, err
	}

	s := newProcessShell(argv, root, p.cfg.Queue, p.logger)
	p.shells[root] = s

	p.logger.Debug().Bool("root", root).Strs("argv", argv).Msg("Shell acquired")

	return s, nil
}

func (p *Pool) argv(root bool) ([]string, error) {
	if !root || p.euid() == 0 {
		return []string{p.cfg.Binary, "-c"}, nil
	}

	su, err := exec.LookPath(p.cfg.Su)
	if err != nil {
		return nil, errors.New().Wrap(ErrRootUnavailable, err)
	}

	return []string{su, "-c"}, nil
}

// Close closes every shell handed out by the pool.
func (p *Pool) Close() error {
	p.mu.Lock()
	shells := make([]*processShell, 0, len(p.shells))
	for _, s := range p.shells {
		shells = append(shells, s)
	}
	p.shells = make(map[bool]*processShell, 2)
	p.mu.Unlock()

	var firstErr error
	for _, s := range shells {
		if err := s.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}
