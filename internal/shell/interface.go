package shell

// Command is one script submitted to a Shell. Callbacks run on the
// shell's worker goroutine: OnOutput once per stdout line in order, then
// OnCompleted exactly once with the exit code (-1 if the process could
// not be started).
type Command struct {
	ID          int
	Script      string
	OnOutput    func(id int, line string)
	OnCompleted func(id int, exitCode int)
}

// Shell executes queued commands one at a time.
type Shell interface {
	Add(cmd *Command) error
	IsClosed() bool
	Close() error
}

// Provider hands out shells, creating a new one when none exists or the
// previous one was closed.
type Provider interface {
	Get(root bool) (Shell, error)
}
