package errors

// ErrorCode identifies a failure independent of its message.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Coded is satisfied by anything carrying an ErrorCode.
type Coded interface {
	Code() ErrorCode
}

// Error is the code-carrying error built by a Factory. Data is free-form
// context (phase, path, value) rendered after the message.
type Error interface {
	error
	Coded
	WithMessage(msg string) Error
	WithData(data any) Error
	GetData() any
	Unwrap() error
}

// Factory builds Errors for one code at a time.
type Factory interface {
	New(code ErrorCode) Error
	Wrap(code ErrorCode, err error) Error
	WithMessage(code ErrorCode, msg string) Error
	WithData(code ErrorCode, data any) Error
}
