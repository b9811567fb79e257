package status

import (
	"errors"
	"fmt"
)

// Status is the flat result code of a disguise or recovery call.
type Status int

const (
	OK Status = iota
	NotFile
	FileNotExists
	FileOpenErr
	FileAlreadyExists
	FileTypeUnknown
	NotDir
	DirNotExists
	DirCreateErr
	DataErr
	FileWriteErr
)

var names = map[Status]string{
	OK:                "OK",
	NotFile:           "NOT_FILE",
	FileNotExists:     "FILE_NOT_EXISTS",
	FileOpenErr:       "FILE_OPEN_ERR",
	FileAlreadyExists: "FILE_ALREADY_EXISTS",
	FileTypeUnknown:   "FILE_TYPE_UNKNOWN",
	NotDir:            "NOT_DIR",
	DirNotExists:      "DIR_NOT_EXISTS",
	DirCreateErr:      "DIR_CREATE_ERR",
	DataErr:           "DATA_ERR",
	FileWriteErr:      "FILE_WRITE_ERR",
}

func (s Status) String() string {
	if n, ok := names[s]; ok {
		return n
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Error lets a bare Status be used as a target for errors.Is.
func (s Status) Error() string { return s.String() }

// Error is a failed operation tagged with its Status.
type Error struct {
	Status Status
	Op     string
	Path   string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Status.String()
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Path != "" {
		msg += " (" + e.Path + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches a bare Status target against the error's code.
func (e *Error) Is(target error) bool {
	s, ok := target.(Status)
	return ok && s == e.Status
}

// New builds an *Error. A nil cause is allowed.
func New(s Status, op, path string, err error) error {
	return &Error{Status: s, Op: op, Path: path, Err: err}
}

// Errorf builds an *Error whose cause is a formatted message.
func Errorf(s Status, op, path, format string, args ...any) error {
	return &Error{Status: s, Op: op, Path: path, Err: fmt.Errorf(format, args...)}
}

// Of returns the Status carried by err: OK for nil, DataErr for anything
// that was not produced by this package.
func Of(err error) Status {
	if err == nil {
		return OK
	}
	var se *Error
	if errors.As(err, &se) {
		return se.Status
	}
	var s Status
	if errors.As(err, &s) {
		return s
	}
	return DataErr
}

// WithPath returns err with Path set when it is an *Error without one.
func WithPath(err error, path string) error {
	var se *Error
	if !errors.As(err, &se) || se.Path != "" {
		return err
	}
	cp := *se
	cp.Path = path
	return &cp
}
