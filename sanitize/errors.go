package sanitize

import (
	"errors"
	"fmt"

	chem "github.com/rmera/mol2props"
)

var (
	// ErrUnsupported is returned when an operation that the toolkit doesn't perform is requested
	// on a molecule that would need it.
	ErrUnsupported = errors.New("operation not supported by the toolkit")
	// ErrForeignRecord is returned when a toolkit is given a record it didn't produce.
	ErrForeignRecord = errors.New("record not produced by this toolkit")
)

// ValidationError is returned when a molecule fails a sanitization operation. It fulfills
// chem.Error.
type ValidationError struct {
	Op       Ops
	Atom     int //index of the offending atom, -1 if none
	message  string
	deco     []string
	critical bool
	err      error
}

func (err ValidationError) Error() string {
	return fmt.Sprintf("sanitization (%s) failed: %s", err.Op, err.message)
}

// Decorate Adds new information to the error
func (err ValidationError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// Critical returns true if the error is critical, false otherwise
func (err ValidationError) Critical() bool { return err.critical }

func (err ValidationError) Unwrap() error { return err.err }

func newValidationError(op Ops, atom int, caller, format string, args ...interface{}) ValidationError {
	return ValidationError{Op: op, Atom: atom, message: fmt.Sprintf(format, args...), deco: []string{caller}, critical: true}
}

// errDecorate decorates err with the caller's name before returning it, if err implements
// chem.Error. Other errors are returned unchanged.
func errDecorate(err error, caller string) error {
	if err2, ok := err.(chem.Error); ok {
		err2.Decorate(caller)
		return err2
	}
	return err
}

// Stage is the step of the pipeline in which a record failed.
type Stage string

const (
	StageParse    Stage = "parse"
	StageSanitize Stage = "sanitize"
)

// RecordError is returned by the Driver when a record fails. Index is the position
// of the record in the slice given to the driver.
type RecordError struct {
	Index int
	Name  string
	Stage Stage
	deco  []string
	err   error
}

func (err RecordError) Error() string {
	return fmt.Sprintf("record %d (%q) failed at %s: %v", err.Index, err.Name, err.Stage, err.err)
}

// Decorate Adds new information to the error
func (err RecordError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// Critical returns true, a failed record always stops the fail-fast driver.
func (err RecordError) Critical() bool { return true }

func (err RecordError) Unwrap() error { return err.err }
