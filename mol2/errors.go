package mol2

import (
	"errors"
	"fmt"

	chem "github.com/rmera/mol2props"
)

// ErrOrphanEnd is returned by a segmenter with the OrphanReject policy when an end marker
// is found outside a record.
var ErrOrphanEnd = errors.New("end marker found outside a record")

// Error is the general structure for MOL2 errors. It fulfills chem.Error.
type Error struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	line     int    //the line where the problem was found, 0 if unknown
	deco     []string
	critical bool
	err      error //the underlying error, if any
}

func (err Error) Error() string {
	var where string
	if err.filename != "" {
		where = " " + err.filename
	}
	if err.line > 0 {
		where = fmt.Sprintf("%s line %d", where, err.line)
	}
	if where == "" {
		return "mol2 error: " + err.message
	}
	return fmt.Sprintf("mol2%s: %s", where, err.message)
}

// Decorate Adds new information to the error
func (err Error) Decorate(deco string) []string {
	//Even though this method does not use a pointer as a receiver, and tries to alter the received,
	//it should work, since err.deco is a slice, and hence a pointer itself.
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// FileName returns the file to which the failing block was associated
func (err Error) FileName() string { return err.filename }

// Line returns the line where the problem was found. For parse errors, it is relative to the block.
func (err Error) Line() int { return err.line }

// Critical returns true if the error is critical, false otherwise
func (err Error) Critical() bool { return err.critical }

func (err Error) Unwrap() error { return err.err }

// errDecorate decorates err with the caller's name before returning it, if err implements
// chem.Error. Other errors are returned unchanged.
func errDecorate(err error, caller string) error {
	if err2, ok := err.(chem.Error); ok {
		err2.Decorate(caller)
		return err2
	}
	return err
}

const (
	UnableToOpen   = "Unable to open file"
	ReadFailure    = "Error reading line"
	NoHeader       = "Block has no @<TRIPOS>MOLECULE section"
	BadCounts      = "Can't read the atom and bond numbers"
	BadAtom        = "Malformed ATOM line"
	BadBond        = "Malformed BOND line"
	AtomCount      = "Number of atoms read doesn't match the header"
	BondCount      = "Number of bonds read doesn't match the header"
	UnknownBond    = "Unknown bond type"
	UnknownAtom    = "Bond to an atom not present in the record"
	EmptyMolecule  = "Molecule without atoms"
	OrphanEndFound = "End marker found outside a record"
)
