package sanitize

import "strings"

// Ops is a set of sanitization operations. They are always run in the order
// in which they are declared.
type Ops uint

const (
	OpCleanup Ops = 1 << iota
	OpProperties
	OpSymmRings
	OpKekulize
	OpFindRadicals
	OpSetAromaticity
	OpSetConjugation
	OpSetHybridization
	OpCleanupGeometry
	opEnd

	OpNone Ops = 0
	OpAll      = opEnd - 1
)

// DefaultOps are the operations run by the Driver: everything except kekulization
// and aromaticity perception.
const DefaultOps = OpAll &^ OpKekulize &^ OpSetAromaticity

var opNames = map[Ops]string{
	OpCleanup:          "cleanup",
	OpProperties:       "properties",
	OpSymmRings:        "symmrings",
	OpKekulize:         "kekulize",
	OpFindRadicals:     "findradicals",
	OpSetAromaticity:   "setaromaticity",
	OpSetConjugation:   "setconjugation",
	OpSetHybridization: "sethybridization",
	OpCleanupGeometry:  "cleanupgeometry",
}

// Has returns true if all the operations in o are in O
func (O Ops) Has(o Ops) bool {
	return O&o == o
}

// List returns the single operations in O, in execution order.
func (O Ops) List() []Ops {
	var ret []Ops
	for o := OpCleanup; o < opEnd; o <<= 1 {
		if O.Has(o) {
			ret = append(ret, o)
		}
	}
	return ret
}

func (O Ops) String() string {
	switch O {
	case OpNone:
		return "none"
	case OpAll:
		return "all"
	}
	names := make([]string, 0, 9)
	for _, o := range O.List() {
		names = append(names, opNames[o])
	}
	return strings.Join(names, "|")
}
