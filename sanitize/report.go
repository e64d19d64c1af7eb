package sanitize

import (
	"encoding/json"
	"io"

	chem "github.com/rmera/mol2props"
	"github.com/rmera/mol2props/mol2"
)

// Result describes a record that failed. Index is the position of the
// record's block in the file (or in the slice given to the driver, if the
// records didn't come from a file).
type Result struct {
	Index     int
	Name      string `json:",omitempty"`
	FirstLine int    `json:",omitempty"`
	LastLine  int    `json:",omitempty"`
	Stage     Stage
	Message   string
	Trace     string `json:",omitempty"` //functions the error went through, innermost first
	Err       error  `json:"-"`
}

func newResult(index int, name string, stage Stage, err error) Result {
	return Result{Index: index, Name: name, Stage: stage, Message: err.Error(), Trace: chem.Trace(err), Err: err}
}

// locate sets the index and line span of R to those of the block b.
func (R *Result) locate(b *mol2.Block) {
	R.Index = b.Index()
	R.FirstLine = b.First()
	R.LastLine = b.Last()
}

// Report is the outcome of processing a set of records. It serializes to JSON.
type Report struct {
	File      string `json:",omitempty"`
	Blocks    int    //blocks produced by the segmenter
	Parsed    int    //blocks successfully parsed into records
	Passed    int    //records that passed all the checks
	Failures  []Result
	Anomalies []mol2.Anomaly `json:",omitempty"`
	Aborted   bool           //processing stopped at the first failure
}

// OK returns true if every record was processed and none failed.
func (R *Report) OK() bool {
	return !R.Aborted && len(R.Failures) == 0
}

// Send writes the report as indented JSON to out.
func (R *Report) Send(out io.Writer) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(R)
}
