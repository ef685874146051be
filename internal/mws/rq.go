package mws

import (
	"fmt"
	"io"
	"regexp"
	"strings"
)

// ModeMarker starts a new run section in an MWS multi-parametric R/Q export.
const ModeMarker = "Mode Number"

var numberPattern = regexp.MustCompile(`\d+\.?\d*(?:[eE][+-]\d+)?`)

// Run is one "Mode Number" section: its run number and the R/Q values.
type Run struct {
	Number string
	RQ     []string
}

// ParseRuns splits data on ModeMarker and extracts one Run per section.
// Text before the first marker is ignored. After the run number, every second
// number (starting with the second one) is an R/Q value.
//
// Sections without any number are returned in skipped (1-based section index).
func ParseRuns(data string) (runs []Run, skipped []int) {
	sections := strings.Split(data, ModeMarker)
	for i, section := range sections[1:] {
		numbers := numberPattern.FindAllString(section, -1)
		if len(numbers) == 0 {
			skipped = append(skipped, i+1)
			continue
		}
		run := Run{Number: numbers[0]}
		for j := 2; j < len(numbers); j += 2 {
			run.RQ = append(run.RQ, numbers[j])
		}
		runs = append(runs, run)
	}
	return runs, skipped
}

// String renders "number rq1 rq2 ...". The separating space after the number
// is always present.
func (r Run) String() string {
	return r.Number + " " + strings.Join(r.RQ, " ")
}

func WriteRuns(w io.Writer, runs []Run) error {
	for _, r := range runs {
		if _, err := fmt.Fprintln(w, r.String()); err != nil {
			return err
		}
	}
	return nil
}
