// Command mws2cols converts an MWS multi-parametric sweep export into
// comma-separated triples on standard output.
//
//	mws2cols [-v] <input-file>
//	mws2cols rq [-v] <input-file>
//
// MWS2COLS_VERBOSE may also be set in a .env file in the working directory.
package main

import "github.com/adrianmusante/mws-tools/internal/cli"

func main() {
	cli.Execute()
}
