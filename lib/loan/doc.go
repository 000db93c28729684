// Package loan implements fixed-rate loan amortization on a monthly
// compounding basis. It is a pure library package with no state: the server's
// command dispatcher calls Calculate to answer LOAN requests, and the numbers
// it returns are what goes on the wire.
//
// The package focuses on:
//   - Computing the fixed monthly payment that fully repays a principal plus
//     interest over a fixed number of monthly periods
//   - Degenerating to simple division for zero-interest loans
//   - Rounding both outputs to two decimal places
package loan
