// Package debugger drives a Hack CPU with a program database attached:
// symbolic addresses, source locations, register and memory expressions,
// and breakpoint aware execution.
package debugger
