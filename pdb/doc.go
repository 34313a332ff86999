// Package pdb holds the program database of a loaded Hack program: its
// symbols, the source line of each instruction address, and the source
// files. The database is produced by an external tool, loaded wholesale,
// and is read-only afterwards.
package pdb
