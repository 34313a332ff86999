// Package cpu implements the Hack computer and its program image loader.
//
// The CPU has a program counter (PC), an address register (A) and a data
// register (D), all 16 bits wide, a six bit ALU, and 32K words each of RAM and
// ROM. RAM 0x4000-0x5fff is the screen bitmap and RAM 0x6000 is the keyboard.
//
// Execution is time sliced: ExecuteInstructions runs until its time budget is
// used, a breakpoint is reached, the program calls the halt address, or the
// program parks itself in a two instruction jump-to-self loop.
//
// The loader reads "hackem v1.0" images, with explicit RAM and ROM sections
// and a halt address, as well as legacy text files of 16 digit binary words.
package cpu
