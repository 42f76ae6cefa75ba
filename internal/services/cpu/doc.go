// Package cpu emulates the instruction decode engine of a MOS 6502.
//
// The CPU is driven one clock cycle at a time by calling Tick(). A tick on an
// idle CPU fetches, decodes and executes a whole instruction and reports
// Completed; the remaining cycles the instruction is charged are burned by
// subsequent ticks, each reporting InProgress. Stopping between ticks leaves
// the CPU in a state that can be resumed.
//
// Memory is not part of the CPU. Anything satisfying the Memory interface
// can be attached; address faults it reports are returned from Tick().
package cpu
