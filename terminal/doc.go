// Package terminal is the boundary between the compositor and the physical terminal.
//
// It exposes a typed event enumeration (keys, mouse, resize, interrupt) and a
// small output surface: write a cell, place or hide the hardware cursor, flush.
// The default implementation is backed by tcell, which owns raw mode, the
// alternate screen and escape-sequence encoding.
//
// EmergencyReset restores a usable terminal from a crash path where the
// Terminal itself may be in an unknown state.
package terminal
