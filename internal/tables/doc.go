// Package tables contains the constant tables of the pulsejet format.
//
// This includes frame geometry, window modes and the per-band bin
// allocation. Values here are part of the format and must match the
// encoder exactly.
package tables
