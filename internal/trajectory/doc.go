// Package trajectory answers queries over one fetched sequence of ISS state
// vectors: pagination, exact epoch lookup, nearest-epoch matching against a
// wall-clock time, and speeds derived from the velocity components.
//
// Every function here is pure. The sequence is borrowed for the duration of
// the call and never modified.
package trajectory
