// Package trace records bounded position histories for simulated bodies
// and persists them between runs.
//
//   - [Ring]: fixed-capacity FIFO of positions, oldest evicted first
//   - [Snapshot]: per-body traces frozen at shutdown
//   - [Store]: JSON file persistence for snapshots
//
// A snapshot loaded at startup is a read-only "ghost" overlay. It is drawn
// by the hosts but never fed back into the physics.
package trace
