// Package ui contains the Bubble Tea program that powers the launcher popup.
// The Model type focuses on message orchestration while internal/ui/state
// owns the search buffer, filtering, and selection.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry.
//   - Key messages are translated into engine events (input.go). Control
//     chords are replayed as modifier press, key, modifier release so the
//     engine sees the same sequence a keyboard with modifier reporting would
//     send.
//   - When the engine reports an activation, the command bus resolves the
//     entry's command line off the update loop. A successful result stores
//     the pending command and quits; a failure is shown on the status line
//     and the list stays open.
//
// The process is replaced by the chosen program only after the Bubble Tea
// program has exited (see internal/app), so nothing here runs afterwards.
package ui
