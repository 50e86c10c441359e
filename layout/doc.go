// Package layout provides the coordinate algebra shared by widgets and the compositor.
//
// All positions are absolute screen cells, row first (y, x). Nothing here holds
// state: functions take a follower size and an anchor rectangle and return the
// origin the follower should move to.
//
// Degenerate rule: when the follower is at least as large as the anchor on an
// axis, it is placed flush with the anchor's start on that axis. Results are
// never negative.
package layout
