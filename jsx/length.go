package jsx

import (
	"go.uber.org/zap"

	"github.com/wippyai/jsx-luau/luau"
)

// lengthTracker mirrors the runtime length of a materialized children
// table in a local. The local is declared on first need and reassigned
// whenever the number of entries added since the last sync is not known.
type lengthTracker struct {
	id        *luau.TemporaryIdentifier // nil until first sync
	sinceSync int                       // single appends since the last sync
	stale     bool                      // an append of unknown cardinality happened
}

// sync emits `local _length = #T` the first time and `_length = #T` after.
func (l *lengthTracker) sync(s *State, table *luau.TemporaryIdentifier) {
	right := luau.Len(table)
	if l.id == nil {
		l.id = s.TempID("length")
		s.Prereq(luau.Declare(l.id, right))
	} else {
		s.Prereq(luau.Assign(l.id, right))
	}
	s.log.Debug("sync children length",
		zap.Int("since_sync", l.sinceSync),
		zap.Bool("stale", l.stale),
	)
	l.sinceSync = 0
	l.stale = false
}

// ensureSynced brings the local up to date with the table, emitting code
// only when the local is missing or no longer provably correct.
func (l *lengthTracker) ensureSynced(s *State, table *luau.TemporaryIdentifier) {
	if l.id == nil || l.stale || l.sinceSync > 0 {
		l.sync(s, table)
	}
}

// current returns the base offset for numeric appends, declaring the
// local if needed. Single appends since the last sync are accounted for
// by next, so current does not resync for them.
func (l *lengthTracker) current(s *State, table *luau.TemporaryIdentifier) *luau.TemporaryIdentifier {
	if l.id == nil || l.stale {
		l.sync(s, table)
	}
	return l.id
}

// next reserves the offset, relative to current, of one single append.
func (l *lengthTracker) next() int {
	l.sinceSync++
	return l.sinceSync
}

// invalidate records that an unknown number of entries was appended.
func (l *lengthTracker) invalidate() {
	l.stale = true
}
