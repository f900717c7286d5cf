// Package playback turns a search result into a forward-only reveal sequence.
//
// The Sequencer emits every cell of the visited order, then every cell of the
// path, skipping Start and Goal, and numbers the emitted events 1, 2, 3, ...
// Each event is produced on demand and never revisited; there is no rewind.
// Peek looks ahead at upcoming visited cells for presentation emphasis
// without moving the cursor.
//
// A Sequencer owns copies of its inputs, so discarding it mid-playback, or
// changing the grid or the search result afterwards, has no effect on either
// side. Pacing is the caller's concern.
package playback
