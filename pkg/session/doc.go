/*
Package session holds the live state of one player.

A Session owns the current screen (State) and the entry buffer, and exposes
the only two ways to change them: RequestState replaces the screen and
UpdateEntry replaces the buffer. Select and Submit are conveniences that
render the current view and apply one of its actions.

Reads and replacements are guarded by a read-write mutex so a frontend never
renders a half-applied transition.
*/
package session
