/*
Package session carries the per-run environment through a call chain.

Screens and stacks do not hold references to the terminal: an Application
attaches a Session to the context passed to Execute, and every screen
executed within that call chain (including screens pushed from completion
callbacks) reads it back with FromContext.

When no Session is attached, FromContext returns a process-wide default that
talks to stdin/stdout and discards logs.
*/
package session
