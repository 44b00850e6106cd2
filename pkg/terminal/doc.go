/*
Package terminal provides the standard implementations of the ports.Terminal
collaborators.

  - Console: line-oriented terminal over an io.Reader/io.Writer pair
    (stdin/stdout by default), with optional content rendering.
  - Script: in-memory terminal fed from a fixed list of lines. It records
    everything printed and every delay requested, which makes it the fake
    of choice in tests and headless runs.
*/
package terminal
