/*
Package ports defines the host collaborators consumed by the ScreenStack core.

The core never touches os.Stdin, os.Stdout or time.Sleep directly. Instead it
talks to these interfaces, which the host application supplies (see the
terminal package for the standard implementations).

# Key Interfaces

  - Output: prints one line of text (prompts, stack headers).
  - Input: reads one line of text, or reports that none is available.
  - Delayer: blocks the caller for a duration (animated push/pop).
  - Terminal: all three together.
*/
package ports
