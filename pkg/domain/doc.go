/*
Package domain defines the core types shared by every ScreenStack component.

A Screen is the single capability of the framework: something that can be
executed against the host terminal. Plain prompt screens and navigation stacks
are both Screens, so either one can be pushed onto a stack or used as the
root of an Application.

The package also defines the lifecycle events emitted while a session runs.
Hosts subscribe to them through LifecycleHooks for logging and metrics.
*/
package domain
