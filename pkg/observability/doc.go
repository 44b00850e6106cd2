/*
Package observability exposes session activity as Prometheus metrics.

Metrics implements domain.LifecycleHooks, so it plugs into an Application
next to (or composed with) logging hooks. Router serves the registry over
HTTP for scraping.
*/
package observability
