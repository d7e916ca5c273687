/*
Package observability provides tools for monitoring the game.

It includes lifecycle hooks for auditing transitions (debug logging, hook
composition) and Prometheus counters fed by those same hooks, served over a
small chi router alongside a health check.
*/
package observability
