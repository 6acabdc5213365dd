// Package logging provides the structured logging facade used across the
// overlay. It hides zerolog behind a small interface so components can be
// handed a logger and tests can capture output in a buffer.
package logging
