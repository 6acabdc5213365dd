// Package overlay implements the overlay controller: a single event queue
// fed by timers, hotkeys and mouse input, a tagged UI state with a pure
// transition function, and the label text built from metric samples.
//
// All handling happens on whichever goroutine drains the queue, either
// Run or repeated calls to Pump from a frame loop. Producers only Post.
package overlay
