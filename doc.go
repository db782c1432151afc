// Package otty drives a PTY-attached child process through a VT
// emulator and exposes it to an embedder as a request/event channel
// pair instead of direct method calls.
//
// # Quick Start
//
// Open a local shell and poll it in a loop:
//
//	runtime, requests, events, err := otty.Open(
//	    ptysession.LocalSpec{Program: "/bin/bash"},
//	    24, 80,
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer runtime.Close()
//
//	for runtime.IsRunning() {
//	    runtime.PollOnce(50 * time.Millisecond)
//	    select {
//	    case ev := <-events:
//	        switch e := ev.(type) {
//	        case otty.Frame:
//	            render(e.Snapshot)
//	        case otty.ChildExit:
//	            return
//	        }
//	    default:
//	    }
//	}
//
// # Architecture
//
// The package is organized around these types:
//
//   - [Runtime]: owns the child's lifecycle and the poll loop
//   - [Request]/[Event]: the only way to reach into or hear from a
//     running Runtime
//   - the internal escape/vtparser packages: turn PTY bytes into VT
//     operations
//   - the internal surface package: the emulator's rendering state
//     (grid, cursor, modes, selection, semantic blocks)
//   - the internal ptysession package: the narrow PTY contract, local
//     or over SSH
//
// # Requests and Events
//
// An embedder sends [Request] values on the channel Open returns and
// receives [Event] values on the other. Requests are applied in
// arrival order; events are delivered in generation order, with at
// most one [Frame] per poll iteration.
//
// # Poll Loop
//
// [Runtime.PollOnce] drives a single iteration: it reads any PTY
// output waiting, applies one queued request plus a bounded drain of
// any more, checks for child exit, force-flushes a synchronized-update
// block that has sat open past its timeout, and emits a [Frame] if
// anything changed. [Runtime.Run] repeats this with a [Client]
// callback until the child exits or a [Shutdown] request arrives.
//
// # Thread Safety
//
// A Runtime is driven by exactly one goroutine - whichever calls
// PollOnce or Run. The request and event channels are the only safe
// way to reach it from elsewhere; nothing else about a Runtime, and
// nothing about the Snapshot a Frame carries, should be mutated
// concurrently.
package otty
