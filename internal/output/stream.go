// internal/output/stream.go
package output

import (
	"bufio"
	"io"
	"sync"
)

// Reuse a 64 KiB buffered writer across streaming writers to avoid
// per-writer mallocs.
var bwPool = sync.Pool{
	New: func() any {
		return bufio.NewWriterSize(io.Discard, 64<<10)
	},
}

// Start spins up a writer goroutine for values of type T.
//   - write: fn to serialize one value onto the buffered writer
//
// Broken-pipe errors are suppressed so downstream consumers (like `head`)
// can close early; the goroutine stops writing once the pipe breaks and
// reports success. Callers that keep feeding the channel after the error
// channel fires must guard their sends.
func Start[T any](out io.Writer, bufSize int, write func(*bufio.Writer, T) error) (chan<- T, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan T, bufSize)
	done := make(chan error, 1)

	go func() {
		bw := bwPool.Get().(*bufio.Writer)
		// Rebind to the actual output while keeping the pooled buffer.
		bw.Reset(out)
		// Always put back to pool and drop references to 'out'.
		defer func() {
			bw.Reset(io.Discard)
			bwPool.Put(bw)
		}()

		for v := range in {
			if err := write(bw, v); err != nil {
				if IsBrokenPipe(err) {
					err = nil
				}
				done <- err
				return
			}
		}
		if err := bw.Flush(); err != nil && !IsBrokenPipe(err) {
			done <- err
			return
		}
		done <- nil
	}()

	return in, done
}
