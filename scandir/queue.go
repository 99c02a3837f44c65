package scandir

import "github.com/PlakarLabs/go-scandir/objects"

// pumpResults decouples the worker's pace from the consumer's: items
// are buffered in an elastic in-memory queue so the worker never
// blocks on a slow or absent consumer. The memory cost of an
// unconsumed backlog is the caller's responsibility. FIFO order is
// preserved. The out channel is closed once in is closed and the
// backlog fully drained.
func pumpResults(in <-chan objects.Result, out chan<- objects.Result) {
	defer close(out)

	backlog := make([]objects.Result, 0)
	for in != nil || len(backlog) > 0 {
		if len(backlog) == 0 {
			result, ok := <-in
			if !ok {
				return
			}
			backlog = append(backlog, result)
			continue
		}

		select {
		case result, ok := <-in:
			if !ok {
				in = nil
				continue
			}
			backlog = append(backlog, result)
		case out <- backlog[0]:
			backlog = backlog[1:]
		}
	}
}
