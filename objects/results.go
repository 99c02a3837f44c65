package objects

// Results accumulates everything a scan produced: the full ordered
// stream of results plus the error records extracted on the side.
type Results struct {
	Results []Result
	Errors  []ErrorRecord
}

func NewResults() *Results {
	return &Results{
		Results: make([]Result, 0),
		Errors:  make([]ErrorRecord, 0),
	}
}

func (r *Results) Append(result Result) {
	r.Results = append(r.Results, result)
	if record, ok := result.(ErrorRecord); ok {
		r.Errors = append(r.Errors, record)
	}
}

type Statistics struct {
	Files       uint64
	Directories uint64
	Symlinks    uint64
	Errors      uint64
	Size        uint64
}

func (r *Results) Statistics() Statistics {
	var stats Statistics
	for _, result := range r.Results {
		switch result := result.(type) {
		case Entry:
			stats.update(result)
		case EntryExt:
			stats.update(result.Entry)
		case ErrorRecord:
			stats.Errors++
		default:
			panic("unexpected result type")
		}
	}
	return stats
}

func (stats *Statistics) update(entry Entry) {
	switch {
	case entry.IsSymlink:
		stats.Symlinks++
	case entry.IsDir:
		stats.Directories++
	case entry.IsFile:
		stats.Files++
	}
	stats.Size += entry.Size
}
