package profiler

import (
	"fmt"
	"io"
	"sort"
	"sync"
	"time"
)

type profiler struct {
	muProfiler sync.Mutex

	events            map[string]bool
	eventDurations    map[string]time.Duration
	eventDurationsMin map[string]time.Duration
	eventDurationsMax map[string]time.Duration

	eventCounts map[string]uint64
}

var profilerSingleton *profiler

func init() {
	profilerSingleton = &profiler{
		events:            make(map[string]bool),
		eventDurations:    make(map[string]time.Duration),
		eventDurationsMin: make(map[string]time.Duration),
		eventDurationsMax: make(map[string]time.Duration),
		eventCounts:       make(map[string]uint64),
	}
}

func RecordEvent(event string, duration time.Duration) {
	profilerSingleton.muProfiler.Lock()
	defer profilerSingleton.muProfiler.Unlock()

	if _, exists := profilerSingleton.events[event]; !exists {
		profilerSingleton.events[event] = true
		profilerSingleton.eventDurations[event] = 0
		profilerSingleton.eventDurationsMin[event] = duration
		profilerSingleton.eventDurationsMax[event] = duration
		profilerSingleton.eventCounts[event] = 0
	}

	profilerSingleton.eventDurations[event] += duration
	if duration < profilerSingleton.eventDurationsMin[event] {
		profilerSingleton.eventDurationsMin[event] = duration
	}
	if duration > profilerSingleton.eventDurationsMax[event] {
		profilerSingleton.eventDurationsMax[event] = duration
	}
	profilerSingleton.eventCounts[event]++
}

// Display writes per-event counts and min/avg/max durations, sorted by
// event name.
func Display(w io.Writer) {
	profilerSingleton.muProfiler.Lock()
	defer profilerSingleton.muProfiler.Unlock()

	names := make([]string, 0, len(profilerSingleton.events))
	for event := range profilerSingleton.events {
		names = append(names, event)
	}
	sort.Strings(names)

	for _, event := range names {
		count := profilerSingleton.eventCounts[event]
		total := profilerSingleton.eventDurations[event]
		avg := time.Duration(0)
		if count > 0 {
			avg = total / time.Duration(count)
		}
		fmt.Fprintf(w, "%s: count=%d, min=%s, avg=%s, max=%s, total=%s\n",
			event,
			count,
			profilerSingleton.eventDurationsMin[event],
			avg,
			profilerSingleton.eventDurationsMax[event],
			total)
	}
}
