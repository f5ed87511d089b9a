// Package metrics collects operational counters from the lvnav engines.
//
// Engines accept a Recorder through their WithMetrics option. Noop is the default;
// Basic keeps in-memory atomic totals; Prometheus exports counters and histograms
// through a prometheus.Registerer.
package metrics

import (
	"sync/atomic"
	"time"
)

// Recorder receives one call per completed engine operation.
type Recorder interface {
	// RecordSearch is called after every A* search.
	// expanded is the number of node expansions performed, found reports success,
	// err is non-nil only for invalid input.
	RecordSearch(d time.Duration, expanded int, found bool, err error)

	// RecordBuild is called after every distance-field build.
	// sources is the number of source cells, parallel reports whether the
	// fork-join path was taken.
	RecordBuild(d time.Duration, sources int, parallel bool, err error)
}

// Noop discards everything.
type Noop struct{}

func (Noop) RecordSearch(time.Duration, int, bool, error) {}
func (Noop) RecordBuild(time.Duration, int, bool, error)  {}

// Basic accumulates totals with atomic counters. The zero value is ready to use
// and safe for concurrent callers.
type Basic struct {
	Searches        atomic.Int64
	SearchesFound   atomic.Int64
	SearchErrors    atomic.Int64
	Expansions      atomic.Int64
	SearchNanos     atomic.Int64
	Builds          atomic.Int64
	ParallelBuilds  atomic.Int64
	BuildErrors     atomic.Int64
	SourcesFlooded  atomic.Int64
	BuildTotalNanos atomic.Int64
}

// RecordSearch implements Recorder.
func (b *Basic) RecordSearch(d time.Duration, expanded int, found bool, err error) {
	b.Searches.Add(1)
	b.Expansions.Add(int64(expanded))
	b.SearchNanos.Add(d.Nanoseconds())
	if found {
		b.SearchesFound.Add(1)
	}
	if err != nil {
		b.SearchErrors.Add(1)
	}
}

// RecordBuild implements Recorder.
func (b *Basic) RecordBuild(d time.Duration, sources int, parallel bool, err error) {
	b.Builds.Add(1)
	b.SourcesFlooded.Add(int64(sources))
	b.BuildTotalNanos.Add(d.Nanoseconds())
	if parallel {
		b.ParallelBuilds.Add(1)
	}
	if err != nil {
		b.BuildErrors.Add(1)
	}
}

// Snapshot is a point-in-time copy of Basic's counters.
type Snapshot struct {
	Searches, SearchesFound, SearchErrors, Expansions int64
	Builds, ParallelBuilds, BuildErrors, Sources      int64
	AvgSearch, AvgBuild                               time.Duration
}

// Snapshot reads all counters. Averages are zero when nothing was recorded.
func (b *Basic) Snapshot() Snapshot {
	s := Snapshot{
		Searches:       b.Searches.Load(),
		SearchesFound:  b.SearchesFound.Load(),
		SearchErrors:   b.SearchErrors.Load(),
		Expansions:     b.Expansions.Load(),
		Builds:         b.Builds.Load(),
		ParallelBuilds: b.ParallelBuilds.Load(),
		BuildErrors:    b.BuildErrors.Load(),
		Sources:        b.SourcesFlooded.Load(),
	}
	if s.Searches > 0 {
		s.AvgSearch = time.Duration(b.SearchNanos.Load() / s.Searches)
	}
	if s.Builds > 0 {
		s.AvgBuild = time.Duration(b.BuildTotalNanos.Load() / s.Builds)
	}

	return s
}
