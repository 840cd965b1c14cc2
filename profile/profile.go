package profile

// Profiler configures runtime profiling.
//
// Mode selects the profile to record, Path the output directory, and Quiet
// suppresses the start/stop messages written to stderr.
type Profiler struct {
	Mode  string
	Path  string
	Quiet bool
}

// Control stops a running profiler session.
type Control interface{ Stop() }

// Start begins recording the configured profile and returns a [Control] for
// stopping it.
//
// If the binary was built without the pprof tag, or Mode is empty or
// unrecognized, Start returns a no-op implementation.
// Both Start and Stop are always safely callable.
func (p Profiler) Start() Control {
	if p.Mode == "" {
		return ignore{}
	}

	return start(p.Mode, p.Path, p.Quiet)
}

type ignore struct{}

func (ignore) Stop() {}
