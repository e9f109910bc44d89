//go:build !linux

package partask

// cpuQuota has no portable equivalent outside Linux's sched_getaffinity;
// workers falls back to runtime.GOMAXPROCS alone.
func cpuQuota() (n int, ok bool) { return 0, false }
