//go:build linux

package partask

import "golang.org/x/sys/unix"

// cpuQuota reports how many CPUs this process's scheduler affinity mask
// allows it to run on. Under a cgroup CPU quota narrower than the host's
// core count, this can be lower than runtime.GOMAXPROCS — workers uses the
// tighter of the two so a node's task-parallel fan-out (spec §5) never
// oversubscribes a container's actual allotment. ok is false if the kernel
// call fails, e.g. under a sandboxed/restricted environment.
func cpuQuota() (n int, ok bool) {
	var set unix.CPUSet
	if err := unix.SchedGetaffinity(0, &set); err != nil {
		return 0, false
	}
	return set.Count(), true
}
