// Package proc owns external player process lifecycles: spawning,
// reaping, and delivering signals to a process's full descendant tree.
//
// The player binaries do their real decoding work in children they spawn
// after launch, so pausing, resuming, or killing only the parent leaves
// the actual workload running. Every tree operation therefore
// re-enumerates the live descendant set at call time.
package proc

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"syscall"

	"github.com/shirou/gopsutil/v3/process"
)

// Session is a spawned player process. Done() is closed once the process
// has exited and been reaped; the exit status is deliberately not
// surfaced, since a crashed player is treated the same as a finished one.
type Session struct {
	cmd  *exec.Cmd
	done chan struct{}
}

// Start launches the given argv as an external process and begins reaping
// it in the background. It returns as soon as the process has started.
func Start(argv []string) (*Session, error) {
	if len(argv) == 0 {
		return nil, fmt.Errorf("empty argv")
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %s: %w", argv[0], err)
	}

	s := &Session{
		cmd:  cmd,
		done: make(chan struct{}),
	}

	go func() {
		// Exit errors are expected whenever the tree is killed.
		if err := cmd.Wait(); err != nil {
			log.Printf("[proc] pid %d exited: %v", s.Pid(), err)
		}
		close(s.done)
	}()

	return s, nil
}

// Pid returns the process ID of the session's root process.
func (s *Session) Pid() int {
	return s.cmd.Process.Pid
}

// Done is closed when the process has exited and been reaped.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// TreeController signals process trees via the OS.
type TreeController struct{}

// PauseTree delivers SIGSTOP to every live descendant of pid. The root
// itself is left running; its children carry the actual workload.
func (TreeController) PauseTree(pid int) {
	signalDescendants(pid, syscall.SIGSTOP)
}

// ResumeTree delivers SIGCONT to every live descendant of pid.
func (TreeController) ResumeTree(pid int) {
	signalDescendants(pid, syscall.SIGCONT)
}

// KillTree delivers SIGTERM to every live descendant of pid, then kills
// the root itself. Used only when abandoning playback; natural
// end-of-video never needs it.
func (TreeController) KillTree(pid int) {
	signalDescendants(pid, syscall.SIGTERM)

	p, err := process.NewProcess(int32(pid))
	if err != nil {
		log.Printf("[proc] no such process %d", pid)
		return
	}
	if err := p.Kill(); err != nil {
		log.Printf("[proc] kill pid %d: %v", pid, err)
	}
}

// signalDescendants sends sig to every descendant of pid, enumerated
// recursively at call time. A PID that has already exited is logged and
// skipped; processes vanish between enumeration and delivery all the
// time, and that is never an error worth surfacing.
func signalDescendants(pid int, sig syscall.Signal) {
	parent, err := process.NewProcess(int32(pid))
	if err != nil {
		log.Printf("[proc] no such process %d", pid)
		return
	}

	for _, child := range descendants(parent) {
		log.Printf("[proc] sending %s to pid %d", sig, child.Pid)
		if err := child.SendSignal(sig); err != nil {
			log.Printf("[proc] signal %s to pid %d: %v", sig, child.Pid, err)
		}
	}
}

// descendants walks the process tree below p depth-first.
func descendants(p *process.Process) []*process.Process {
	children, err := p.Children()
	if err != nil {
		// Includes the no-children case.
		return nil
	}

	var all []*process.Process
	for _, c := range children {
		all = append(all, c)
		all = append(all, descendants(c)...)
	}
	return all
}
