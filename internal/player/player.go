// Package player runs the appliance's playback: an endless show
// selection loop driving a per-show playback loop, interrupted by
// classified touch commands and coordinated with the idle static
// process. All process control goes through small capability interfaces
// so the loops are tested against fakes instead of real processes.
package player

import (
	"faketv/internal/gesture"
	"faketv/internal/library"
	"faketv/internal/proc"
)

// Process is a running external player process.
type Process interface {
	Pid() int
	Done() <-chan struct{}
}

// Spawner launches external player processes.
type Spawner interface {
	Start(argv []string) (Process, error)
}

// TreeSignaller delivers signals to a process's live descendant tree.
// Implementations absorb vanished-PID conditions; none of these can
// fail in a way the caller should act on.
type TreeSignaller interface {
	PauseTree(pid int)
	ResumeTree(pid int)
	KillTree(pid int)
}

// ProcSpawner is the production Spawner backed by internal/proc.
type ProcSpawner struct{}

func (ProcSpawner) Start(argv []string) (Process, error) {
	s, err := proc.Start(argv)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Outcome reports how a show's playback ended.
type Outcome int

const (
	// ShowFinished: the video sequence ran out (or was empty).
	ShowFinished Outcome = iota
	// ShowChanged: a ChangeShow command abandoned the show.
	ShowChanged
	// Stopped: the service is shutting down.
	Stopped
)

// Player owns show-level state and the playback loop. It is the sole
// consumer of the command queue and the only writer to the static
// process; no locking is needed beyond the channels themselves.
type Player struct {
	lib      *library.Library
	spawner  Spawner
	tree     TreeSignaller
	commands <-chan gesture.Command
	static   *Static
	playCmd  []string

	lastShow string
	stopCh   chan struct{}
}

// New creates a Player. playCmd is the player argv prefix; the video
// path is appended per spawn. static may be nil when no idle video
// exists.
func New(lib *library.Library, spawner Spawner, tree TreeSignaller, commands <-chan gesture.Command, static *Static, playCmd []string) *Player {
	return &Player{
		lib:      lib,
		spawner:  spawner,
		tree:     tree,
		commands: commands,
		static:   static,
		playCmd:  playCmd,
		stopCh:   make(chan struct{}),
	}
}

// Stop makes Run wind down: the active player tree is killed and Run
// returns once the current wait cycle observes the stop.
func (p *Player) Stop() {
	select {
	case <-p.stopCh:
	default:
		close(p.stopCh)
	}
}
