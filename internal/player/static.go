package player

import (
	"log"
)

// Static is the long-lived looping idle-video process, shown between
// real videos. It is suspended while a video plays and resumed when a
// command interrupts playback; the suspension targets the process's
// descendants, where the player does its actual decoding.
//
// A nil *Static is valid and turns every operation into a no-op, for
// libraries without an idle video.
type Static struct {
	proc Process
	tree TreeSignaller
}

// StartStatic spawns the looping idle player for the given video.
// argv is the static player prefix; the path is appended.
func StartStatic(spawner Spawner, tree TreeSignaller, argv []string, path string) (*Static, error) {
	proc, err := spawner.Start(append(append([]string{}, argv...), path))
	if err != nil {
		return nil, err
	}
	log.Printf("[static] idle loop started (pid %d): %s", proc.Pid(), path)
	return &Static{proc: proc, tree: tree}, nil
}

// Pause suspends the idle loop's worker processes.
func (s *Static) Pause() {
	if s == nil {
		return
	}
	s.tree.PauseTree(s.proc.Pid())
}

// Resume continues the idle loop's worker processes.
func (s *Static) Resume() {
	if s == nil {
		return
	}
	s.tree.ResumeTree(s.proc.Pid())
}

// Kill terminates the idle loop entirely. Only used at shutdown.
func (s *Static) Kill() {
	if s == nil {
		return
	}
	s.tree.KillTree(s.proc.Pid())
}
