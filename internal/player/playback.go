package player

import (
	"fmt"
	"log"
	"math/rand"

	"faketv/internal/gesture"
)

// PlayShow plays the given videos in a freshly shuffled order, one
// player process at a time. For each video it suspends the static loop,
// spawns the player, and then waits on whichever comes first: natural
// process exit, a command from the touchscreen, or a service stop.
//
// A command always kills the full player process tree before taking
// effect, so no decoder workers outlive an interruption. Exit status is
// never inspected: a crashed player advances the sequence exactly like
// a finished one.
func (p *Player) PlayShow(videos []string) (Outcome, error) {
	if len(videos) == 0 {
		log.Printf("[player] no videos to play")
		return ShowFinished, nil
	}

	shuffled := make([]string, len(videos))
	copy(shuffled, videos)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	for _, video := range shuffled {
		log.Printf("[player] playing video %s", video)
		p.static.Pause()

		argv := append(append([]string{}, p.playCmd...), video)
		sess, err := p.spawner.Start(argv)
		if err != nil {
			return ShowFinished, fmt.Errorf("spawn player: %w", err)
		}

		select {
		case <-sess.Done():
			// Natural end (or player crash) — next video.

		case cmd := <-p.commands:
			log.Printf("[player] received a %s", cmd)
			p.static.Resume()
			p.tree.KillTree(sess.Pid())
			<-sess.Done()
			if cmd == gesture.ChangeShow {
				return ShowChanged, nil
			}
			// Skip — next video in the sequence.

		case <-p.stopCh:
			p.tree.KillTree(sess.Pid())
			<-sess.Done()
			return Stopped, nil
		}
	}

	return ShowFinished, nil
}
