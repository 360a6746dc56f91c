package player

import (
	"fmt"
	"log"
	"math/rand"
	"time"
)

// emptyBackoff is how long the selection loop waits before reselecting
// after an empty library or an empty show, so a misconfigured data
// directory produces diagnostics instead of a tight spin.
const emptyBackoff = 2 * time.Second

// Run is the show selection loop. It enumerates shows fresh each
// iteration, honours a one-shot starting show, avoids picking the same
// show twice in a row when there is a choice, and plays the pick.
//
// It returns nil after Stop(), or an error on a fatal condition: an
// unknown requested show, an unreadable data directory, or a failed
// player spawn. Fatal errors exit the service; restarting is the
// supervisor's job.
func (p *Player) Run(startShow string) error {
	for {
		select {
		case <-p.stopCh:
			return nil
		default:
		}

		shows, err := p.lib.Shows()
		if err != nil {
			return err
		}

		var show string
		switch {
		case startShow != "":
			if !contains(shows, startShow) {
				return fmt.Errorf("show %q was requested to start playing, but is not one of the available shows: %v", startShow, shows)
			}
			show = startShow
			startShow = ""

		case len(shows) == 0:
			log.Printf("[player] no shows under %s; waiting for content", p.lib.Root())
			if !p.backoff() {
				return nil
			}
			continue

		default:
			show = pickShow(shows, p.lastShow)
		}

		log.Printf("[player] playing show... %s!", show)

		videos, err := p.lib.Videos(show)
		if err != nil {
			return err
		}
		p.lastShow = show

		outcome, err := p.PlayShow(videos)
		if err != nil {
			return err
		}

		switch outcome {
		case Stopped:
			return nil
		case ShowFinished:
			if len(videos) == 0 {
				// Reselection may land on the same degenerate show;
				// the backoff keeps that from becoming a spin.
				log.Printf("[player] show %q has no videos; check the library", show)
				if !p.backoff() {
					return nil
				}
			}
		}
	}
}

// backoff sleeps for emptyBackoff, interruptible by Stop. It reports
// false when the service is stopping.
func (p *Player) backoff() bool {
	select {
	case <-p.stopCh:
		return false
	case <-time.After(emptyBackoff):
		return true
	}
}

// pickShow selects the next show uniformly at random, excluding the
// previous pick whenever more than one show exists. With a single show
// the exclusion has no effect and the show trivially repeats.
func pickShow(shows []string, last string) string {
	candidates := shows
	if last != "" && len(shows) > 1 {
		candidates = make([]string, 0, len(shows)-1)
		for _, s := range shows {
			if s != last {
				candidates = append(candidates, s)
			}
		}
	}
	return candidates[rand.Intn(len(candidates))]
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
