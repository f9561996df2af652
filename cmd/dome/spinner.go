package main

import (
	"fmt"
	"os"
	"time"
)

type spinner struct {
	stopChan chan struct{}
	done     chan struct{}
}

func newSpinner() *spinner {
	return &spinner{}
}

// Start process
func (s *spinner) start(message string) {
	s.stopChan = make(chan struct{}, 1)
	s.done = make(chan struct{})

	go func() {
		defer close(s.done)
		for {
			for _, r := range `-\|/` {
				select {
				case <-s.stopChan:
					fmt.Fprint(os.Stderr, "\r\x1b[K")
					return
				default:
					fmt.Fprintf(os.Stderr, "\r%s%s %c%s", message, "\x1b[92m", r, "\x1b[39m")
					time.Sleep(time.Millisecond * 100)
				}
			}
		}
	}()
}

// End process
func (s *spinner) stop() {
	s.stopChan <- struct{}{}
	<-s.done
}
