package utils

import (
	"bufio"
	"os"
	"time"
)

// WaitAsync is closed after d, or once Enter is pressed when d is zero.
func WaitAsync(d time.Duration) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		if d > 0 {
			time.Sleep(d)
		} else {
			bufio.NewReader(os.Stdin).ReadBytes('\n')
		}
		close(done)
	}()
	return done
}
