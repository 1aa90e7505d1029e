// This file is part of glsimple.
//
// glsimple is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// glsimple is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with glsimple.  If not, see <https://www.gnu.org/licenses/>.

// Package interrupt connects the process interrupt signal to the render loop.
//
// The Flag type is the only state shared between the signal handler and the
// render loop. The loop polls Running() once per frame and stops when it
// returns false.
//
// The handler installed by Watch() is single-shot. After the first interrupt
// the default handling is restored, meaning that a second interrupt will
// terminate the process immediately. This is useful if the render loop has
// become stuck in the driver.
package interrupt

import (
	"os"
	"os/signal"
	"sync/atomic"

	"github.com/glsimple/glsimple/logger"
)

// Flag indicates whether the render loop should continue.
type Flag struct {
	running atomic.Bool
}

// NewFlag returns a Flag in the running state.
func NewFlag() *Flag {
	f := &Flag{}
	f.running.Store(true)
	return f
}

// Running returns true until Stop() has been called.
func (f *Flag) Running() bool {
	return f.running.Load()
}

// Stop clears the flag. Returns true if the flag was running before the call.
// Calling Stop() more than once is safe.
func (f *Flag) Stop() bool {
	return f.running.Swap(false)
}

// Watch installs a single-shot interrupt handler that stops the flag. The
// returned function removes the handler if it has not yet fired. It does not
// block.
func Watch(f *Flag) func() {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)

	done := make(chan struct{})

	go watch(f, sig, done, func() {
		signal.Reset(os.Interrupt)
	})

	return func() {
		signal.Stop(sig)
		select {
		case <-done:
		default:
			close(done)
		}
	}
}

// watch waits for either a signal or for the done channel to close. on
// receipt of a signal the reset function is called before the flag is
// stopped.
func watch(f *Flag, sig <-chan os.Signal, done chan struct{}, reset func()) {
	select {
	case s := <-sig:
		reset()
		if f.Stop() {
			logger.Logf(logger.Allow, "interrupt", "%v: stopping", s)
		}
	case <-done:
	}
}
