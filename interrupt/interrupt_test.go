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

package interrupt

import (
	"os"
	"sync"
	"testing"
	"time"

	"github.com/glsimple/glsimple/test"
)

func TestFlag(t *testing.T) {
	f := NewFlag()
	test.ExpectSuccess(t, f.Running())

	test.ExpectSuccess(t, f.Stop())
	test.ExpectFailure(t, f.Running())

	// stopping again has no further effect
	test.ExpectFailure(t, f.Stop())
	test.ExpectFailure(t, f.Running())
}

func TestWatchSignal(t *testing.T) {
	f := NewFlag()
	sig := make(chan os.Signal, 2)
	done := make(chan struct{})

	var resets int
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		watch(f, sig, done, func() { resets++ })
	}()

	// two signals before the handler has a chance to run. only the first is
	// handled
	sig <- os.Interrupt
	sig <- os.Interrupt
	wg.Wait()

	test.ExpectFailure(t, f.Running())
	test.ExpectEquality(t, resets, 1)
	test.ExpectEquality(t, len(sig), 1)
}

func TestWatchDone(t *testing.T) {
	f := NewFlag()
	sig := make(chan os.Signal, 1)
	done := make(chan struct{})

	var resets int
	finished := make(chan struct{})
	go func() {
		watch(f, sig, done, func() { resets++ })
		close(finished)
	}()

	close(done)

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatalf("watch did not return after done was closed")
	}

	test.ExpectSuccess(t, f.Running())
	test.ExpectEquality(t, resets, 0)
}

func TestWatchCancel(t *testing.T) {
	f := NewFlag()
	cancel := Watch(f)

	// cancelling more than once is safe
	cancel()
	cancel()

	test.ExpectSuccess(t, f.Running())
}
