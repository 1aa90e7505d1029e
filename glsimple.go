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

package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/glsimple/glsimple/gles/native"
	"github.com/glsimple/glsimple/interrupt"
	"github.com/glsimple/glsimple/logger"
	"github.com/glsimple/glsimple/modalflag"
	"github.com/glsimple/glsimple/pipeline"
	"github.com/glsimple/glsimple/platform"
	"github.com/glsimple/glsimple/renderer"
	"github.com/glsimple/glsimple/statsview"
	"github.com/glsimple/glsimple/version"
)

// exit values returned by launch().
const (
	exitOK        = 0
	exitArguments = 10
	exitBootstrap = 20
	exitPipeline  = 255
)

// number of log entries to show when exiting with an error.
const errorTail = 10

func init() {
	// SDL and GL require that all calls are made from the main thread
	runtime.LockOSThread()
}

func main() {
	os.Exit(launch(os.Stdout, os.Args[1:]))
}

// options set on the command line.
type options struct {
	frames int
	echo   bool
	stats  bool
}

func launch(output io.Writer, args []string) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AdditionalHelp("RUN opens a window and draws a textured quad until interrupted with ctrl-c.\nINFO prints the negotiated context and driver strings and exits.")

	var opts options
	frames := md.AddInt("frames", 0, "stop after number of frames (0 for no limit)")
	echo := md.AddBool("log", false, "echo log to stdout")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	md.AddSubModes("RUN", "INFO")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitArguments
	}

	if len(md.RemainingArgs()) > 0 {
		fmt.Fprintf(output, "* error: unexpected arguments: %s\n", strings.Join(md.RemainingArgs(), " "))
		return exitArguments
	}

	opts.frames = *frames
	opts.echo = *echo
	opts.stats = stats != nil && *stats

	if opts.echo {
		logger.SetEcho(output)
	}

	logger.Logf(logger.Allow, "glsimple", "%s", version.String())

	var exit int

	switch md.Mode() {
	case "RUN":
		exit, err = run(output, opts)
	case "INFO":
		exit, err = info(output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %v\n", md, err)
		if !opts.echo {
			logger.Tail(output, errorTail)
		}
	}

	return exit
}

func run(output io.Writer, opts options) (int, error) {
	if opts.stats {
		statsview.Launch(output)
	}

	running := interrupt.NewFlag()
	cancel := interrupt.Watch(running)
	defer cancel()

	plt, err := platform.NewPlatform(platform.DefaultConfig())
	if err != nil {
		return exitBootstrap, err
	}
	defer plt.Destroy()

	api, err := native.New()
	if err != nil {
		return exitBootstrap, err
	}
	logger.Logf(logger.Allow, "glsimple", "%s", api)

	st, err := renderer.NewState(api, pipeline.QuadSources())
	if err != nil {
		return exitPipeline, err
	}
	defer st.Destroy()

	n := st.Run(running, plt, opts.frames)
	logger.Logf(logger.Allow, "glsimple", "stopped after %d frames", n)

	return exitOK, nil
}

// info creates the window and rendering context, prints what was negotiated
// and exits.
func info(output io.Writer) (int, error) {
	plt, err := platform.NewPlatform(platform.DefaultConfig())
	if err != nil {
		return exitBootstrap, err
	}
	defer plt.Destroy()

	api, err := native.New()
	if err != nil {
		return exitBootstrap, err
	}

	fmt.Fprintln(output, version.String())
	fmt.Fprintf(output, "window: %s\n", plt)
	fmt.Fprintf(output, "vendor: %s\n", api.Vendor)
	fmt.Fprintf(output, "renderer: %s\n", api.Renderer)
	fmt.Fprintf(output, "version: %s\n", api.Version)
	fmt.Fprintf(output, "glsl: %s\n", api.GLSL)

	return exitOK, nil
}
