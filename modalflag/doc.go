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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes and
// allows different flags for each mode.
//
// At it's simplest it can be used as a replacement for the flag package, with
// one difference. Whereas with flag.FlagSet you call Parse() with the array of
// strings as the only argument, with modalflag you first call NewArgs() with
// the array of arguments and then Parse() with no arguments:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	frames := md.AddInt("frames", 0, "number of frames to draw")
//	p, err := md.Parse()
//
// The reason for the difference is to allow effective parsing of modes. A mode
// is a special command line argument that puts the program into a different
// mode of operation. Modes are added with AddSubModes(). The first mode in the
// list is the default mode and is selected if no mode is specified on the
// command line.
//
//	md.AddSubModes("RUN", "INFO")
//	p, err := md.Parse()
//	switch md.Mode() {
//	case "RUN":
//		...
//	case "INFO":
//		...
//	}
//
// Sub-mode comparisons are case insensitive.
//
// After a mode has been selected a call to NewMode() prepares the Modes
// instance for the flags of that mode. The next call to Parse() continues from
// the first argument after the mode selector.
//
// The result of Parse() should be checked for ParseHelp and ParseError. Help
// messages are printed automatically to the Output writer.
package modalflag
