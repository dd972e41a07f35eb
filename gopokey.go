// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopokey/digest"
	"github.com/jetsetilly/gopokey/gui"
	"github.com/jetsetilly/gopokey/gui/otoaudio"
	"github.com/jetsetilly/gopokey/gui/paudio"
	"github.com/jetsetilly/gopokey/gui/sdlaudio"
	"github.com/jetsetilly/gopokey/hardware"
	"github.com/jetsetilly/gopokey/hardware/pokey/filter"
	"github.com/jetsetilly/gopokey/hardware/preferences"
	"github.com/jetsetilly/gopokey/logger"
	"github.com/jetsetilly/gopokey/modalflag"
	"github.com/jetsetilly/gopokey/paths"
	"github.com/jetsetilly/gopokey/performance"
	"github.com/jetsetilly/gopokey/playmode"
	"github.com/jetsetilly/gopokey/prefs"
	"github.com/jetsetilly/gopokey/recorder"
	"github.com/jetsetilly/gopokey/script"
	"github.com/jetsetilly/gopokey/statsview"
	"github.com/jetsetilly/gopokey/tracker"
	"github.com/jetsetilly/gopokey/version"
	"github.com/jetsetilly/gopokey/wavwriter"
	"golang.org/x/term"
)

// the output rate used when no rate is specified on the command line
const defaultRate = 48000

// how long a Lua score is allowed to run before it is stopped
const scoreTimeout = 10 * time.Second

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when the mode has its own
	// handler. for example, the playmode package ends playback gracefully on
	// ctrl-c
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args any
}

// communication between the main() function and the launch() function
type mainSync struct {
	state chan stateRequest
}

// #mainthread
func main() {
	sync := &mainSync{
		state: make(chan stateRequest),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// #ctrlc default handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	go launch(sync, os.Args[1:])

	done := false
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Reset(os.Interrupt)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}
		}
	}

	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate when to quit.
func launch(sync *mainSync, args []string) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)

	cmdlinePrefs := md.AddString("prefs", "", "preferences for this session. format is \"key::value; key::value\"")
	log := md.AddBool("log", false, "echo log to stderr")
	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	md.AddSubModes("PLAY", "RENDER", "TRACK", "EXPORT", "DIGEST", "PERFORMANCE", "VERSION")
	md.DescribeSubMode("PLAY", "play capture file or Lua score through audio device")
	md.DescribeSubMode("RENDER", "render capture file or Lua score to WAV file")
	md.DescribeSubMode("TRACK", "show register history of capture file or Lua score")
	md.DescribeSubMode("EXPORT", "convert capture file or Lua score to SAP type R file")
	md.DescribeSubMode("DIGEST", "print SHA-1 hash of rendered audio")
	md.DescribeSubMode("PERFORMANCE", "measure rendering speed")
	md.DescribeSubMode("VERSION", "print version information")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	if *cmdlinePrefs != "" {
		prefs.PushCommandLineStack(*cmdlinePrefs)
	}

	if *log {
		if term.IsTerminal(int(os.Stderr.Fd())) {
			logger.SetEcho(logger.NewColorizer(os.Stderr), true)
		} else {
			logger.SetEcho(os.Stderr, true)
		}
	}

	if stats != nil && *stats {
		statsview.Launch(os.Stdout)
	}

	switch md.Mode() {
	case "PLAY":
		err = play(md, sync, false)
	case "TRACK":
		err = track(md, sync)
	case "RENDER":
		err = render(md)
	case "EXPORT":
		err = export(md)
	case "DIGEST":
		err = hash(md)
	case "PERFORMANCE":
		err = perform(md)
	case "VERSION":
		err = showVersion(md)
	}

	if *cmdlinePrefs != "" {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			fmt.Printf("! unused preferences: %s\n", unused)
		}
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md, err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// load a capture file or a Lua score
func load(filename string, rate int) (*recorder.Playback, error) {
	if script.IsScore(filename) {
		ctx, cancel := context.WithTimeout(context.Background(), scoreTimeout)
		defer cancel()
		sc, err := script.LoadScore(ctx, filename, rate)
		if err != nil {
			return nil, err
		}
		return sc.Playback(), nil
	}
	return recorder.NewPlayback(filename)
}

// create the engine and load the file named by the single remaining argument
func prepare(md *modalflag.Modes, rate int) (*hardware.Engine, *preferences.Preferences, *recorder.Playback, error) {
	if err := md.ExpectArgs(1, 1); err != nil {
		return nil, nil, nil, err
	}

	prf, err := preferences.NewPreferences()
	if err != nil {
		return nil, nil, nil, err
	}

	eng, err := hardware.NewEngine(rate, prf)
	if err != nil {
		return nil, nil, nil, err
	}

	plb, err := load(md.GetArg(0), rate)
	if err != nil {
		return nil, nil, nil, err
	}

	if plb.Rate != 0 && plb.Rate != rate {
		logger.Logf(logger.Allow, "gopokey", "%s captured at %dHz. rendering at %dHz", plb.Name, plb.Rate, rate)
	}

	return eng, prf, plb, nil
}

func addRateFlag(md *modalflag.Modes) *int {
	var rates []string
	for _, r := range filter.SupportedRates() {
		rates = append(rates, fmt.Sprintf("%d", r))
	}
	return md.AddInt("rate", defaultRate, fmt.Sprintf("output rate: %s", strings.Join(rates, ", ")))
}

func newBackend(name string, rate int, stereo bool, src gui.Source) (gui.Backend, error) {
	switch name {
	case gui.BackendSDL:
		aud, err := sdlaudio.NewAudio(rate, stereo, src)
		if err != nil {
			return nil, err
		}
		return aud, nil
	case gui.BackendPortAudio:
		aud, err := paudio.NewAudio(rate, stereo, src)
		if err != nil {
			return nil, err
		}
		return aud, nil
	case gui.BackendOto:
		aud, err := otoaudio.NewAudio(rate, stereo, src)
		if err != nil {
			return nil, err
		}
		return aud, nil
	}
	return nil, fmt.Errorf(gui.UnsupportedBackend, name)
}

func play(md *modalflag.Modes, sync *mainSync, tracking bool) error {
	if !tracking {
		md.NewMode()
	}

	rate := addRateFlag(md)
	backend := md.AddChoice("backend", gui.BackendSDL, gui.Backends, fmt.Sprintf("audio backend: %s", strings.Join(gui.Backends, ", ")))
	loop := md.AddBool("loop", false, "repeat playback until stopped")
	mono := md.AddBool("mono", false, "force mono output")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	eng, prf, plb, err := prepare(md, *rate)
	if err != nil {
		return err
	}

	stereo := !*mono && recorder.Stereo(plb.Events())

	aud, err := newBackend(*backend, *rate, stereo, eng)
	if err != nil {
		return err
	}

	opts := playmode.Options{
		Loop:   *loop,
		Output: os.Stdout,
	}

	if tracking {
		opts.Tracker = tracker.NewTracker(eng.Design().ClockRate())
	}

	// keyboard control is only available if stdin is a terminal. the
	// playmode package handles ctrl-c itself in that case
	kb, err := playmode.NewKeyboard(os.Stdin)
	if err == nil {
		defer kb.Restore()
		opts.Keys = kb.Keys()
		opts.Output = playmode.NewRawWriter(os.Stdout)
		// log echo would corrupt the raw terminal output
		logger.SetEcho(nil, false)
		fmt.Fprintf(opts.Output, "%s\n", plb)
		fmt.Fprintf(opts.Output, "space: pause  r: restart  +/-: volume  m: mixing  c: console speaker  s: stats  q: quit\n")
	}

	sync.state <- stateRequest{req: reqNoIntSig}

	err = playmode.Play(context.Background(), eng, plb, aud, prf, opts)
	if err != nil {
		return err
	}

	return prf.Save()
}

func track(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()
	offline := md.AddBool("offline", false, "print register history without playing audio")

	if !*offline {
		// flags have not been parsed yet so look for the offline flag
		// directly in the remaining arguments
		for _, a := range md.RemainingArgs() {
			if a == "-offline" || a == "--offline" || a == "-offline=true" {
				*offline = true
			}
		}
	}

	if !*offline {
		return play(md, sync, true)
	}

	rate := addRateFlag(md)
	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	eng, _, plb, err := prepare(md, *rate)
	if err != nil {
		return err
	}

	tr := tracker.NewTracker(eng.Design().ClockRate())
	eng.AttachTap(tr)

	out := &trackerOutput{
		tr:    tr,
		table: tracker.NewTable(),
		w:     os.Stdout,
		last:  -1,
	}
	fmt.Fprintln(out.w, out.table.Header())

	err = playmode.Render(eng, plb, out, 0, recorder.Stereo(plb.Events()))
	if n := tr.Lost(); n > 0 {
		logger.Logf(logger.Allow, "track", "%d events lost", n)
	}
	return err
}

// trackerOutput implements the playmode.SampleWriter interface. samples are
// discarded and new tracker entries are written to the output
type trackerOutput struct {
	tr    *tracker.Tracker
	table *tracker.Table
	w     io.Writer
	last  float64
}

func (out *trackerOutput) Write(_ []float32, _ []float32) error {
	entries := out.tr.Since(out.last)
	if len(entries) == 0 {
		return nil
	}
	out.last = entries[len(entries)-1].Time
	return out.table.Write(out.w, entries)
}

func render(md *modalflag.Modes) error {
	md.NewMode()

	rate := addRateFlag(md)
	output := md.AddString("o", "", "output WAV file. a unique name is used if not specified")
	seconds := md.AddFloat64("seconds", 0, "length of rendering in seconds. defaults to the length of the input")
	mono := md.AddBool("mono", false, "force mono output")
	capture := md.AddString("capture", "", "write register writes to capture file as they are rendered")
	mviz := md.AddString("memviz", "", "write graph of the engine to file (in DOT format) after rendering")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	eng, _, plb, err := prepare(md, *rate)
	if err != nil {
		return err
	}

	stereo := !*mono && recorder.Stereo(plb.Events())

	if *output == "" {
		name := strings.TrimSuffix(filepath.Base(plb.Name), filepath.Ext(plb.Name))
		*output = paths.UniqueFilename("render", name, ".wav")
	}

	channels := 1
	if stereo {
		channels = 2
	}

	aw, err := wavwriter.NewWavWriter(*output, *rate, channels)
	if err != nil {
		return err
	}

	var rec *recorder.Recorder
	if *capture != "" {
		rec, err = recorder.NewRecorder(*capture, *rate)
		if err != nil {
			_ = aw.End()
			return err
		}
		eng.AttachTap(rec)
	}

	err = playmode.Render(eng, plb, aw, *seconds, stereo)

	if rec != nil {
		eng.AttachTap(nil)
		if endErr := rec.End(); endErr != nil && err == nil {
			err = endErr
		}
	}

	if endErr := aw.End(); endErr != nil && err == nil {
		err = endErr
	}
	if err != nil {
		return err
	}

	fmt.Printf("! %s written (%.2f seconds)\n", *output, float64(aw.Frames())/float64(*rate))

	if *mviz != "" {
		f, err := os.Create(*mviz)
		if err != nil {
			return err
		}
		defer f.Close()
		memviz.Map(f, eng)
	}

	return nil
}

func export(md *modalflag.Modes) error {
	md.NewMode()

	trim := md.AddBool("trim", false, "remove leading silence")
	name := md.AddString("name", "", "NAME header")
	author := md.AddString("author", "", "AUTHOR header")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if err := md.ExpectArgs(1, 2); err != nil {
		return err
	}

	plb, err := load(md.GetArg(0), defaultRate)
	if err != nil {
		return err
	}

	out := md.GetArg(1)
	if out == "" {
		n := strings.TrimSuffix(filepath.Base(plb.Name), filepath.Ext(plb.Name))
		out = paths.UniqueFilename("export", n, ".sap")
	}

	sap := recorder.NewSAPWriter(recorder.Stereo(plb.Events()), *trim)
	for _, frame := range plb.Frames(1.0 / recorder.SAPFramesPerSecond) {
		sap.Frame(frame)
	}

	var additional []string
	if *name != "" {
		additional = append(additional, fmt.Sprintf("NAME \"%s\"", *name))
	}
	if *author != "" {
		additional = append(additional, fmt.Sprintf("AUTHOR \"%s\"", *author))
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := sap.Save(f, additional...); err != nil {
		return err
	}

	fmt.Printf("! %s written (%d frames)\n", out, sap.Frames())

	return nil
}

func hash(md *modalflag.Modes) error {
	md.NewMode()

	rate := addRateFlag(md)
	seconds := md.AddFloat64("seconds", 0, "length of rendering in seconds. defaults to the length of the input")
	mono := md.AddBool("mono", false, "force mono output")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	eng, _, plb, err := prepare(md, *rate)
	if err != nil {
		return err
	}

	dig := digest.NewAudio()
	err = playmode.Render(eng, plb, dig, *seconds, !*mono && recorder.Stereo(plb.Events()))
	if err != nil {
		return err
	}

	fmt.Printf("%s  %s\n", dig.Hash(), plb.Name)

	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	rate := addRateFlag(md)
	profile := md.AddString("profile", "none", "run performance check with profiling: cpu, mem, trace, all (comma separated)")
	duration := md.AddString("duration", "5s", "run duration (note: there is a one second overhead)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	eng, _, plb, err := prepare(md, *rate)
	if err != nil {
		return err
	}

	_, err = performance.Check(os.Stdout, prf, eng, plb, recorder.Stereo(plb.Events()), *duration)
	return err
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()
	revision := md.AddBool("revision", false, "display revision information from version control system (if available)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *revision {
		v, r, _ := version.Version()
		fmt.Printf("%s %s\n%s\n", version.ApplicationName, v, r)
		return nil
	}

	fmt.Println(version.String())
	return nil
}
