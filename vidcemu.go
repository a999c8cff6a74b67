// This file is part of VIDCemu.
//
// VIDCemu is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// VIDCemu is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with VIDCemu.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/bradleyjkemp/memviz"

	"github.com/jetsetilly/vidcemu/digest"
	"github.com/jetsetilly/vidcemu/environment"
	"github.com/jetsetilly/vidcemu/govern"
	"github.com/jetsetilly/vidcemu/gui"
	"github.com/jetsetilly/vidcemu/gui/ebitenplay"
	"github.com/jetsetilly/vidcemu/gui/sdlplay"
	"github.com/jetsetilly/vidcemu/hardware"
	"github.com/jetsetilly/vidcemu/hardware/preferences"
	"github.com/jetsetilly/vidcemu/hardware/vidc"
	"github.com/jetsetilly/vidcemu/logger"
	"github.com/jetsetilly/vidcemu/modalflag"
	"github.com/jetsetilly/vidcemu/performance"
	"github.com/jetsetilly/vidcemu/prefs"
	"github.com/jetsetilly/vidcemu/screenshot"
	"github.com/jetsetilly/vidcemu/script"
	"github.com/jetsetilly/vidcemu/soundload"
	"github.com/jetsetilly/vidcemu/statsview"
	"github.com/jetsetilly/vidcemu/version"
	"github.com/jetsetilly/vidcemu/wavwriter"
)

// the address in RAM at which sounds loaded with the -sound flag are placed.
// this is above the largest screen the VIDC can display
const soundAddress = 0x200000

type stateReq int

const (
	// main thread should end as soon as possible. takes an optional int
	// argument, indicating the status code
	reqQuit stateReq = iota

	// reset interrupt signal handling. used when the GUI is better placed to
	// handle the interrupt
	reqNoIntSig
)

type stateRequest struct {
	req  stateReq
	args any
}

// communication between the main() function and the launch() function. this is
// required because many gui solutions (notably SDL) require window event
// handling (including creation) to occur on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (gui.GUI, error)

	// the result of creator will be returned on either of these two channels
	creation      chan gui.GUI
	creationError chan error
}

// SDL must be initialised and serviced on the main thread
func init() {
	runtime.LockOSThread()
}

// #mainthread
func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (gui.GUI, error)),
		creation:      make(chan gui.GUI),
		creationError: make(chan error),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	exitVal := 0

	// #ctrlc default handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	go launch(sync, os.Args[1:])

	var g gui.GUI

	done := false
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case creator := <-sync.creator:
			var err error
			g, err = creator()
			if err != nil {
				sync.creationError <- err
				g = nil
				continue
			}
			sync.creation <- g

			// the GUI runs until the emulation has finished. any error is
			// reported by the launch() goroutine
			_ = g.Service()
			g.Destroy()
			g = nil

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if v, ok := state.args.(int); ok {
					exitVal = v
				}
			case reqNoIntSig:
				signal.Reset(os.Interrupt)
			}
		}
	}

	if g != nil {
		g.Destroy()
	}

	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate gui creation and to quit.
func launch(sync *mainSync, args []string) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.AddSubModes("RUN", "PLAY", "SCRIPT", "PERFORMANCE", "VERSION")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

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

	if *stats {
		statsview.Launch(os.Stdout)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)
	case "PLAY":
		err = play(md, sync)
	case "SCRIPT":
		err = runScript(md)
	case "PERFORMANCE":
		err = perform(md)
	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md, err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// flags common to the modes that create a machine
type common struct {
	variant *string
	prefs   *string
	log     *bool
	memviz  *string
	sound   *string
}

func addCommon(md *modalflag.Modes) common {
	names := make([]string, 0, len(vidc.Variants))
	for _, v := range vidc.Variants {
		names = append(names, v.Name)
	}

	return common{
		variant: md.AddChoice("variant", vidc.VIDC20.Name, names, "video controller"),
		prefs:   md.AddString("prefs", "", "preferences for this run (eg. 'vidc.rclk::24000000; audio.inputGain::0.1')"),
		log:     md.AddBool("log", false, "echo log to stdout"),
		memviz:  md.AddString("memviz", "", "write a graphviz file of the machine state on exit"),
		sound:   md.AddString("sound", "", "load a WAV or MP3 file and play it on a loop"),
	}
}

// create the machine described by the common flags. the setup script is run
// if one is specified, otherwise the test card is used
func (c common) machine(mode govern.Mode, setup string) (*hardware.Machine, *script.Script, error) {
	if *c.log {
		logger.SetEcho(os.Stdout, false)
	}

	if *c.prefs != "" {
		prefs.PushCommandLineStack(*c.prefs)
		defer prefs.PopCommandLineStack()
	}

	p, err := preferences.NewPreferences()
	if err != nil {
		return nil, nil, err
	}

	env, err := environment.NewEnvironment(environment.MainEmulation, p)
	if err != nil {
		return nil, nil, err
	}

	variant, err := vidc.VariantByName(*c.variant)
	if err != nil {
		return nil, nil, err
	}

	m, err := hardware.NewMachine(env, variant, 0)
	if err != nil {
		return nil, nil, err
	}

	// the sound is installed before the script runs so that the script can
	// change the stereo image and the sound frequency
	if *c.sound != "" {
		snd, err := soundload.Load(env, *c.sound)
		if err != nil {
			return nil, nil, err
		}
		if _, err := snd.Install(m, soundAddress, true); err != nil {
			return nil, nil, err
		}
	}

	scr := script.NewScript(m, os.Stdout)
	scr.SetMode(mode)
	if setup == "" {
		err = scr.RunString(script.TestCard)
	} else {
		err = scr.RunFile(setup)
	}
	if err != nil {
		scr.Close()
		return nil, nil, err
	}

	return m, scr, nil
}

func (c common) end(m *hardware.Machine) error {
	err := m.TV.End()
	if err != nil {
		return err
	}

	if *c.memviz != "" {
		f, err := os.Create(*c.memviz)
		if err != nil {
			return err
		}
		defer f.Close()
		memviz.Map(f, m.VIDC)
	}

	return nil
}

// the setup script is the single optional argument
func setupArg(md *modalflag.Modes) (string, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return "", nil
	case 1:
		return md.GetArg(0), nil
	}
	return "", fmt.Errorf("too many arguments for %s mode", md)
}

func run(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("The optional argument is a Lua script that sets up the machine. Without\na script the machine shows a test card.")

	c := addCommon(md)
	frames := md.AddInt("frames", 100, "number of frames to run")
	wav := md.AddString("wav", "", "record audio to wav file")
	hashes := md.AddBool("digest", false, "print the video and audio digests on exit")
	shot := md.AddString("screenshot", "", "save the final frame using this filename base")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setup, err := setupArg(md)
	if err != nil {
		return err
	}

	m, scr, err := c.machine(govern.ModeRun, setup)
	if err != nil {
		return err
	}
	defer scr.Close()

	if *wav != "" {
		aw, err := wavwriter.New(*wav, m.Env.Prefs.SampleRate.Get().(int))
		if err != nil {
			return err
		}
		m.TV.AddAudioMixer(aw)
	}

	err = m.RunForFrames(*frames, nil)
	if err != nil {
		return err
	}

	if *shot != "" {
		fn, err := scr.Screenshot.Save(*shot)
		if err != nil {
			return err
		}
		fmt.Printf("! screenshot saved to %s\n", fn)
	}

	err = c.end(m)
	if err != nil {
		return err
	}

	if *hashes {
		printDigests(os.Stdout, scr.Video, scr.Audio)
	}

	return nil
}

func printDigests(output io.Writer, dig ...digest.Digest) {
	for _, d := range dig {
		fmt.Fprintln(output, d.Hash())
	}
}

func runScript(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("The argument is a Lua script. The script is responsible for running the\nmachine.")

	c := addCommon(md)
	hashes := md.AddBool("digest", false, "print the video and audio digests on exit")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("a single Lua script is required for %s mode", md)
	}

	// the machine is created with the script so the test card is skipped
	m, scr, err := c.machine(govern.ModeScript, md.GetArg(0))
	if err != nil {
		return err
	}
	defer scr.Close()

	err = c.end(m)
	if err != nil {
		return err
	}

	if *hashes {
		printDigests(os.Stdout, scr.Video, scr.Audio)
	}

	return nil
}

func play(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()
	md.AdditionalHelp("The optional argument is a Lua script that sets up the machine. Without\na script the machine shows a test card.\n\nKeys: P pause, R reset, F toggle double speed, Escape quit")

	c := addCommon(md)
	frontend := md.AddChoice("gui", "sdl", []string{"sdl", "ebiten"}, "frontend")
	scale := md.AddFloat64("scale", 1.0, "window scaling")
	wav := md.AddString("wav", "", "record audio to wav file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setup, err := setupArg(md)
	if err != nil {
		return err
	}

	m, scr, err := c.machine(govern.ModePlay, setup)
	if err != nil {
		return err
	}
	defer scr.Close()

	sampleRate := m.Env.Prefs.SampleRate.Get().(int)

	pump := gui.NewPump(sampleRate)
	m.TV.AddPixelRenderer(pump)
	m.TV.AddAudioMixer(pump)

	if *wav != "" {
		aw, err := wavwriter.New(*wav, sampleRate)
		if err != nil {
			return err
		}
		m.TV.AddAudioMixer(aw)
	}

	// the window handles interrupts from now on. the main thread will be busy
	// servicing the GUI so this must be sent before the creator
	sync.state <- stateRequest{req: reqNoIntSig}

	sync.creator <- func() (gui.GUI, error) {
		switch *frontend {
		case "ebiten":
			return ebitenplay.NewEbitenPlay(pump, int(*scale))
		}
		return sdlplay.NewSdlPlay(pump, float32(*scale))
	}

	select {
	case <-sync.creation:
	case err := <-sync.creationError:
		return err
	}

	err = m.Run(func() (govern.State, error) {
		return pump.Check(m)
	})
	pump.Finish(err)
	if err != nil {
		return err
	}

	return c.end(m)
}

func perform(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("The optional argument is a Lua script that sets up the machine. Without\na script the machine shows a test card.")

	c := addCommon(md)
	duration := md.AddDuration("duration", 5*time.Second, "run duration")
	profile := md.AddString("profile", "none", "run performance check with profiling: comma separated CPU, MEM, TRACE or ALL")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	setup, err := setupArg(md)
	if err != nil {
		return err
	}

	m, scr, err := c.machine(govern.ModePerformance, setup)
	if err != nil {
		return err
	}
	defer scr.Close()

	_, err = performance.Check(os.Stdout, m, prf, *duration)
	if err != nil {
		return err
	}

	return c.end(m)
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()
	revision := md.AddBool("v", false, "display revision information (if available")
	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	v, r, _ := version.Version()
	fmt.Println(v)
	if *revision {
		fmt.Println(r)
	}

	return nil
}
