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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/vidcemu/govern"
	"github.com/jetsetilly/vidcemu/hardware"
)

// sentinal error returned by Run() loop.
var timedOut = errors.New("performance timed out")

// the number of timer events between checks of the measurement timer.
// checking the channel on every event is relatively expensive
const performanceBrake = 1000

// Leadtime is the amount of wall-clock time allowed for the emulation to
// settle before measurement begins.
var Leadtime = 2 * time.Second

// Result of a performance check.
type Result struct {
	Frames   int
	Duration time.Duration

	// the amount of virtual time that passed during measurement
	Emulated float64

	// the frame rate of the emulated display
	RefreshRate float64
}

func (r Result) String() string {
	fps, accuracy := CalcSpeed(r.Frames, r.Duration.Seconds(), r.RefreshRate)
	return fmt.Sprintf("%.2f fps (%d frames in %.2f seconds) %.1f%% [%.2fx realtime]",
		fps, r.Frames, r.Duration.Seconds(), accuracy, r.Emulated/r.Duration.Seconds())
}

// CalcSpeed takes the the number of frames and duration (in seconds) and
// returns the frames-per-second and the accuracy of that value as a percentage
// of the refresh rate.
func CalcSpeed(numFrames int, duration float64, refreshRate float64) (fps float64, accuracy float64) {
	if duration <= 0 {
		return 0, 0
	}
	fps = float64(numFrames) / duration
	if refreshRate <= 0 {
		return fps, 0
	}
	accuracy = 100 * fps / refreshRate
	return fps, accuracy
}

// Check the performance of the emulator by running the machine, as quickly as
// possible, for the specified duration.
//
// The machine should have been set up before calling Check(). The result is
// written to output as well as returned.
func Check(output io.Writer, m *hardware.Machine, profile Profile, duration time.Duration) (Result, error) {
	var startFrame int
	var startTime float64

	runner := func() error {
		// signals false when the leadtime has expired and true when the
		// measurement period has finished
		timerChan := make(chan bool, 1)

		go func() {
			time.AfterFunc(Leadtime, func() {
				timerChan <- false
				time.AfterFunc(duration, func() {
					timerChan <- true
				})
			})
		}()

		brake := 0

		return m.Run(func() (govern.State, error) {
			brake++
			if brake < performanceBrake {
				return govern.Running, nil
			}
			brake = 0

			select {
			case v := <-timerChan:
				if v {
					return govern.Ending, timedOut
				}
				startFrame = m.TV.FrameNum()
				startTime = m.Now().Seconds()
			default:
			}

			return govern.Running, nil
		})
	}

	err := RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return Result{}, fmt.Errorf("performance: %w", err)
	}

	r := Result{
		Frames:   m.TV.FrameNum() - startFrame,
		Duration: duration,
		Emulated: m.Now().Seconds() - startTime,
	}
	if geom, ok := m.TV.Geometry(); ok {
		r.RefreshRate = geom.Refresh
	}

	fmt.Fprintln(output, r)

	return r, nil
}
