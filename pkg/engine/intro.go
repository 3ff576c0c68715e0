package engine

import (
	"github.com/go-gl/mathgl/mgl32"

	"neonhex/internal/util"
	"neonhex/pkg/config"
)

type introPhase int

const (
	introTiltUp introPhase = iota
	introHold
	introDone
)

// IntroFrame is what the intro contributes to one rendered frame.
type IntroFrame struct {
	// PitchOffset tilts the camera downward during the sweep.
	PitchOffset float32
	// Brightness fades the whole scene in from black.
	Brightness float32
	// FireReveal is true on exactly the frame that should trigger
	// the initial reveal around the starting hex.
	FireReveal bool
}

// Intro runs the opening camera sweep: the view starts tilted down
// and eased up to the horizon, then holds briefly while the first
// petals spawn, then hands control to the player.
type Intro struct {
	cfg     config.IntroConfig
	phase   introPhase
	elapsed float32
	total   float32
	fired   bool
}

// NewIntro builds the intro state machine from configuration.
func NewIntro(cfg config.IntroConfig) *Intro {
	return &Intro{cfg: cfg}
}

// Done reports whether the sweep has finished.
func (in *Intro) Done() bool {
	return in.phase == introDone
}

// Update advances the sweep by dt seconds.
func (in *Intro) Update(dt float32) IntroFrame {
	in.total += dt
	frame := IntroFrame{Brightness: 1}

	if in.cfg.FadeIn > 0 {
		frame.Brightness = util.Clamp(in.total/in.cfg.FadeIn, 0, 1)
	}

	switch in.phase {
	case introTiltUp:
		in.elapsed += dt
		t := float32(1)
		if in.cfg.Duration > 0 {
			t = util.Clamp(in.elapsed/in.cfg.Duration, 0, 1)
		}
		sweep := mgl32.DegToRad(in.cfg.SweepDeg)
		frame.PitchOffset = -sweep * (1 - util.EaseOutCubic(t))
		if t >= 1 {
			in.phase = introHold
			in.elapsed = 0
		}
	case introHold:
		if !in.fired {
			in.fired = true
			frame.FireReveal = true
		}
		in.elapsed += dt
		if in.elapsed >= in.cfg.HoldAfter {
			in.phase = introDone
		}
	case introDone:
	}
	return frame
}
