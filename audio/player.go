package audio

import (
	"log/slog"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/rps/components"
	"github.com/pthm-cable/rps/config"
	"github.com/pthm-cable/rps/game"
	"github.com/pthm-cable/rps/systems"
)

// Player drives raylib music streams from a Mixer. It implements
// game.AudioSink and game.WinListener.
type Player struct {
	cfg   config.AudioConfig
	mixer *Mixer

	loops      [components.NumKinds]rl.Music
	loopLoaded [components.NumKinds]bool

	background       rl.Music
	backgroundLoaded bool

	victory       rl.Sound
	victoryLoaded bool
}

// NewPlayer opens the audio device and starts every loop at zero gain.
// Missing files are logged and skipped.
func NewPlayer(cfg *config.Config) *Player {
	rl.InitAudioDevice()

	p := &Player{cfg: cfg.Audio, mixer: NewMixer(cfg)}

	for _, k := range components.Kinds {
		path := cfg.Audio.LoopFiles[k.String()]
		if !fileExists(path) {
			slog.Warn("audio loop missing", "kind", k.String(), "path", path)
			continue
		}
		p.loops[k] = rl.LoadMusicStream(path)
		p.loopLoaded[k] = true
		rl.SetMusicVolume(p.loops[k], 0)
		rl.PlayMusicStream(p.loops[k])
	}

	p.loadBackground(p.mixer.TrackFile())

	if fileExists(cfg.Audio.VictoryFile) {
		p.victory = rl.LoadSound(cfg.Audio.VictoryFile)
		p.victoryLoaded = true
		rl.SetSoundVolume(p.victory, float32(cfg.Audio.VictoryGain))
	} else {
		slog.Warn("victory sound missing", "path", cfg.Audio.VictoryFile)
	}

	return p
}

// Mixer returns the mixing model.
func (p *Player) Mixer() *Mixer {
	return p.mixer
}

// Mix implements game.AudioSink.
func (p *Player) Mix(counts systems.Census, speed float64) {
	p.mixer.Update(counts, speed)
	p.apply()
}

// OnWin implements game.WinListener: loops go silent and the victory sound plays.
func (p *Player) OnWin(game.WinEvent) {
	p.mixer.Silence()
	p.apply()
	if p.victoryLoaded {
		rl.PlaySound(p.victory)
	}
}

// Update feeds the music streams; call once per rendered frame.
func (p *Player) Update(dt float64) {
	p.mixer.Advance(dt)
	p.apply()
	for k, loaded := range p.loopLoaded {
		if loaded {
			rl.UpdateMusicStream(p.loops[k])
		}
	}
	if p.backgroundLoaded {
		rl.UpdateMusicStream(p.background)
	}
}

// CycleBackground switches to the next background track and returns the
// button label for it.
func (p *Player) CycleBackground() string {
	p.unloadBackground()
	p.loadBackground(p.mixer.CycleBackground())
	p.apply()
	return p.mixer.TrackLabel()
}

// Close releases every stream and the audio device.
func (p *Player) Close() {
	for k, loaded := range p.loopLoaded {
		if loaded {
			rl.UnloadMusicStream(p.loops[k])
		}
	}
	p.unloadBackground()
	if p.victoryLoaded {
		rl.UnloadSound(p.victory)
	}
	rl.CloseAudioDevice()
}

func (p *Player) apply() {
	for _, k := range components.Kinds {
		if p.loopLoaded[k] {
			rl.SetMusicVolume(p.loops[k], float32(p.mixer.Gain(k)))
		}
	}
	if p.backgroundLoaded {
		rl.SetMusicVolume(p.background, float32(p.mixer.BackgroundGain()))
		rl.SetMusicPitch(p.background, float32(p.mixer.Rate()))
	}
}

func (p *Player) loadBackground(path string) {
	if path == "" {
		return
	}
	if !fileExists(path) {
		slog.Warn("background track missing", "path", path)
		return
	}
	p.background = rl.LoadMusicStream(path)
	p.backgroundLoaded = true
	rl.PlayMusicStream(p.background)
}

func (p *Player) unloadBackground() {
	if !p.backgroundLoaded {
		return
	}
	rl.StopMusicStream(p.background)
	rl.UnloadMusicStream(p.background)
	p.backgroundLoaded = false
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}
