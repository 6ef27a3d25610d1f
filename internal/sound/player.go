package sound

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/wav"

	"github.com/iburimskiy/arrow-bubbles/internal/config"
)

const levelWindow = 1024

// Player plays the impact cues. Until Init succeeds every Play call is a
// silent no-op, which is also how a machine without an audio device behaves.
type Player struct {
	mu         sync.Mutex
	out        Output
	sampleRate beep.SampleRate
	volume     float64
	mixer      *beep.Mixer
	tap        *levelTap
	cue        *beep.Buffer
	cueName    string
	available  bool
	muted      bool
}

func NewPlayer(cfg config.Sound, out Output) *Player {
	mixer := &beep.Mixer{}
	return &Player{
		out:        out,
		sampleRate: beep.SampleRate(cfg.SampleRate),
		volume:     cfg.Volume,
		mixer:      mixer,
		tap:        newLevelTap(mixer, config.TapRingSize),
	}
}

// Init opens the output device and starts streaming the mixer into it.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.available {
		return nil
	}
	if p.out == nil {
		return errors.New("no audio output")
	}

	bufferSize := p.sampleRate.N(time.Second / 20)
	if err := p.out.Init(p.sampleRate, bufferSize); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	p.out.Play(p.tap)
	p.available = true
	return nil
}

// Available reports whether sound output was initialized.
func (p *Player) Available() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.available
}

func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = muted
}

// CueName is the base name of the loaded custom cue, empty for synthesized tones.
func (p *Player) CueName() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cueName
}

// PlayImpact plays the cue for circle index.
func (p *Player) PlayImpact(index int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.available || p.muted {
		return
	}

	var s beep.Streamer
	if p.cue != nil {
		s = p.cue.Streamer(0, p.cue.Len())
	} else {
		s = impactTone(p.sampleRate, index)
	}
	s = &effects.Gain{Streamer: s, Gain: p.volume - 1}

	p.out.Lock()
	p.mixer.Add(s)
	p.out.Unlock()
}

// Level is the RMS of the last few milliseconds of output, roughly 0..0.5.
func (p *Player) Level() float64 {
	if !p.Available() {
		return 0
	}
	return p.tap.level(levelWindow)
}

// LoadCue replaces the synthesized tones with an audio file. The file is
// decoded and resampled up front so playback never touches the disk.
func (p *Player) LoadCue(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	ext := filepath.Ext(path)
	switch strings.ToLower(ext) {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	default:
		return errors.New("unsupported file type: " + ext)
	}
	if err != nil {
		return fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	defer streamer.Close()

	var src beep.Streamer = streamer
	if format.SampleRate != p.sampleRate {
		src = beep.Resample(4, format.SampleRate, p.sampleRate, streamer)
	}

	buf := beep.NewBuffer(beep.Format{SampleRate: p.sampleRate, NumChannels: 2, Precision: 2})
	buf.Append(src)
	if err := streamer.Err(); err != nil {
		return fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	if buf.Len() == 0 {
		return fmt.Errorf("%s contains no audio", filepath.Base(path))
	}

	p.mu.Lock()
	p.cue = buf
	p.cueName = filepath.Base(path)
	p.mu.Unlock()
	return nil
}

// ClearCue goes back to the synthesized tones.
func (p *Player) ClearCue() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cue = nil
	p.cueName = ""
}
