package sound

import (
	"errors"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/ncruces/zenity"
)

// Output is the audio device the player streams into.
type Output interface {
	Init(sr beep.SampleRate, bufferSize int) error
	Play(s beep.Streamer)
	// Lock and Unlock guard streamers shared with the device goroutine.
	Lock()
	Unlock()
}

type speakerOutput struct{}

// Speaker returns the system speaker.
func Speaker() Output { return speakerOutput{} }

func (speakerOutput) Init(sr beep.SampleRate, bufferSize int) error {
	return speaker.Init(sr, bufferSize)
}

func (speakerOutput) Play(s beep.Streamer) { speaker.Play(s) }
func (speakerOutput) Lock()                { speaker.Lock() }
func (speakerOutput) Unlock()              { speaker.Unlock() }

// SelectCueFile asks the user for an audio file. A cancelled dialog returns
// an empty path and no error.
func SelectCueFile() (string, error) {
	filename, err := zenity.SelectFile(
		zenity.Title("Choose Impact Sound"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: []string{"*.wav", "*.mp3", "*.flac"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		return "", err
	}
	return filename, nil
}
