package speech

import (
	"bytes"
	"encoding/binary"
	"math"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/hammamikhairi/recipebook/internal/logger"
)

// Player handles playback of 16-bit mono PCM via oto.
type Player struct {
	ctx    *oto.Context
	log    *logger.Logger
	mu     sync.Mutex
	active *oto.Player // currently playing, nil when idle
}

// NewPlayer creates an audio player. Initializes the system audio context.
// Returns an error if the audio device is unavailable.
func NewPlayer(log *logger.Logger) (*Player, error) {
	op := &oto.NewContextOptions{
		SampleRate:   SampleRate,
		ChannelCount: ChannelCount,
		Format:       oto.FormatSignedInt16LE,
	}

	ctx, readyChan, err := oto.NewContext(op)
	if err != nil {
		return nil, err
	}
	<-readyChan

	log.Debug("audio player initialized (rate=%d, channels=%d)", SampleRate, ChannelCount)
	return &Player{ctx: ctx, log: log}, nil
}

// Play plays raw PCM synchronously. A new call interrupts the previous
// sound.
func (p *Player) Play(pcm []byte) error {
	p.Stop()

	player := p.ctx.NewPlayer(bytes.NewReader(pcm))

	p.mu.Lock()
	p.active = player
	p.mu.Unlock()

	player.Play()
	p.log.Debug("audio player: playing %d bytes of PCM", len(pcm))

	for player.IsPlaying() {
		time.Sleep(10 * time.Millisecond)
	}

	p.mu.Lock()
	if p.active == player {
		p.active = nil
	}
	p.mu.Unlock()

	return player.Close()
}

// Stop interrupts the currently playing sound, if any. Safe to call
// concurrently and when nothing is playing.
func (p *Player) Stop() {
	p.mu.Lock()
	active := p.active
	p.mu.Unlock()

	if active != nil {
		active.Pause()
		p.log.Debug("audio player: interrupted")
	}
}

// Synthesize renders notes as signed 16-bit little-endian mono PCM.
// Each note gets a short linear fade in and out to avoid clicks.
func Synthesize(notes []Note) []byte {
	var buf bytes.Buffer
	for _, n := range notes {
		samples := int(int64(n.Duration) * SampleRate / int64(time.Second))
		fade := samples / 10
		for i := 0; i < samples; i++ {
			amp := chimeVolume
			switch {
			case fade > 0 && i < fade:
				amp *= float64(i) / float64(fade)
			case fade > 0 && i >= samples-fade:
				amp *= float64(samples-i) / float64(fade)
			}
			v := amp * math.Sin(2*math.Pi*n.Frequency*float64(i)/SampleRate)
			_ = binary.Write(&buf, binary.LittleEndian, int16(v*math.MaxInt16))
		}
	}
	return buf.Bytes()
}
