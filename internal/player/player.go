package player

import (
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
	zlog "github.com/rs/zerolog/log"
)

// outputRate is the speaker sample rate; sources at other rates are resampled.
const outputRate = beep.SampleRate(44100)

const resampleQuality = 4

var speakerInitialized bool

// Player binds exactly one track at a time to the speaker.
type Player struct {
	state       State
	ctrl        *beep.Ctrl
	volume      *effects.Volume
	streamer    beep.StreamSeekCloser
	format      beep.Format
	file        *os.File
	trackInfo   *TrackInfo
	volumeLevel float64
	finishedCh  chan uint64
}

func New() *Player {
	return &Player{
		state:       Stopped,
		volumeLevel: 1.0,
		finishedCh:  make(chan uint64, 1),
	}
}

// Play stops the current track and starts the file at path.
func (p *Player) Play(path string, gen uint64) error {
	p.Stop()
	p.drainFinished()

	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "open %s", path)
	}

	mt, err := sniff(f)
	if err != nil {
		f.Close()
		return err
	}
	dec, err := decoderFor(mt)
	if err != nil {
		f.Close()
		return err
	}

	streamer, format, err := dec.decode(f)
	if err != nil {
		f.Close()
		return errors.Wrapf(err, "decode %s", dec.contentType)
	}

	if !speakerInitialized {
		if err := speaker.Init(outputRate, outputRate.N(time.Second/10)); err != nil {
			streamer.Close()
			return errors.Wrap(err, "init speaker")
		}
		speakerInitialized = true
	}

	var source beep.Streamer = streamer
	if format.SampleRate != outputRate {
		source = beep.Resample(resampleQuality, format.SampleRate, outputRate, streamer)
	}

	p.file = f
	p.streamer = streamer
	p.format = format
	p.ctrl = &beep.Ctrl{Streamer: source}
	p.volume = &effects.Volume{
		Streamer: p.ctrl,
		Base:     2,
		Volume:   levelToVolume(p.volumeLevel),
	}

	info := ReadTrackInfo(path)
	info.ContentType = dec.contentType
	info.SampleRate = int(format.SampleRate)
	info.Duration = format.SampleRate.D(streamer.Len())
	p.trackInfo = info

	p.state = Playing
	speaker.Play(beep.Seq(p.volume, beep.Callback(func() { p.signalFinished(gen) })))

	zlog.Debug().
		Str("path", path).
		Str("content_type", dec.contentType).
		Dur("duration", info.Duration).
		Uint64("gen", gen).
		Msg("playback started")
	return nil
}

// signalFinished runs on the speaker goroutine when the source is exhausted.
func (p *Player) signalFinished(gen uint64) {
	select {
	case p.finishedCh <- gen:
	default:
	}
}

func (p *Player) drainFinished() {
	select {
	case <-p.finishedCh:
	default:
	}
}

func (p *Player) FinishedChan() <-chan uint64 {
	return p.finishedCh
}

func (p *Player) State() State { return p.state }

func (p *Player) TrackInfo() *TrackInfo { return p.trackInfo }

func (p *Player) Duration() time.Duration {
	if p.trackInfo == nil {
		return 0
	}
	return p.trackInfo.Duration
}
