package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// SoundType — вид звукового эффекта
type SoundType int

const (
	SoundShot SoundType = iota
	SoundHit
	SoundExplosion
	SoundHurt
	SoundPickup
	SoundGameOver
)

func (s SoundType) String() string {
	switch s {
	case SoundShot:
		return "shot"
	case SoundHit:
		return "hit"
	case SoundExplosion:
		return "explosion"
	case SoundHurt:
		return "hurt"
	case SoundPickup:
		return "pickup"
	case SoundGameOver:
		return "game over"
	}
	return "unknown"
}

// Wave — форма волны осциллятора
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator генерирует волну с линейным сдвигом частоты от freq до freqEnd.
type oscillator struct {
	freq, freqEnd float64
	phase         float64
	wave          Wave
	rate          beep.SampleRate
	position      int
	total         int
	noise         uint32
}

func newOscillator(freq, freqEnd float64, d time.Duration, wave Wave, rate beep.SampleRate) *oscillator {
	return &oscillator{
		freq:    freq,
		freqEnd: freqEnd,
		wave:    wave,
		rate:    rate,
		total:   rate.N(d),
		noise:   0x2545f491,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.total {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveNoise:
			// xorshift, чтобы не трогать общий генератор игры
			o.noise ^= o.noise << 13
			o.noise ^= o.noise >> 17
			o.noise ^= o.noise << 5
			val = float64(o.noise)/float64(math.MaxUint32)*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.total)
		freq := o.freq + (o.freqEnd-o.freq)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope — упрощенная огибающая: атака, удержание, затухание.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) *envelope {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(d),
	}
}

// gain возвращает множитель громкости для текущего сэмпла.
func (e *envelope) gain() float64 {
	if e.attack > 0 && e.position < e.attack {
		return float64(e.position) / float64(e.attack)
	}
	if e.release > 0 && e.position >= e.total-e.release {
		return math.Max(0, float64(e.total-e.position-1)/float64(e.release))
	}
	return 1
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.total {
		return 0, false
	}
	if rest := e.total - e.position; len(samples) > rest {
		samples = samples[:rest]
	}
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		g := e.gain()
		samples[i][0] *= g
		samples[i][1] *= g
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// withVolume оборачивает поток в линейную громкость vol ∈ [0,1].
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

type tone struct {
	freq, freqEnd      float64
	wave               Wave
	d, attack, release time.Duration
	level              float64
}

var sounds = map[SoundType][]tone{
	SoundShot: {
		{freq: 900, freqEnd: 300, wave: WaveSquare, d: 70 * time.Millisecond, attack: 2 * time.Millisecond, release: 50 * time.Millisecond, level: 0.25},
	},
	SoundHit: {
		{freq: 220, freqEnd: 160, wave: WaveSaw, d: 60 * time.Millisecond, attack: 2 * time.Millisecond, release: 40 * time.Millisecond, level: 0.3},
	},
	SoundExplosion: {
		{wave: WaveNoise, d: 300 * time.Millisecond, attack: 5 * time.Millisecond, release: 250 * time.Millisecond, level: 0.35},
		{freq: 120, freqEnd: 40, wave: WaveSine, d: 300 * time.Millisecond, attack: 5 * time.Millisecond, release: 200 * time.Millisecond, level: 0.5},
	},
	SoundHurt: {
		{freq: 140, freqEnd: 90, wave: WaveSquare, d: 150 * time.Millisecond, attack: 5 * time.Millisecond, release: 100 * time.Millisecond, level: 0.3},
	},
	SoundPickup: {
		{freq: 660, freqEnd: 660, wave: WaveSine, d: 80 * time.Millisecond, attack: 5 * time.Millisecond, release: 30 * time.Millisecond, level: 0.4},
		{freq: 990, freqEnd: 990, wave: WaveSine, d: 120 * time.Millisecond, attack: 5 * time.Millisecond, release: 80 * time.Millisecond, level: 0.4},
	},
	SoundGameOver: {
		{freq: 440, freqEnd: 110, wave: WaveSaw, d: 900 * time.Millisecond, attack: 10 * time.Millisecond, release: 600 * time.Millisecond, level: 0.35},
	},
}

// NewSound собирает поток для эффекта. Взрыв смешивает шум и низкий тон,
// бонус играет две ноты подряд. Неизвестный тип дает nil.
func NewSound(kind SoundType, rate beep.SampleRate, volume float64) beep.Streamer {
	tones, ok := sounds[kind]
	if !ok {
		return nil
	}
	parts := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		osc := newOscillator(t.freq, t.freqEnd, t.d, t.wave, rate)
		parts = append(parts, withVolume(newEnvelope(osc, t.d, t.attack, t.release, rate), t.level))
	}

	var s beep.Streamer
	switch {
	case len(parts) == 1:
		s = parts[0]
	case kind == SoundPickup:
		s = beep.Seq(parts...)
	default:
		s = beep.Mix(parts...)
	}
	return withVolume(s, volume)
}
