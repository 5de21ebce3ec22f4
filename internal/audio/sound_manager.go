package audio

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"sketch-shooter/internal/event"
)

const sampleRate = beep.SampleRate(44100)

// SoundManager проигрывает эффекты через общий микшер и слушает игровые события.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	muted       bool
	initialized bool
}

// NewSoundManager создает менеджер; звук не играет до Initialize.
func NewSoundManager(volume float64, muted bool) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
		muted:  muted,
	}
}

// Initialize открывает аудиоустройство. При выключенном звуке ничего не делает.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || sm.muted {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Play ставит эффект в микшер. Возвращает false, если звук не играет.
func (sm *SoundManager) Play(kind SoundType) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return false
	}
	s := NewSound(kind, sampleRate, sm.volume)
	if s == nil {
		return false
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	return true
}

// Events — события, на которые подписывается менеджер.
func (sm *SoundManager) Events() []event.EventType {
	return []event.EventType{
		event.BulletFired,
		event.EnemyHit,
		event.EnemyKilled,
		event.PlayerHit,
		event.PowerUpCollected,
		event.PlayerDied,
	}
}

// OnEvent реализует event.Listener.
func (sm *SoundManager) OnEvent(e event.Event) {
	if kind, ok := SoundFor(e.Type); ok {
		sm.Play(kind)
	}
}

// SoundFor сопоставляет игровое событие звуковому эффекту.
func SoundFor(t event.EventType) (SoundType, bool) {
	switch t {
	case event.BulletFired:
		return SoundShot, true
	case event.EnemyHit:
		return SoundHit, true
	case event.EnemyKilled:
		return SoundExplosion, true
	case event.PlayerHit:
		return SoundHurt, true
	case event.PowerUpCollected:
		return SoundPickup, true
	case event.PlayerDied:
		return SoundGameOver, true
	}
	return 0, false
}

// Cleanup останавливает все звуки и закрывает устройство.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
	log.Println("audio closed")
}
