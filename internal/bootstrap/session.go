// Package bootstrap собирает общую для всех бэкендов часть запуска:
// настройки, ассеты, звук, профилировщик и игровой цикл.
package bootstrap

import (
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"

	"sketch-shooter/internal/assets"
	"sketch-shooter/internal/audio"
	"sketch-shooter/internal/config"
	"sketch-shooter/internal/engine"
	"sketch-shooter/internal/event"
	"sketch-shooter/internal/loop"
)

// Session — всё, что нужно бэкенду для запуска партии.
type Session struct {
	Settings config.Settings
	Fonts    *assets.FontManager
	Sound    *audio.SoundManager
	Loop     *loop.Loop
}

// Start читает окружение и готовит сессию. Ошибка звука не фатальна:
// игра продолжается без него.
func Start() (*Session, error) {
	settings, err := config.LoadSettings()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	if err := assets.EnsureDir(settings.AssetDir); err != nil {
		return nil, err
	}
	fonts, err := assets.NewFontManager(settings.AssetDir)
	if err != nil {
		return nil, fmt.Errorf("load fonts: %w", err)
	}

	if settings.PprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(settings.PprofAddr, nil))
		}()
	}

	sound := audio.NewSoundManager(settings.Volume, settings.Mute)
	if err := sound.Initialize(); err != nil {
		log.Printf("WARNING: audio disabled: %v", err)
	}

	d := event.NewDispatcher()
	d.SubscribeAll(sound, sound.Events()...)

	ctx := engine.NewContext(settings.Seed)
	log.Printf("Старт: сид %d, шрифт %s", settings.Seed, fonts.Source())
	return &Session{
		Settings: settings,
		Fonts:    fonts,
		Sound:    sound,
		Loop:     loop.New(ctx, d, settings.SkipMenu),
	}, nil
}

// Close отписывает звук от событий и освобождает звук и шрифты.
func (s *Session) Close() {
	s.Loop.EventDispatcher.UnsubscribeAll(s.Sound, s.Sound.Events()...)
	s.Sound.Cleanup()
	if err := s.Fonts.Close(); err != nil {
		log.Printf("close fonts: %v", err)
	}
}
