package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FontFile — имя TTF-шрифта внутри каталога ассетов.
const FontFile = "arial.ttf"

// FontManager загружает TTF-шрифт один раз и кэширует начертания по размеру.
type FontManager struct {
	mu     sync.Mutex
	data   []byte
	source string
	font   *opentype.Font
	faces  map[float64]font.Face
}

// NewFontManager читает <dir>/fonts/arial.ttf. Если файла нет, используется
// встроенный Go Regular, чтобы игра запускалась без ассетов.
func NewFontManager(dir string) (*FontManager, error) {
	path := filepath.Join(dir, "fonts", FontFile)
	data, err := os.ReadFile(path)
	source := path
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist):
		log.Printf("WARNING: font %s not found, falling back to Go Regular", path)
		data = goregular.TTF
		source = "goregular"
	default:
		return nil, fmt.Errorf("read font %s: %w", path, err)
	}

	tt, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", source, err)
	}
	return &FontManager{
		data:   data,
		source: source,
		font:   tt,
		faces:  make(map[float64]font.Face),
	}, nil
}

// Face возвращает начертание заданного кегля.
func (m *FontManager) Face(size float64) font.Face {
	m.mu.Lock()
	defer m.mu.Unlock()

	if face, ok := m.faces[size]; ok {
		return face
	}
	face, err := opentype.NewFace(m.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		log.Printf("WARNING: font face %.0fpt from %s: %v", size, m.source, err)
		return basicfont.Face7x13
	}
	m.faces[size] = face
	return face
}

// Data — сырые байты TTF (raylib грузит шрифт из памяти).
func (m *FontManager) Data() []byte {
	return m.data
}

// Source — путь к файлу шрифта или "goregular".
func (m *FontManager) Source() string {
	return m.source
}

// Close освобождает кэшированные начертания.
func (m *FontManager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var errs []error
	for size, face := range m.faces {
		if err := face.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close face %.0fpt: %w", size, err))
		}
	}
	clear(m.faces)
	return errors.Join(errs...)
}

// EnsureDir создает каталог ассетов, если его еще нет.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(filepath.Join(dir, "fonts"), 0o755); err != nil {
		return fmt.Errorf("create asset dir: %w", err)
	}
	return nil
}
