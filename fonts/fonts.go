// Package fonts loads the TrueType faces shared by the HUD, the world map
// and the menus.
package fonts

import (
	"fmt"
	"sync"

	"github.com/automoto/betrothed/config"
	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Regular FontName = "regular"
	Bold    FontName = "bold"
	Title   FontName = "title"
	Small   FontName = "small"
)

var (
	mu    sync.Mutex
	faces = map[FontName]text.Face{}
)

// Get returns the named face, loading the bundled fonts on first use.
func (f FontName) Get() text.Face {
	mu.Lock()
	defer mu.Unlock()
	if len(faces) == 0 {
		loadDefaults()
	}
	face, ok := faces[f]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", f))
	}
	return face
}

func loadDefaults() {
	mustLoad(Regular, goregular.TTF, config.UI.FontSize)
	mustLoad(Bold, gobold.TTF, config.UI.FontSize)
	mustLoad(Title, gobold.TTF, config.UI.TitleSize)
	mustLoad(Small, goregular.TTF, config.UI.FontSize*0.7)
}

func mustLoad(name FontName, ttf []byte, size float64) {
	face, err := NewFace(ttf, size)
	if err != nil {
		panic(fmt.Sprintf("Font %s: %v", name, err))
	}
	faces[name] = face
}

// NewFace parses ttf at the given point size.
func NewFace(ttf []byte, size float64) (text.Face, error) {
	parsed, err := truetype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	var face font.Face = truetype.NewFace(parsed, &truetype.Options{
		Size:    size,
		Hinting: font.HintingFull,
	})
	return text.NewGoXFace(face), nil
}
