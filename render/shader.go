package render

import (
	"embed"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

// TintShader colorizes the neutral base art per enemy type.
var TintShader *ebiten.Shader

// LoadShaders compiles and caches all shaders.
func LoadShaders() error {
	src, err := shaderFS.ReadFile("shaders/tint.kage")
	if err != nil {
		return err
	}
	TintShader, err = ebiten.NewShader(src)
	return err
}

// tintUniforms converts c into the shader's uniform map.
func tintUniforms(c color.RGBA, fade float32) map[string]any {
	return map[string]any{
		"Tint": []float32{
			float32(c.R) / 255,
			float32(c.G) / 255,
			float32(c.B) / 255,
			float32(c.A) / 255,
		},
		"Fade": fade,
	}
}
