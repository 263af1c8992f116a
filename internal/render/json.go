package render

import (
	"encoding/json"
	"io"

	"srpg/internal/combat"
)

func MarshalPretty(v any) []byte {
	b, _ := json.MarshalIndent(v, "", "  ")
	return b
}

type JSON struct {
	Out io.Writer
}

func (j *JSON) Render(rd *combat.RenderData) error {
	_, err := j.Out.Write(append(MarshalPretty(rd), '\n'))
	return err
}

// Renderer draws one overlay.
type Renderer interface {
	Render(rd *combat.RenderData) error
}

var (
	_ Renderer = (*Text)(nil)
	_ Renderer = (*JSON)(nil)
)
