// Package render turns overlay render data into terminal text or JSON.
package render

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"

	"srpg/internal/combat"
)

// IsTerminal reports whether f is an interactive terminal that understands ANSI colour.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

var namedFG = map[string]int{
	"black":         30,
	"red":           31,
	"green":         32,
	"yellow":        33,
	"blue":          34,
	"magenta":       35,
	"cyan":          36,
	"white":         37,
	"gray":          90,
	"grey":          90,
	"blackBright":   90,
	"redBright":     91,
	"greenBright":   92,
	"yellowBright":  93,
	"blueBright":    94,
	"magentaBright": 95,
	"cyanBright":    96,
	"whiteBright":   97,
}

var hexColor = regexp.MustCompile(`^#?[0-9A-Fa-f]{6}$`)

// layerBG is the background code per layer. Both attack layers share red.
var layerBG = map[combat.Layer]int{
	combat.LayerAttackInPlace:   41,
	combat.LayerMoveRange:       44,
	combat.LayerAttackAlongMove: 41,
	combat.LayerEnemyThreat:     101,
}

// layerMark stands in for the background on empty tiles when colour is off.
var layerMark = map[combat.Layer]string{
	combat.LayerAttackInPlace:   "x",
	combat.LayerMoveRange:       "m",
	combat.LayerAttackAlongMove: "*",
	combat.LayerEnemyThreat:     "!",
}

// foreground maps a faction colour to SGR parameters. Unknown colours render white.
func foreground(color string) string {
	if code, ok := namedFG[color]; ok {
		return strconv.Itoa(code)
	}
	if hexColor.MatchString(color) {
		h := strings.TrimPrefix(color, "#")
		r, _ := strconv.ParseUint(h[0:2], 16, 8)
		g, _ := strconv.ParseUint(h[2:4], 16, 8)
		b, _ := strconv.ParseUint(h[4:6], 16, 8)
		return fmt.Sprintf("38;2;%d;%d;%d", r, g, b)
	}
	return "37"
}

type Text struct {
	Out   io.Writer
	Color bool
}

func (t *Text) cell(tile combat.Tile) string {
	if !t.Color {
		if !tile.Occupied {
			if m, ok := layerMark[tile.Layer]; ok {
				return m
			}
		}
		return tile.Glyph
	}
	var codes []string
	if bg, ok := layerBG[tile.Layer]; ok {
		codes = append(codes, strconv.Itoa(bg))
	}
	if tile.Occupied {
		codes = append(codes, foreground(tile.Color))
	}
	if len(codes) == 0 {
		return tile.Glyph
	}
	return "\x1b[" + strings.Join(codes, ";") + "m" + tile.Glyph + "\x1b[0m"
}

// Render writes one line per board row, each tile followed by a space.
func (t *Text) Render(rd *combat.RenderData) error {
	w := bufio.NewWriter(t.Out)
	for _, row := range rd.Tiles {
		for _, tile := range row {
			w.WriteString(t.cell(tile))
			w.WriteByte(' ')
		}
		w.WriteByte('\n')
	}
	return w.Flush()
}
