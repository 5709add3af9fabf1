package view

import (
	"errors"

	"github.com/opentui/textengine/grapheme"
	"github.com/opentui/textengine/width"
)

// ErrInvalidLine is returned for a visual row outside the built virtual
// line list.
var ErrInvalidLine = errors.New("view: invalid line")

// LineCells encodes visual line visualRow's content into grid cells.
// Single-column, single-scalar clusters encode directly; everything else
// (wide CJK, emoji-presentation clusters, combining sequences) interns
// its bytes in the buffer's grapheme pool and encodes as a start cell
// followed by continuation cells carrying the same pool id. Tabs expand
// to blank cells up to the next tab stop. Each start cell holds one pool
// reference; callers return it with ReleaseLineCells when the cells are
// discarded.
func (v *View) LineCells(visualRow int) ([]grapheme.Cell, error) {
	v.ensureBuilt()
	if visualRow < 0 || visualRow >= len(v.vlines) {
		return nil, ErrInvalidLine
	}
	pool := v.buf.Pool()
	vl := v.vlines[visualRow]
	cells := make([]grapheme.Cell, 0, vl.Width)
	col := vl.SourceColOffset
	for _, ch := range vl.Chunks {
		for _, cluster := range width.GraphemeClusters(ch.Text) {
			if cluster == "\t" {
				next := width.TabStop(col, v.cfg.TabSize())
				for ; col < next; col++ {
					cells = append(cells, grapheme.EncodeScalar(' '))
				}
				continue
			}
			w := width.ClusterWidth(cluster, v.cfg)
			if w < 1 {
				w = 1
			}
			runes := []rune(cluster)
			if w == 1 && len(runes) == 1 {
				cells = append(cells, grapheme.EncodeScalar(runes[0]))
				col++
				continue
			}
			id, err := pool.Alloc([]byte(cluster))
			if err != nil {
				return nil, err
			}
			right := uint8(w - 1)
			cells = append(cells, grapheme.EncodeGraphemeStart(id, right))
			for i := 1; i < w; i++ {
				cells = append(cells, grapheme.EncodeContinuation(id, uint8(i), uint8(w-1-i)))
			}
			col += w
		}
	}
	return cells, nil
}

// ReleaseLineCells returns the pool references LineCells took: one per
// start cell. Continuation cells share their start cell's reference and
// release nothing.
func (v *View) ReleaseLineCells(cells []grapheme.Cell) {
	pool := v.buf.Pool()
	for _, c := range cells {
		if kind, _, id, _, _ := c.Decode(); kind == grapheme.KindGraphemeStart {
			_ = pool.Decref(id)
		}
	}
}

// CellCluster resolves an encoded cell back to the text it draws. A stale
// id (the pool slot was freed and reused since the cell was encoded)
// reports ok=false; display code treats the cell as not-present and
// re-encodes the line rather than drawing another cluster's bytes.
func (v *View) CellCluster(c grapheme.Cell) (string, bool) {
	kind, r, id, _, _ := c.Decode()
	if kind == grapheme.KindScalar {
		return string(r), true
	}
	b, err := v.buf.Pool().Get(id)
	if err != nil {
		return "", false
	}
	return string(b), true
}
