package view

// measureKey identifies a cached measurement result. The view is already
// scoped to one buffer, so the buffer pointer need not be part of the key.
type measureKey struct {
	epoch    uint64
	width    int
	wrapMode WrapMode
}

type measureResult struct {
	lineCount int
	maxWidth  int
}

// Dimensions is the result of measure_for_dimensions: how many virtual
// lines the content occupies at a given width, and the widest of them.
type Dimensions struct {
	LineCount int
	MaxWidth  int
}

// MeasureForDimensions returns the virtual line count and max width the
// content would occupy when wrapped at width under the view's current wrap
// mode, consulting (and populating) a cache keyed on the buffer's content
// epoch, width, and wrap mode so repeated layout passes at a stable width
// avoid rebuilding the virtual line list.
func (v *View) MeasureForDimensions(measureWidth int) Dimensions {
	if measureWidth < 1 {
		measureWidth = 1
	}
	key := measureKey{epoch: v.buf.Epoch(), width: measureWidth, wrapMode: v.wrapMode}
	if cached, ok := v.measureCache[key]; ok {
		return Dimensions{LineCount: cached.lineCount, MaxWidth: cached.maxWidth}
	}

	vlines, _ := buildVirtualLines(v.buf, v.cfg, v.wrapMode, measureWidth, v.truncate)
	maxWidth := 0
	for _, vl := range vlines {
		if vl.Width > maxWidth {
			maxWidth = vl.Width
		}
	}
	result := measureResult{lineCount: len(vlines), maxWidth: maxWidth}

	// A fresh epoch invalidates every entry recorded under an older one;
	// an unbounded cache would otherwise grow for the lifetime of a view
	// that's re-measured at many widths across many edits.
	for k := range v.measureCache {
		if k.epoch != key.epoch {
			delete(v.measureCache, k)
		}
	}
	v.measureCache[key] = result
	return Dimensions{LineCount: result.lineCount, MaxWidth: result.maxWidth}
}
