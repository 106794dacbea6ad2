package gradpick

// LayoutMode selects where the gradient preview is drawn relative to the
// stop strip.
type LayoutMode int

const (
	// LayoutNone draws only the stop strip.
	LayoutNone LayoutMode = iota
	// LayoutBackground draws the gradient behind the stop strip.
	LayoutBackground
	// LayoutPercent gives the gradient a percentage of the client height.
	LayoutPercent
	// LayoutFixedSize gives the gradient a fixed height in pixels.
	LayoutFixedSize
)

// String returns the mode name used in preset files.
func (m LayoutMode) String() string {
	switch m {
	case LayoutNone:
		return "none"
	case LayoutBackground:
		return "background"
	case LayoutPercent:
		return "percent"
	case LayoutFixedSize:
		return "fixed"
	default:
		return "unknown"
	}
}

// ParseLayoutMode parses a name produced by LayoutMode.String.
func ParseLayoutMode(s string) (LayoutMode, bool) {
	for m := LayoutNone; m <= LayoutFixedSize; m++ {
		if m.String() == s {
			return m, true
		}
	}
	return LayoutNone, false
}

// hasGradientStrip reports whether the gradient occupies its own band
// above the stops.
func (m LayoutMode) hasGradientStrip() bool {
	return m == LayoutPercent || m == LayoutFixedSize
}

// BorderStyle selects the frame drawn around each stop block.
type BorderStyle int

const (
	BorderNone BorderStyle = iota
	BorderFixedSingle
	BorderFixed3D
)

// String returns the style name used in preset files.
func (b BorderStyle) String() string {
	switch b {
	case BorderNone:
		return "none"
	case BorderFixedSingle:
		return "single"
	case BorderFixed3D:
		return "3d"
	default:
		return "unknown"
	}
}

// ParseBorderStyle parses a name produced by BorderStyle.String.
func ParseBorderStyle(s string) (BorderStyle, bool) {
	for b := BorderNone; b <= BorderFixed3D; b++ {
		if b.String() == s {
			return b, true
		}
	}
	return BorderNone, false
}

// Padding is the inset between the client edge and the picker content.
type Padding struct {
	Left, Top, Right, Bottom int
}

// Horizontal returns Left + Right.
func (p Padding) Horizontal() int { return p.Left + p.Right }

// Vertical returns Top + Bottom.
func (p Padding) Vertical() int { return p.Top + p.Bottom }

// Config holds the picker appearance and behavior settings.
type Config struct {
	StopWidth  int
	StopHeight int

	MinimumCount int
	MaximumCount int // 0 means unbounded

	Layout LayoutMode
	// LayoutSize is a percentage for LayoutPercent and pixels for
	// LayoutFixedSize.
	LayoutSize int
	Padding    Padding

	// ArrowSize and BlockSize split a stop glyph vertically. Use
	// SetArrowSize and SetBlockSize to keep their sum at most 1.
	ArrowSize float64
	BlockSize float64

	BorderStyle BorderStyle

	ShowTransparentBackground bool
	TransparentColor1         Color
	TransparentColor2         Color
	TransparentCellSize       int

	GammaCorrection bool

	AllowAddColorByClick    bool
	AllowColorDialog        bool
	AllowDragOutColor       bool
	AllowPickGradientColor  bool
	AllowToHandleKeys       bool
	AllowToHandleMouseWheel bool
	AlwaysShowAddBox        bool
	GrayscaleWhenDisabled   bool
	NotifyOfExceedingLimit  bool
	ShowPosition            bool
}

// DefaultConfig returns the default picker settings.
func DefaultConfig() Config {
	return Config{
		StopWidth:    DefaultStopWidth,
		StopHeight:   DefaultStopHeight,
		MinimumCount: 0,
		MaximumCount: DefaultMaximumCount,

		Layout:     LayoutFixedSize,
		LayoutSize: 10,

		ArrowSize:   0.35,
		BlockSize:   0.65,
		BorderStyle: BorderFixed3D,

		ShowTransparentBackground: true,
		TransparentColor1:         White,
		TransparentColor2:         Silver,
		TransparentCellSize:       4,

		GammaCorrection: true,

		AllowAddColorByClick:    true,
		AllowColorDialog:        true,
		AllowDragOutColor:       true,
		AllowPickGradientColor:  true,
		AllowToHandleKeys:       true,
		AllowToHandleMouseWheel: true,
		GrayscaleWhenDisabled:   true,
		NotifyOfExceedingLimit:  true,
		ShowPosition:            true,
	}
}

// SetArrowSize sets the arrow share of a glyph, shrinking BlockSize when
// the two would exceed 1.
func (c *Config) SetArrowSize(v float64) {
	c.ArrowSize = clamp01(v)
	if c.ArrowSize+c.BlockSize > 1 {
		c.BlockSize = 1 - c.ArrowSize
	}
}

// SetBlockSize sets the block share of a glyph, shrinking ArrowSize when
// the two would exceed 1.
func (c *Config) SetBlockSize(v float64) {
	c.BlockSize = clamp01(v)
	if c.ArrowSize+c.BlockSize > 1 {
		c.ArrowSize = 1 - c.BlockSize
	}
}

// normalized fixes values the picker cannot work with.
func (c Config) normalized() Config {
	if c.StopWidth <= 0 {
		c.StopWidth = 1
	}
	if c.StopHeight < 0 {
		c.StopHeight = 0
	}
	c.MinimumCount = max(c.MinimumCount, 0)
	c.MaximumCount = max(c.MaximumCount, 0)
	if c.MaximumCount > 0 && c.MinimumCount > c.MaximumCount {
		c.MaximumCount = c.MinimumCount
	}
	if c.LayoutSize < 0 {
		c.LayoutSize = 0
	}
	if c.TransparentCellSize <= 0 {
		c.TransparentCellSize = 1
	}
	c.SetArrowSize(c.ArrowSize)
	c.SetBlockSize(c.BlockSize)
	return c
}
