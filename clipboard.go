package gradpick

import (
	"fmt"
	"strings"
	"sync"
)

// ClipboardTag is the format name a stop color is stored under.
const ClipboardTag = "Color"

// Clipboard stores text under a format tag.
type Clipboard interface {
	SetText(tag, text string) error
	// Text returns the text stored under tag. A missing entry is returned
	// as an empty string, not an error.
	Text(tag string) (string, error)
}

// MemoryClipboard is an in-process Clipboard. The zero value is an empty
// clipboard. It is safe for concurrent use.
type MemoryClipboard struct {
	mu   sync.Mutex
	data map[string]string
}

// NewMemoryClipboard returns an empty clipboard.
func NewMemoryClipboard() *MemoryClipboard {
	return &MemoryClipboard{data: make(map[string]string)}
}

// SetText implements Clipboard. Storing replaces every other tag, like a
// system clipboard does.
func (m *MemoryClipboard) SetText(tag, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		m.data = make(map[string]string)
	}
	clear(m.data)
	m.data[tag] = text
	return nil
}

// Text implements Clipboard.
func (m *MemoryClipboard) Text(tag string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data[tag], nil
}

// EncodeClipboardColor formats a color for the clipboard.
func EncodeClipboardColor(c Color) string {
	return c.Hex()
}

// DecodeClipboardColor parses a clipboard payload. Empty text returns
// ErrClipboardEmpty; anything else that is not a color wraps
// ErrInvalidFormat.
func DecodeClipboardColor(text string) (Color, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Color{}, ErrClipboardEmpty
	}
	c, err := ParseColor(text)
	if err != nil {
		return Color{}, fmt.Errorf("clipboard: %w", err)
	}
	return c, nil
}
