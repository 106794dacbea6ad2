// Package sysclip connects the picker's copy and paste to the system
// clipboard.
//
// The system clipboard holds a single text entry, so the format tag is
// stored as a prefix: a copied stop color reads "gradpick:Color:#ff8000".
package sysclip

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/gogpu/gradpick"
)

// Prefix starts every payload written by Clipboard.
const Prefix = "gradpick:"

// ErrUnsupported is returned when no clipboard utility is available, for
// example xclip, xsel or wl-clipboard on Linux.
var ErrUnsupported = errors.New("sysclip: system clipboard not available")

// backend is the part of github.com/atotto/clipboard the adapter uses.
type backend interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

type atottoBackend struct{}

func (atottoBackend) ReadAll() (string, error)   { return clipboard.ReadAll() }
func (atottoBackend) WriteAll(text string) error { return clipboard.WriteAll(text) }

// Clipboard implements gradpick.Clipboard on the system clipboard.
type Clipboard struct {
	sys backend

	// AcceptPlainText makes Text return untagged clipboard text as is, so
	// a hex color copied from another program can be pasted.
	AcceptPlainText bool
}

var _ gradpick.Clipboard = (*Clipboard)(nil)

// New returns a system clipboard adapter.
func New() *Clipboard {
	return &Clipboard{sys: atottoBackend{}}
}

// Supported reports whether the platform clipboard can be used.
func Supported() bool {
	return !clipboard.Unsupported
}

// SetText implements gradpick.Clipboard.
func (c *Clipboard) SetText(tag, text string) error {
	if !Supported() && c.usesSystem() {
		return ErrUnsupported
	}
	if err := c.sys.WriteAll(encode(tag, text)); err != nil {
		return fmt.Errorf("sysclip: write: %w", err)
	}
	return nil
}

// Text implements gradpick.Clipboard. Text stored under another tag, or
// by another program, reads as empty unless AcceptPlainText is set.
func (c *Clipboard) Text(tag string) (string, error) {
	if !Supported() && c.usesSystem() {
		return "", ErrUnsupported
	}
	raw, err := c.sys.ReadAll()
	if err != nil {
		return "", fmt.Errorf("sysclip: read: %w", err)
	}
	gotTag, text, ok := decode(raw)
	switch {
	case ok && gotTag == tag:
		return text, nil
	case !ok && c.AcceptPlainText:
		return raw, nil
	default:
		gradpick.Logger().Debug("sysclip: clipboard holds other content", "tag", tag)
		return "", nil
	}
}

func (c *Clipboard) usesSystem() bool {
	_, ok := c.sys.(atottoBackend)
	return ok
}

func encode(tag, text string) string {
	return Prefix + tag + ":" + text
}

// decode splits a payload written by encode.
func decode(raw string) (tag, text string, ok bool) {
	rest, found := strings.CutPrefix(raw, Prefix)
	if !found {
		return "", "", false
	}
	return strings.Cut(rest, ":")
}
