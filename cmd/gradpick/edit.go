package main

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/gogpu/gradpick"
	"github.com/gogpu/gradpick/integration/sysclip"
	"github.com/gogpu/gradpick/preset"
)

// Edit actions offered by the session menu.
const (
	actionAdd       = "add"
	actionSelect    = "select"
	actionColor     = "color"
	actionMove      = "move"
	actionRemove    = "remove"
	actionCopy      = "copy"
	actionPaste     = "paste"
	actionEven      = "even"
	actionReverse   = "reverse"
	actionInvert    = "invert"
	actionRandomize = "randomize"
	actionSave      = "save"
	actionQuit      = "quit"
)

// prompter asks the user for the inputs of an edit session.
type prompter interface {
	gradpick.ColorDialog
	Action(p *gradpick.Picker) (string, error)
	Stop(p *gradpick.Picker) (*gradpick.Stop, error)
	Position(current float64) (float64, error)
}

func newEditCmd() *cobra.Command {
	var systemClipboard bool

	cmd := &cobra.Command{
		Use:   "edit <preset>",
		Short: "Edit a preset interactively",
		Long:  "Open a preset in a terminal editor. The file is created on save if it does not exist.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var clip gradpick.Clipboard
			if systemClipboard {
				c := sysclip.New()
				c.AcceptPlainText = true
				clip = c
			}
			s, err := newSession(args[0], huhPrompter{}, clip, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return s.Run()
		},
	}
	cmd.Flags().BoolVar(&systemClipboard, "system-clipboard", false, "copy and paste through the system clipboard")
	return cmd
}

// session is one interactive edit of a preset file.
type session struct {
	path   string
	picker *gradpick.Picker
	ask    prompter
	out    io.Writer
	dirty  bool
}

func newSession(path string, ask prompter, clip gradpick.Clipboard, out io.Writer) (*session, error) {
	opts := []gradpick.Option{gradpick.WithColorDialog(ask)}
	if clip != nil {
		opts = append(opts, gradpick.WithClipboard(clip))
	}
	s := &session{path: path, picker: gradpick.NewPicker(opts...), ask: ask, out: out}

	f, err := preset.Load(path)
	switch {
	case err == nil:
		if err := f.Apply(s.picker); err != nil {
			return nil, err
		}
	case preset.IsNotExist(err):
		fmt.Fprintf(out, "New preset %s\n", path)
	default:
		return nil, err
	}
	s.picker.Subscribe(func(gradpick.Event) { s.dirty = true })
	return s, nil
}

// Run loops until the user quits.
func (s *session) Run() error {
	for {
		s.print()
		action, err := s.ask.Action(s.picker)
		if err != nil {
			return fmt.Errorf("prompt cancelled: %w", err)
		}
		if action == actionQuit {
			if s.dirty {
				fmt.Fprintln(s.out, "Unsaved changes discarded.")
			}
			return nil
		}
		if err := s.do(action); err != nil {
			if !errors.Is(err, gradpick.ErrLimitExceeded) && !errors.Is(err, gradpick.ErrNoSelection) &&
				!errors.Is(err, gradpick.ErrClipboardEmpty) && !errors.Is(err, gradpick.ErrInvalidFormat) {
				return err
			}
			fmt.Fprintf(s.out, "Error: %v\n", err)
		}
	}
}

// do performs one menu action.
func (s *session) do(action string) error {
	p := s.picker
	switch action {
	case actionAdd:
		c, ok, err := s.ask.PickColor(p.LastColor())
		if err != nil || !ok {
			return err
		}
		pos, err := s.ask.Position(0.5)
		if err != nil {
			return err
		}
		st, err := p.AddColor(c, pos)
		if err != nil {
			return err
		}
		p.Select(st)
	case actionSelect:
		st, err := s.ask.Stop(p)
		if err != nil {
			return err
		}
		p.Select(st)
	case actionColor:
		return p.ShowColorDialog()
	case actionMove:
		sel := p.Selected()
		if sel == nil {
			return gradpick.ErrNoSelection
		}
		pos, err := s.ask.Position(sel.Position())
		if err != nil {
			return err
		}
		sel.SetPosition(pos)
	case actionRemove:
		return p.RemoveSelected()
	case actionCopy:
		return p.Copy()
	case actionPaste:
		_, err := p.Paste()
		return err
	case actionEven:
		p.EvenlyAlign()
	case actionReverse:
		p.Reverse()
	case actionInvert:
		p.InvertColors()
	case actionRandomize:
		p.Randomize(true, true)
	case actionSave:
		if err := preset.Save(s.path, preset.FromPicker(p)); err != nil {
			return err
		}
		s.dirty = false
		fmt.Fprintf(s.out, "Saved %s\n", s.path)
	default:
		return fmt.Errorf("unknown action %q", action)
	}
	return nil
}

// print lists the stops in display order and marks the selection.
func (s *session) print() {
	p := s.picker
	fmt.Fprintln(s.out)
	if p.Collection().Len() == 0 {
		fmt.Fprintln(s.out, "  (no stops)")
	}
	for _, st := range stopsByPosition(p) {
		mark := " "
		if st == p.Selected() {
			mark = "*"
		}
		fmt.Fprintf(s.out, "%s %s  %s\n", mark, st.Color().Hex(), stopLabel(p, st))
	}
}

// stopLabel formats a stop like the picker's position label.
func stopLabel(p *gradpick.Picker, st *gradpick.Stop) string {
	return fmt.Sprintf("%s / %dpx", gradpick.FormatPercent(st.Position(), p.Locale()), st.X())
}

// stopsByPosition returns the stops in display order.
func stopsByPosition(p *gradpick.Picker) []*gradpick.Stop {
	stops := p.Collection().Stops()
	slices.SortStableFunc(stops, func(a, b *gradpick.Stop) int {
		return cmp.Compare(a.X(), b.X())
	})
	return stops
}

// huhPrompter asks through terminal forms.
type huhPrompter struct{}

func (huhPrompter) Action(p *gradpick.Picker) (string, error) {
	var action string
	options := []huh.Option[string]{huh.NewOption("Add stop", actionAdd)}
	if p.Collection().Len() > 0 {
		options = append(options, huh.NewOption("Select stop", actionSelect))
	}
	if p.Selected() != nil {
		options = append(options,
			huh.NewOption("Change color", actionColor),
			huh.NewOption("Move", actionMove),
			huh.NewOption("Remove", actionRemove),
			huh.NewOption("Copy color", actionCopy),
		)
	}
	options = append(options,
		huh.NewOption("Paste color", actionPaste),
		huh.NewOption("Space evenly", actionEven),
		huh.NewOption("Reverse", actionReverse),
		huh.NewOption("Invert colors", actionInvert),
		huh.NewOption("Randomize", actionRandomize),
		huh.NewOption("Save", actionSave),
		huh.NewOption("Quit", actionQuit),
	)
	err := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Action").
			Options(options...).
			Value(&action),
	)).Run()
	return action, err
}

func (huhPrompter) Stop(p *gradpick.Picker) (*gradpick.Stop, error) {
	stops := stopsByPosition(p)
	options := make([]huh.Option[int], len(stops))
	for i, st := range stops {
		options[i] = huh.NewOption(fmt.Sprintf("%s  %s", st.Color().Hex(), stopLabel(p, st)), i)
	}
	var idx int
	err := huh.NewForm(huh.NewGroup(
		huh.NewSelect[int]().
			Title("Stop").
			Options(options...).
			Value(&idx),
	)).Run()
	if err != nil {
		return nil, err
	}
	return stops[idx], nil
}

func (huhPrompter) PickColor(seed gradpick.Color) (gradpick.Color, bool, error) {
	text := seed.Hex()
	err := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Color").
			Description("hex (#rrggbb or #rrggbbaa) or a color name").
			Value(&text).
			Validate(validateColor),
	)).Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return gradpick.Color{}, false, nil
	}
	if err != nil {
		return gradpick.Color{}, false, err
	}
	c, err := gradpick.ParseColor(text)
	return c, err == nil, err
}

func (huhPrompter) Position(current float64) (float64, error) {
	text := strconv.FormatFloat(current*100, 'f', -1, 64) + "%"
	err := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Position").
			Description("0-1, or a percentage such as 35%").
			Value(&text).
			Validate(validatePosition),
	)).Run()
	if err != nil {
		return 0, err
	}
	return gradpick.ParsePercent(text)
}

func validateColor(s string) error {
	_, err := gradpick.ParseColor(s)
	return err
}

func validatePosition(s string) error {
	_, err := gradpick.ParsePercent(s)
	return err
}
