package main

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/gogpu/edgepipe"
	"github.com/gogpu/edgepipe/internal/image"
)

// modeFlag is a pflag.Value for the magnitude mode.
type modeFlag struct {
	mode edgepipe.Mode
}

var _ pflag.Value = (*modeFlag)(nil)

func (f *modeFlag) String() string { return f.mode.String() }
func (f *modeFlag) Type() string   { return "mode" }

func (f *modeFlag) Set(s string) error {
	m, err := edgepipe.ParseMode(s)
	if err != nil {
		return err
	}
	f.mode = m
	return nil
}

// formatFlag is a pflag.Value for the output encoding.
type formatFlag struct {
	format image.Format
}

var _ pflag.Value = (*formatFlag)(nil)

func (f *formatFlag) String() string { return f.format.String() }
func (f *formatFlag) Type() string   { return "format" }

func (f *formatFlag) Set(s string) error {
	v := image.ParseFormat(s)
	if v == image.FormatUnknown {
		return fmt.Errorf("%w: %q", image.ErrUnsupportedFormat, s)
	}
	f.format = v
	return nil
}
