package main

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/martinemde/markupdom/domparser"
)

// cliOptions collects the settings shared by all commands.
type cliOptions struct {
	Format             string `flag:"format" validate:"omitempty,oneof=tree json yaml html"`
	MaxDepth           int    `flag:"max-depth" validate:"gte=0,lte=100000"`
	IgnoreRootComments bool   `flag:"ignore-root-comments"`
	Minify             bool   `flag:"minify"`
	Verbose            bool   `flag:"verbose"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("flag")
	})
	return v
}

// loadOptions reads the shared settings from viper.
func loadOptions() cliOptions {
	return cliOptions{
		MaxDepth:           viper.GetInt("max_depth"),
		IgnoreRootComments: viper.GetBool("ignore_root_comments"),
		Verbose:            viper.GetBool("verbose"),
	}
}

// check validates the options and reports each failing flag.
func (o cliOptions) check() error {
	err := validate.Struct(o)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msg := fmt.Sprintf("--%s: invalid value %v (%s", fe.Field(), fe.Value(), fe.Tag())
		if fe.Param() != "" {
			msg += " " + fe.Param()
		}
		msgs = append(msgs, msg+")")
	}
	return fmt.Errorf("invalid options: %s", strings.Join(msgs, "; "))
}

func (o cliOptions) parserOptions() domparser.Options {
	return domparser.Options{
		MaxDepth:           o.MaxDepth,
		IgnoreRootComments: o.IgnoreRootComments,
	}
}

// logf writes a progress line to w when verbose output is on.
func (o cliOptions) logf(w io.Writer, format string, args ...any) {
	if !o.Verbose {
		return
	}
	fmt.Fprintf(w, "[markupdom] "+format+"\n", args...)
}
