package test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestDummyLogger(t *testing.T) {
	cases := []struct {
		description string
		given       func(*zap.Logger)
		writer      func() io.Writer
		reader      func(io.Writer) string
		output      string
	}{
		{
			"capture logs into a buffer from Zap",
			func(l *zap.Logger) {
				l.Info("test")
			},
			func() io.Writer {
				return &bytes.Buffer{}
			},
			func(w io.Writer) string {
				return w.(*bytes.Buffer).String()
			},
			`test`,
		},
		{
			"capture logs into a buffer redirected from default Go log package",
			func(l *zap.Logger) {
				log.Println("test")
			},
			func() io.Writer {
				return &bytes.Buffer{}
			},
			func(w io.Writer) string {
				return w.(*bytes.Buffer).String()
			},
			`test`,
		},
		{
			"capture logs info a buffer from Zap and default Go log package",
			func(l *zap.Logger) {
				l.Info("test")
				log.Println("test2")
			},
			func() io.Writer {
				return &bytes.Buffer{}
			},
			func(w io.Writer) string {
				return w.(*bytes.Buffer).String()
			},
			"test\ntest2",
		},
		{
			"capture logs from Zap and discard the content",
			func(l *zap.Logger) {
				l.Info("test")
			},
			func() io.Writer {
				return io.Discard
			},
			func(w io.Writer) string {
				return ""
			},
			``,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.description, func(t *testing.T) {
			w := tc.writer()

			actual := DummyLogger(w)

			tc.given(actual)
			s := tc.reader(w)

			assert.NotNil(t, actual)
			assert.IsType(t, &zap.Logger{}, actual)
			assert.Contains(t, s, tc.output)
		})
	}

}

func TestProvider(t *testing.T) {
	t.Parallel()

	cases := []struct {
		description string
		given       func(context.Context, string) (string, error)
		prompts     []string
		want        string
		error       bool
	}{
		{
			"records prompts and echoes them back",
			func(_ context.Context, prompt string) (string, error) {
				return "echo: " + prompt, nil
			},
			[]string{"one", "two"},
			`echo: two`,
			false,
		},
		{
			"returns the configured error",
			func(_ context.Context, _ string) (string, error) {
				return "", errors.New("test")
			},
			[]string{"one"},
			``,
			true,
		},
		{
			"without a generate function set",
			nil,
			[]string{"one"},
			``,
			false,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.description, func(t *testing.T) {
			t.Parallel()

			var (
				actual string
				err    error
			)

			p := NewProvider(tc.given)
			for _, prompt := range tc.prompts {
				actual, err = p.Generate(context.TODO(), prompt)
			}

			assert.Equal(t, tc.prompts, p.Prompts())
			assert.Equal(t, tc.want, actual)
			assert.Equal(t, tc.error, err != nil)
		})
	}
}
