package clipboard_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/tabtex/internal/clipboard"
)

type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) ReadText() (string, error) { return f.text, f.err }

func (f *fakeClipboard) WriteText(text string) error {
	if f.err != nil {
		return f.err
	}
	f.text = text
	return nil
}

func TestOSC52WriteText(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, clipboard.OSC52{W: &buf}.WriteText("hi"))
	assert.Equal(t, "\x1b]52;c;aGk=\a", buf.String())
}

func TestOSC52Unsupported(t *testing.T) {
	t.Parallel()
	assert.ErrorIs(t, clipboard.OSC52{}.WriteText("hi"), clipboard.ErrUnsupported)
	_, err := clipboard.OSC52{W: &bytes.Buffer{}}.ReadText()
	assert.ErrorIs(t, err, clipboard.ErrUnsupported)
}

func TestCopy(t *testing.T) {
	t.Parallel()
	errPrimary := errors.New("no xclip")
	errFallback := errors.New("no tty")

	tests := map[string]struct {
		primary      *fakeClipboard
		fallback     *fakeClipboard
		wantPrimary  string
		wantFallback string
		wantErrs     []error
	}{
		"primary succeeds": {
			primary:     &fakeClipboard{},
			fallback:    &fakeClipboard{},
			wantPrimary: "text",
		},
		"falls back": {
			primary:      &fakeClipboard{err: errPrimary},
			fallback:     &fakeClipboard{},
			wantFallback: "text",
		},
		"both fail": {
			primary:  &fakeClipboard{err: errPrimary},
			fallback: &fakeClipboard{err: errFallback},
			wantErrs: []error{errPrimary, errFallback},
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			err := clipboard.Copy(tt.primary, tt.fallback, "text")
			if len(tt.wantErrs) == 0 {
				require.NoError(t, err)
			}
			for _, want := range tt.wantErrs {
				assert.ErrorIs(t, err, want)
			}
			assert.Equal(t, tt.wantPrimary, tt.primary.text)
			assert.Equal(t, tt.wantFallback, tt.fallback.text)
		})
	}
}

func TestCopyWithoutFallback(t *testing.T) {
	t.Parallel()
	errPrimary := errors.New("no xclip")
	err := clipboard.Copy(&fakeClipboard{err: errPrimary}, nil, "text")
	require.ErrorIs(t, err, errPrimary)
	assert.Contains(t, err.Error(), "copy: ")
}

func TestCopyFallsBackToOSC52(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := clipboard.Copy(&fakeClipboard{err: clipboard.ErrUnsupported}, clipboard.OSC52{W: &buf}, "hi")
	require.NoError(t, err)
	assert.Equal(t, "\x1b]52;c;aGk=\a", buf.String())
}
