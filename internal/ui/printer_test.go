package ui

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

type MockMarkdownRenderer struct {
	RenderFunc func(string, int) (string, error)
}

func (m *MockMarkdownRenderer) Render(content string, width int) (string, error) {
	if m.RenderFunc != nil {
		return m.RenderFunc(content, width)
	}
	return content, nil
}

func TestFatal_PlainWhenNotTerminal(t *testing.T) {
	var stdout, stderr bytes.Buffer
	p := NewPrinterWithOptions(&stdout, &stderr, false, false, nil)

	p.Fatal(errors.New("could not stat file at 'x': no such file or directory"))

	assert.Equal(t, "fatal error: could not stat file at 'x': no such file or directory\n", stderr.String())
	assert.Empty(t, stdout.String())
}

func TestFatal_StyledOnTerminal(t *testing.T) {
	var stderr bytes.Buffer
	p := NewPrinterWithOptions(&bytes.Buffer{}, &stderr, false, true, nil)

	p.Fatal(errors.New("boom"))

	assert.Contains(t, stderr.String(), "fatal error:")
	assert.Contains(t, stderr.String(), " boom\n")
}

func TestHelp_PlainDestination(t *testing.T) {
	var stdout, stderr bytes.Buffer
	renderCalled := false
	renderer := &MockMarkdownRenderer{RenderFunc: func(string, int) (string, error) {
		renderCalled = true
		return "", nil
	}}
	p := NewPrinterWithOptions(&stdout, &stderr, false, false, renderer)

	p.Help(false)
	p.Help(true)

	assert.False(t, renderCalled)
	assert.Equal(t, PlainHelp, stdout.String())
	assert.Equal(t, PlainHelp, stderr.String())
}

func TestHelp_RenderedOnTerminal(t *testing.T) {
	var stdout bytes.Buffer
	var gotWidth int
	renderer := &MockMarkdownRenderer{RenderFunc: func(content string, width int) (string, error) {
		gotWidth = width
		return "RENDERED\n", nil
	}}
	p := NewPrinterWithOptions(&stdout, &bytes.Buffer{}, true, false, renderer)

	p.Help(false)

	assert.Equal(t, "RENDERED\n", stdout.String())
	assert.Equal(t, helpWidth, gotWidth)
}

func TestHelp_RenderFailureFallsBackToPlain(t *testing.T) {
	var stdout bytes.Buffer
	renderer := &MockMarkdownRenderer{RenderFunc: func(string, int) (string, error) {
		return "", errors.New("no style")
	}}
	p := NewPrinterWithOptions(&stdout, &bytes.Buffer{}, true, false, renderer)

	p.Help(false)

	assert.Equal(t, PlainHelp, stdout.String())
}

func TestVersion(t *testing.T) {
	var stdout bytes.Buffer
	p := NewPrinterWithOptions(&stdout, &bytes.Buffer{}, false, false, nil)

	p.Version()

	assert.Equal(t, "revf v0.1.0 (+https://github.com/Cyclone1070/revf)\n", stdout.String())
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))

	f, err := os.CreateTemp(t.TempDir(), "notatty")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	assert.False(t, IsTerminal(f))
}

func TestGlamourRenderer_ContainsText(t *testing.T) {
	out, err := GlamourRenderer{}.Render(markdownHelp, helpWidth)

	assert.NoError(t, err)
	assert.Contains(t, out, "Reverse the content of files.")
}
