package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig"

	"github.com/birdayz/felt/pkg/felt"
)

// Result is a conversion outcome that can be printed in every OutputFormat.
type Result interface {
	// Text is the value shown by the default and raw formats.
	Text() string
	// HexText is the value shown by the hex format.
	HexText() string
}

// EncodeResult is the outcome of string_to_felt.
type EncodeResult struct {
	Input     string   `json:"input"`
	Felt      string   `json:"felt"`
	Hex       string   `json:"hex"`
	Fragments []string `json:"fragments"`
	Padded    bool     `json:"padded"`
}

// NewEncodeResult builds the printable form of an encoded felt.
func NewEncodeResult(input string, f *big.Int, padded bool) *EncodeResult {
	return &EncodeResult{
		Input:     input,
		Felt:      f.String(),
		Hex:       felt.Hex(f),
		Fragments: felt.Fragments(input, padded),
		Padded:    padded,
	}
}

func (r *EncodeResult) Text() string    { return r.Felt }
func (r *EncodeResult) HexText() string { return r.Hex }

// DecodeResult is the outcome of felt_to_string.
type DecodeResult struct {
	Felts  []string `json:"felts"`
	Hex    []string `json:"hex"`
	String string   `json:"string"`
	Padded bool     `json:"padded"`
}

// NewDecodeResult builds the printable form of decoded felts.
func NewDecodeResult(felts []*big.Int, s string, padded bool) *DecodeResult {
	r := &DecodeResult{
		Felts:  make([]string, len(felts)),
		Hex:    make([]string, len(felts)),
		String: s,
		Padded: padded,
	}
	for i, f := range felts {
		r.Felts[i] = f.String()
		r.Hex[i] = felt.Hex(f)
	}
	return r
}

func (r *DecodeResult) Text() string    { return r.String }
func (r *DecodeResult) HexText() string { return strings.Join(r.Hex, " ") }

// PrintResult writes r to the output stream in the selected format.
func (a *App) PrintResult(r Result) error {
	switch a.Output {
	case OutputFormatRaw:
		fmt.Fprintln(a.OutWriter, r.Text())
	case OutputFormatHex:
		fmt.Fprintln(a.OutWriter, r.HexText())
	case OutputFormatJSON:
		b, err := json.Marshal(r)
		if err != nil {
			return fmt.Errorf("could not encode JSON: %w", err)
		}
		if pretty, err := a.JSONFmt.Format(b); err == nil {
			b = pretty
		}
		_, _ = a.ColorableOut.Write(b)
		fmt.Fprintln(a.OutWriter)
	case OutputFormatTemplate:
		out, err := RenderTemplate(a.Template, r)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.OutWriter, out)
	default:
		fmt.Fprintf(a.OutWriter, "Felt representation: %s\n", r.Text())
	}
	return nil
}

// RenderTemplate executes a text/template with sprig functions against r.
func RenderTemplate(text string, r Result) (string, error) {
	if text == "" {
		return "", fmt.Errorf("--template is required with --output template")
	}
	tmpl, err := template.New("output").Funcs(sprig.TxtFuncMap()).Parse(text)
	if err != nil {
		return "", fmt.Errorf("invalid template: %w", err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, r); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}
