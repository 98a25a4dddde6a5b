package app

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func newTestApp(format OutputFormat) (*App, *bytes.Buffer) {
	a := New()
	var out bytes.Buffer
	a.OutWriter = &out
	a.ColorableOut = &out
	a.ErrWriter = &out
	a.JSONFmt.DisabledColor = true
	a.Log.SetOutput(&out)
	a.Log.SetLevel(logrus.WarnLevel)
	a.Output = format
	return a, &out
}

func TestPrintResult(t *testing.T) {
	enc := NewEncodeResult("Hi", big.NewInt(0x4869), false)
	dec := NewDecodeResult([]*big.Int{big.NewInt(0x48), big.NewInt(0x69)}, "Hi", false)

	tests := []struct {
		name   string
		format OutputFormat
		result Result
		want   string
	}{
		{name: "default encode", format: OutputFormatDefault, result: enc, want: "Felt representation: 18537\n"},
		{name: "default decode", format: OutputFormatDefault, result: dec, want: "Felt representation: Hi\n"},
		{name: "raw encode", format: OutputFormatRaw, result: enc, want: "18537\n"},
		{name: "hex encode", format: OutputFormatHex, result: enc, want: "0x4869\n"},
		{name: "raw decode", format: OutputFormatRaw, result: dec, want: "Hi\n"},
		{name: "hex decode prints the felts", format: OutputFormatHex, result: dec, want: "0x48 0x69\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, out := newTestApp(tt.format)
			require.NoError(t, a.PrintResult(tt.result))
			require.Equal(t, tt.want, out.String())
		})
	}
}

func TestPrintResult_JSON(t *testing.T) {
	a, out := newTestApp(OutputFormatJSON)
	require.NoError(t, a.PrintResult(NewEncodeResult("ĀA", big.NewInt(0x10041), false)))
	require.JSONEq(t, `{"input":"ĀA","felt":"65601","hex":"0x10041","fragments":["100","41"],"padded":false}`, out.String())
}

func TestPrintResult_Template(t *testing.T) {
	a, out := newTestApp(OutputFormatTemplate)
	a.Template = `{{ .String | quote }} from {{ join "," .Hex }}`
	require.NoError(t, a.PrintResult(NewDecodeResult([]*big.Int{big.NewInt(0x41), big.NewInt(0x42)}, "AB", false)))
	require.Equal(t, "\"AB\" from 0x41,0x42\n", out.String())
}

func TestRenderTemplate_Errors(t *testing.T) {
	r := NewEncodeResult("A", big.NewInt(65), false)

	_, err := RenderTemplate("", r)
	require.Error(t, err)

	_, err = RenderTemplate("{{ .Felt", r)
	require.ErrorContains(t, err, "invalid template")

	_, err = RenderTemplate("{{ .Missing }}", r)
	require.ErrorContains(t, err, "failed to execute template")
}

func TestOutputFormat_Set(t *testing.T) {
	var f OutputFormat
	for _, v := range outputFormats {
		require.NoError(t, f.Set(v))
		require.Equal(t, v, f.String())
	}
	require.Error(t, f.Set("yaml"))
	require.Equal(t, "OutputFormat", f.Type())
}
