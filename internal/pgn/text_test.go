package pgn

import "testing"

func TestDecodeText(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"utf8", []byte("Zürich"), "Zürich"},
		{"bom", []byte("\xef\xbb\xbf1. e4"), "1. e4"},
		{"windows-1252", []byte("Z\xfcrich \x93q\x94"), "Zürich “q”"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DecodeText(tt.in); got != tt.want {
				t.Fatalf("DecodeText = %q, want %q", got, tt.want)
			}
		})
	}
}
