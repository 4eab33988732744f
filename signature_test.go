package fileformat

import "testing"

func TestSignaturePartMatches(t *testing.T) {
	p := part(4, "ftyp")

	tests := []struct {
		name string
		data []byte
		want bool
	}{
		{name: "exact fit", data: []byte("\x00\x00\x00\x00ftyp"), want: true},
		{name: "trailing bytes", data: []byte("\x00\x00\x00\x00ftypisom"), want: true},
		{name: "one byte short", data: []byte("\x00\x00\x00\x00fty"), want: false},
		{name: "wrong bytes", data: []byte("\x00\x00\x00\x00moov"), want: false},
		{name: "shorter than offset", data: []byte("\x00\x00"), want: false},
		{name: "empty", data: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.matches(tt.data); got != tt.want {
				t.Errorf("matches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSignatureRequiresAllParts(t *testing.T) {
	s := sig(part(0, "RIFF"), part(8, "WAVE"))

	if !s.matches(place([]byte("RIFF"), 8, "WAVE")) {
		t.Error("both parts present should match")
	}
	if s.matches([]byte("RIFF\x00\x00\x00\x00")) {
		t.Error("missing second part should not match")
	}
	if s.matches(place(make([]byte, 4), 8, "WAVE")) {
		t.Error("missing first part should not match")
	}
}

func TestRuleMatchesAnySignature(t *testing.T) {
	r := signatureRule{
		format: GraphicsInterchangeFormat,
		signatures: []signature{
			sig(part(0, "GIF87a")),
			sig(part(0, "GIF89a")),
		},
	}

	if !r.matches([]byte("GIF87a")) || !r.matches([]byte("GIF89a")) {
		t.Error("either alternative should match")
	}
	if r.matches([]byte("GIF88a")) {
		t.Error("unknown variant should not match")
	}
}

// A part beyond the end of a large but insufficient buffer must fail
// cleanly, not panic.
func TestHighOffsetPartShortBuffer(t *testing.T) {
	p := part(0x9001, "CD001")
	data := make([]byte, 0x9001+4) // one byte short of the full pattern
	if p.matches(data) {
		t.Error("short buffer should not match")
	}
}
