package version

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		want    Version
		wantErr bool
	}{
		{input: "0.1.0", want: Version{0, 1, 0}},
		{input: "v1.2.3", want: Version{1, 2, 3}},
		{input: " 2.0.10 ", want: Version{2, 0, 10}},
		{input: "1.2", wantErr: true},
		{input: "1.x.3", wantErr: true},
		{input: "1.-2.3", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidVersion) {
					t.Fatalf("Parse(%q) error = %v, want ErrInvalidVersion", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b Version
		want int
	}{
		{Version{0, 1, 0}, Version{0, 1, 0}, 0},
		{Version{0, 1, 0}, Version{0, 2, 0}, -1},
		{Version{1, 0, 0}, Version{0, 9, 9}, 1},
		{Version{0, 1, 2}, Version{0, 1, 1}, 1},
	}

	for _, tt := range tests {
		if got := tt.a.Compare(tt.b); got != tt.want {
			t.Errorf("%v.Compare(%v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}

	if !(Version{0, 0, 9}).Less(Current()) {
		t.Errorf("expected 0.0.9 to be less than current %s", String())
	}
}
