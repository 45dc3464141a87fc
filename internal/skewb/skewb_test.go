package skewb

import (
	"strings"
	"testing"
)

func TestNewSkewb(t *testing.T) {
	s := NewSkewb()
	if !s.IsSolved() {
		t.Error("NewSkewb() should be solved initially")
	}
	if s.StateNum() != 0 {
		t.Errorf("solved state number = %d, want 0", s.StateNum())
	}
}

func TestNewSkewbFromPieces(t *testing.T) {
	tests := []struct {
		name      string
		centerPos [6]uint8
		cornerPos [8]uint8
		cornerRot [8]uint8
		wantErr   bool
	}{
		{
			name:      "solved",
			centerPos: [6]uint8{0, 1, 2, 3, 4, 5},
			cornerPos: [8]uint8{0, 1, 2, 3, 4, 5, 6, 7},
			cornerRot: [8]uint8{0, 0, 0, 0, 0, 0, 0, 0},
		},
		{
			name:      "scrambled",
			centerPos: [6]uint8{0, 4, 2, 1, 3, 5},
			cornerPos: [8]uint8{0, 3, 2, 1, 6, 5, 4, 7},
			cornerRot: [8]uint8{0, 1, 2, 1, 1, 2, 0, 2},
		},
		{
			name:      "center facelet out of range",
			centerPos: [6]uint8{0, 1, 2, 3, 4, 6},
			cornerPos: [8]uint8{0, 1, 2, 3, 4, 5, 6, 7},
			cornerRot: [8]uint8{0, 0, 0, 0, 0, 0, 0, 0},
			wantErr:   true,
		},
		{
			name:      "corner cubie out of range",
			centerPos: [6]uint8{0, 1, 2, 3, 4, 5},
			cornerPos: [8]uint8{0, 1, 2, 3, 4, 5, 6, 8},
			cornerRot: [8]uint8{0, 0, 0, 0, 0, 0, 0, 0},
			wantErr:   true,
		},
		{
			name:      "rotation out of range",
			centerPos: [6]uint8{0, 1, 2, 3, 4, 5},
			cornerPos: [8]uint8{0, 1, 2, 3, 4, 5, 6, 7},
			cornerRot: [8]uint8{0, 0, 0, 3, 0, 0, 0, 0},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSkewbFromPieces(tt.centerPos, tt.cornerPos, tt.cornerRot)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewSkewbFromPieces() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if s.CenterPos != tt.centerPos || s.CornerPos != tt.cornerPos || s.CornerRot != tt.cornerRot {
				t.Errorf("NewSkewbFromPieces() did not preserve fields: %v", s)
			}
		})
	}
}

func TestReset(t *testing.T) {
	s := NewSkewb()
	s.ApplyMove(Move{Axis: Up, Clockwise: true})
	s.ApplyMove(Move{Axis: Left, Clockwise: false})
	if s.IsSolved() {
		t.Fatal("state should be scrambled before Reset")
	}

	s.Reset()
	if !s.IsSolved() {
		t.Error("Reset() should restore the solved state")
	}
}

func TestString(t *testing.T) {
	s := NewSkewb()
	got := s.String()
	want := "centerPos: {0, 1, 2, 3, 4, 5}, cornerPos: {0, 1, 2, 3, 4, 5, 6, 7}, cornerRot: {0, 0, 0, 0, 0, 0, 0, 0}"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	s.ApplyMove(Move{Axis: Up, Clockwise: true})
	if !strings.Contains(s.String(), "cornerPos: {0, 1, 7, 3, 4, 2, 6, 5}") {
		t.Errorf("String() after U = %q, missing expected corner field", s.String())
	}
}
