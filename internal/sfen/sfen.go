// Package sfen implements SFEN ("Skewb FEN"), a compact textual notation
// for Skewb states. An SFEN string has three fields separated by '/':
//
//	centers/corners/rotations
//
// e.g. the solved state is "012345/01234567/00000000". The centers field
// lists the facelet at each of the six center positions, the corners
// field the cubie at each of the eight corner positions, and the
// rotations field each corner's rotation (0-2). Center facelets may also
// be written as color letters (O R Y W G B for facelets 0-5), so the
// solved centers are equally "ORYWGB".
package sfen

import (
	"fmt"
	"strings"
)

// State represents a Skewb state as carried by an SFEN string.
type State struct {
	CenterPos [6]uint8
	CornerPos [8]uint8
	CornerRot [8]uint8
}

// centerColors maps center facelets to their color letters, in the fixed
// frame: bottom orange, top red, back-left yellow, front-right white,
// back-right green, front-left blue.
var centerColors = [6]byte{'O', 'R', 'Y', 'W', 'G', 'B'}

// String returns the SFEN string in digit form.
func (state *State) String() string {
	var sb strings.Builder

	for _, c := range state.CenterPos {
		sb.WriteByte('0' + c)
	}
	sb.WriteString("/")
	for _, c := range state.CornerPos {
		sb.WriteByte('0' + c)
	}
	sb.WriteString("/")
	for _, r := range state.CornerRot {
		sb.WriteByte('0' + r)
	}

	return sb.String()
}

// ColorString returns the SFEN string with the centers field rendered as
// color letters.
func (state *State) ColorString() string {
	var sb strings.Builder

	for _, c := range state.CenterPos {
		sb.WriteByte(centerColors[c])
	}
	sb.WriteString("/")
	for _, c := range state.CornerPos {
		sb.WriteByte('0' + c)
	}
	sb.WriteString("/")
	for _, r := range state.CornerRot {
		sb.WriteByte('0' + r)
	}

	return sb.String()
}

// Parse parses an SFEN string into a State.
func Parse(sfenStr string) (*State, error) {
	parts := strings.Split(strings.TrimSpace(sfenStr), "/")
	if len(parts) != 3 {
		return nil, fmt.Errorf("invalid SFEN format: expected 'centers/corners/rotations', got '%s'", sfenStr)
	}

	state := &State{}

	if err := parseCenters(parts[0], &state.CenterPos); err != nil {
		return nil, fmt.Errorf("invalid centers field '%s': %v", parts[0], err)
	}
	if err := parseCorners(parts[1], &state.CornerPos); err != nil {
		return nil, fmt.Errorf("invalid corners field '%s': %v", parts[1], err)
	}
	if err := parseRotations(parts[2], &state.CornerRot); err != nil {
		return nil, fmt.Errorf("invalid rotations field '%s': %v", parts[2], err)
	}

	return state, nil
}

// parseCenters parses the centers field, accepting digits or color
// letters, and requires a permutation of the six facelets.
func parseCenters(field string, out *[6]uint8) error {
	if len(field) != 6 {
		return fmt.Errorf("expected 6 characters, got %d", len(field))
	}

	var seen [6]bool
	for i := 0; i < 6; i++ {
		c, err := parseCenterFacelet(field[i])
		if err != nil {
			return err
		}
		if seen[c] {
			return fmt.Errorf("facelet %d appears twice", c)
		}
		seen[c] = true
		out[i] = c
	}

	return nil
}

// parseCenterFacelet converts a digit or color letter to a facelet.
func parseCenterFacelet(ch byte) (uint8, error) {
	if ch >= '0' && ch <= '5' {
		return ch - '0', nil
	}
	for facelet, letter := range centerColors {
		if ch == letter {
			return uint8(facelet), nil
		}
	}
	return 0, fmt.Errorf("unknown center facelet '%c'", ch)
}

// parseCorners parses the corners field and requires a permutation of the
// eight cubies with cubie 0 at the fixed corner position 0.
func parseCorners(field string, out *[8]uint8) error {
	if len(field) != 8 {
		return fmt.Errorf("expected 8 digits, got %d", len(field))
	}

	var seen [8]bool
	for i := 0; i < 8; i++ {
		ch := field[i]
		if ch < '0' || ch > '7' {
			return fmt.Errorf("invalid corner digit '%c'", ch)
		}
		c := ch - '0'
		if seen[c] {
			return fmt.Errorf("cubie %d appears twice", c)
		}
		seen[c] = true
		out[i] = c
	}

	if out[0] != 0 {
		return fmt.Errorf("corner position 0 is the fixed back-bottom corner and must hold cubie 0, got %d", out[0])
	}

	return nil
}

// parseRotations parses the rotations field.
func parseRotations(field string, out *[8]uint8) error {
	if len(field) != 8 {
		return fmt.Errorf("expected 8 digits, got %d", len(field))
	}

	for i := 0; i < 8; i++ {
		ch := field[i]
		if ch < '0' || ch > '2' {
			return fmt.Errorf("invalid rotation digit '%c', want 0-2", ch)
		}
		out[i] = ch - '0'
	}

	return nil
}
