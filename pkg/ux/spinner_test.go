// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package ux

import (
	"errors"
	"strings"
	"testing"
	"time"
)

// =============================================================================
// Constructor Tests
// =============================================================================

func TestNewSpinner(t *testing.T) {
	s := NewSpinner("working")
	if s == nil {
		t.Fatal("NewSpinner returned nil")
	}
	if s.message != "working" {
		t.Errorf("expected message 'working', got %q", s.message)
	}
	if s.spinType != SpinnerDots {
		t.Errorf("expected default SpinnerDots, got %v", s.spinType)
	}
}

func TestSpinner_WithType(t *testing.T) {
	s := NewSpinner("working").WithType(SpinnerCompass)
	if s.spinType != SpinnerCompass {
		t.Errorf("expected SpinnerCompass, got %v", s.spinType)
	}
}

func TestSpinnerFrames_AllTypesDefined(t *testing.T) {
	for _, st := range []SpinnerType{SpinnerDots, SpinnerCompass} {
		frames, ok := spinnerFrames[st]
		if !ok || len(frames) == 0 {
			t.Errorf("spinner type %v has no frames", st)
		}
	}
}

// =============================================================================
// Machine Mode Tests
// =============================================================================

func TestSpinner_MachineMode(t *testing.T) {
	orig := GetPersonality()
	defer SetPersonality(orig)

	SetPersonalityLevel(PersonalityMachine)

	s := NewSpinner("expanding day 3")
	output := captureStdout(func() {
		s.Start()
	})

	if output != "PROGRESS: expanding day 3\n" {
		t.Errorf("expected single progress line, got %q", output)
	}

	// Stop must return promptly even though no animation goroutine ran
	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop hung in machine mode")
	}
}

func TestSpinner_MachineStartThenLevelChange(t *testing.T) {
	orig := GetPersonality()
	defer SetPersonality(orig)

	SetPersonalityLevel(PersonalityMachine)
	s := NewSpinner("working")
	captureStdout(func() { s.Start() })

	// Changing personality after Start must not make Stop block
	SetPersonalityLevel(PersonalityFull)
	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop hung after personality change")
	}
}

// =============================================================================
// Animation Tests
// =============================================================================

func TestSpinner_StartStop(t *testing.T) {
	orig := GetPersonality()
	defer SetPersonality(orig)

	SetPersonalityLevel(PersonalityFull)

	s := NewSpinner("computing")
	output := captureStdout(func() {
		s.Start()
		time.Sleep(200 * time.Millisecond)
		s.Stop()
	})

	if !strings.Contains(output, "computing") {
		t.Errorf("expected spinner message in output, got %q", output)
	}
}

func TestSpinner_DoubleStart(t *testing.T) {
	orig := GetPersonality()
	defer SetPersonality(orig)

	SetPersonalityLevel(PersonalityFull)

	s := NewSpinner("once")
	captureStdout(func() {
		s.Start()
		s.Start() // second Start is a no-op
		time.Sleep(100 * time.Millisecond)
		s.Stop()
	})
}

func TestSpinner_StopWithoutStart(t *testing.T) {
	s := NewSpinner("never started")
	s.Stop() // must not panic or block
}

func TestSpinner_UpdateMessage(t *testing.T) {
	orig := GetPersonality()
	defer SetPersonality(orig)

	SetPersonalityLevel(PersonalityFull)

	s := NewSpinner("day 1")
	output := captureStdout(func() {
		s.Start()
		time.Sleep(120 * time.Millisecond)
		s.UpdateMessage("day 2")
		time.Sleep(120 * time.Millisecond)
		s.Stop()
	})

	if !strings.Contains(output, "day 2") {
		t.Errorf("expected updated message in output, got %q", output)
	}
}

// =============================================================================
// Stop Variants Tests
// =============================================================================

func TestSpinner_StopWithSuccess(t *testing.T) {
	orig := GetPersonality()
	defer SetPersonality(orig)

	SetPersonalityLevel(PersonalityMachine)

	s := NewSpinner("finishing")
	output := captureStdout(func() {
		s.Start()
		s.StopWithSuccess("all done")
	})

	if !strings.Contains(output, "OK: all done") {
		t.Errorf("expected success line, got %q", output)
	}
}

func TestSpinner_StopWithError(t *testing.T) {
	orig := GetPersonality()
	defer SetPersonality(orig)

	SetPersonalityLevel(PersonalityMachine)

	s := NewSpinner("finishing")
	errOut := captureStderr(func() {
		captureStdout(func() {
			s.Start()
			s.StopWithError("went wrong")
		})
	})

	if !strings.Contains(errOut, "ERROR: went wrong") {
		t.Errorf("expected error line, got %q", errOut)
	}
}

// =============================================================================
// WithSpinner Tests
// =============================================================================

func TestWithSpinner_Success(t *testing.T) {
	orig := GetPersonality()
	defer SetPersonality(orig)

	SetPersonalityLevel(PersonalityMachine)

	called := false
	var err error
	captureStdout(func() {
		err = WithSpinner("quick job", func() error {
			called = true
			return nil
		})
	})

	if err != nil {
		t.Errorf("expected nil error, got %v", err)
	}
	if !called {
		t.Error("expected wrapped function to run")
	}
}

func TestWithSpinner_Error(t *testing.T) {
	orig := GetPersonality()
	defer SetPersonality(orig)

	SetPersonalityLevel(PersonalityMachine)

	fail := errors.New("boom")
	var err error
	captureStderr(func() {
		captureStdout(func() {
			err = WithSpinner("doomed job", func() error {
				return fail
			})
		})
	})

	if !errors.Is(err, fail) {
		t.Errorf("expected wrapped error returned, got %v", err)
	}
}
