//-------------------------------------------------------------------------
//
// pgEdge Credit Profile Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestInitLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "warn", Out: &buf})
	defer Init(DefaultConfig())

	Info().Msg("hidden")
	Warn().Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info message should be filtered at warn level")
	}
	if !strings.Contains(out, "shown") {
		t.Error("warn message missing from output")
	}
}

func TestInitInvalidLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "chatty", Out: &buf})
	defer Init(DefaultConfig())

	Debug().Msg("debug")
	Info().Msg("info")

	out := buf.String()
	if strings.Contains(out, `"debug"`) {
		t.Error("debug message should be filtered at default info level")
	}
	if !strings.Contains(out, `"info"`) {
		t.Errorf("info message missing from output: %s", out)
	}
}

func TestStageLogger(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "debug", Out: &buf})
	defer Init(DefaultConfig())

	l := Stage("income")
	l.Info().Msg("derived")

	if !strings.Contains(buf.String(), `"stage":"income"`) {
		t.Errorf("stage field missing: %s", buf.String())
	}
}
