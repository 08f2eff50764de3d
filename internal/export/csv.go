//-------------------------------------------------------------------------
//
// pgEdge Credit Profile Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package export writes generated credit profile tables to files.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/pgEdge/pgedge-creditgen/internal/credit"
	"github.com/pgEdge/pgedge-creditgen/internal/datagen"
	"github.com/pgEdge/pgedge-creditgen/internal/logging"
)

// WriteCSV writes the table to path, replacing any existing file.
func WriteCSV(path string, delimiter rune, t *credit.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := Encode(f, delimiter, t); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}

	ev := logging.Info().
		Str("path", path).
		Int("rows", t.Len())
	if info, err := os.Stat(path); err == nil {
		ev = ev.Str("size", datagen.FormatSize(info.Size()))
	}
	ev.Msg("Wrote dataset")

	return nil
}

// Encode writes a header row followed by one record per profile.
func Encode(w io.Writer, delimiter rune, t *credit.Table) error {
	cw := csv.NewWriter(w)
	cw.Comma = delimiter

	if err := cw.Write(credit.Columns); err != nil {
		return err
	}
	for i := range t.Profiles {
		if err := cw.Write(t.Profiles[i].Values()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
