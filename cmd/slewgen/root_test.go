package main

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xBartM/Parametric-Slewing-Bearing/assembly"
	"github.com/xBartM/Parametric-Slewing-Bearing/bearing"
	"github.com/xBartM/Parametric-Slewing-Bearing/packing"
)

// TestRun_ReferenceBearing drives the whole pipeline through run and
// checks one JSON artifact per valid roller count lands in the out dir.
func TestRun_ReferenceBearing(t *testing.T) {
	outDir := t.TempDir()

	err := run(50, 15, 10, 0.3, 0.9, bearing.DefaultConfig(), packing.DefaultOptions(), outDir, true, false)
	require.NoError(t, err)

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	require.Len(t, entries, 4)

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}
	assert.Contains(t, names, "b50x15x10_0.3x0.9_2.json")
	assert.Contains(t, names, "b50x15x10_0.3x0.9_8.json")

	raw, err := os.ReadFile(filepath.Join(outDir, "b50x15x10_0.3x0.9_8.json"))
	require.NoError(t, err)
	var desc assembly.Description
	require.NoError(t, json.Unmarshal(raw, &desc))
	assert.Equal(t, 8, desc.Solution.Count)
	assert.Len(t, desc.Placements, 8)
}

// TestRun_PreviewWritesPNGs checks the preview flag adds two PNGs per
// variant next to the JSON.
func TestRun_PreviewWritesPNGs(t *testing.T) {
	outDir := t.TempDir()
	opts := packing.Options{MinCount: 8, EvenOnly: true}

	err := run(50, 15, 10, 0.3, 0.9, bearing.DefaultConfig(), opts, outDir, true, true)
	require.NoError(t, err)

	for _, name := range []string{
		"b50x15x10_0.3x0.9_8.json",
		"b50x15x10_0.3x0.9_8_section.png",
		"b50x15x10_0.3x0.9_8_plan.png",
	} {
		_, err := os.Stat(filepath.Join(outDir, name))
		assert.NoError(t, err, name)
	}
}

// TestRun_InfeasibleEnvelope checks a width wider than the channel is a
// typed validation error and writes nothing.
func TestRun_InfeasibleEnvelope(t *testing.T) {
	outDir := t.TempDir()

	err := run(200, 150, 25, 0.3, 0.9, bearing.DefaultConfig(), packing.DefaultOptions(), outDir, true, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, bearing.ErrWidthExceedsChannel)

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

// TestRun_NoValidPacking checks an empty solution set exits with an error
// naming the envelope, not a panic or silent success.
func TestRun_NoValidPacking(t *testing.T) {
	outDir := t.TempDir()
	opts := packing.Options{MinCount: 20, EvenOnly: true}

	err := run(50, 15, 10, 0.3, 0.9, bearing.DefaultConfig(), opts, outDir, true, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no valid packing")
}

// TestRootCmd_RejectsNonNumericArgs checks argument parsing fails cleanly.
func TestRootCmd_RejectsNonNumericArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"50", "15", "ten", "0.3", "0.9", "-o", t.TempDir()})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a number")
}

// TestRootCmd_ArgCount checks the five positional parameters are enforced.
func TestRootCmd_ArgCount(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"50", "15", "10"})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	assert.Error(t, cmd.Execute())
}
