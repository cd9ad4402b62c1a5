package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nihongo-drills/katsuyo"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := rootCmd(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestConjugateCommand(t *testing.T) {
	out, err := execute(t, "conjugate", "かえる", "past_polite_affirmative_potential")
	require.NoError(t, err)
	assert.Equal(t, "かえれました\tcould go home\n", out)

	_, err = execute(t, "conjugate", "くる", "past_polite_affirmative_potential")
	assert.Error(t, err)
	_, err = execute(t, "conjugate", "かえる", "yesterday")
	assert.Error(t, err)
}

func TestTableCommand(t *testing.T) {
	out, err := execute(t, "--data", "../../data", "table", "もっていく")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 16)
	assert.Contains(t, lines[8], "もっていった")
}

func TestTranslateCommand(t *testing.T) {
	out, err := execute(t, "translate", "かう", "past", "negative", "immediate")
	require.NoError(t, err)
	assert.Equal(t, "did not buy\n", out)
}

func TestFormsCommand(t *testing.T) {
	out, err := execute(t, "forms")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 16)
}

func TestRandomCommand(t *testing.T) {
	out, err := execute(t, "random")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\t"), 4)
}

func TestAnalyzeCommand(t *testing.T) {
	out, err := execute(t, "analyze", "うんてんできません")
	require.NoError(t, err)
	assert.Equal(t, "13_うんてんする\tpresent_polite_negative_potential\tcan not drive\n", out)

	_, err = execute(t, "analyze", "くる")
	assert.Error(t, err)
}

func TestRandomCommandEmptyLexicon(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, katsuyo.VerbsFile), []byte("! nothing\n"), 0o644))
	_, err := execute(t, "--data", dir, "random")
	require.Error(t, err)
	assert.ErrorIs(t, err, katsuyo.ErrEmptyLexicon)
}

func TestAnalyzeCommandKatakana(t *testing.T) {
	out, err := execute(t, "analyze", "ウンテンデキマセン")
	require.NoError(t, err)
	assert.Equal(t, "13_うんてんする\tpresent_polite_negative_potential\tcan not drive\n", out)
}
