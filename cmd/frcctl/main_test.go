package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const snapshotYAML = `items:
  - id: bumper
    origin: original
    category: part
    description: Front bumper
    unit_price: "1000"
    quantity: "1"
  - id: bumper-repair
    origin: additional
    category: labour
    description: Repair instead of replace
    unit_price: "60"
    hours: "3"
    parent_line_item_id: bumper
  - id: paint
    origin: original
    category: paint
    unit_price: 50.5
    hours: 2
`

func run(t *testing.T, env map[string]string, args ...string) (string, error) {
	t.Helper()
	for k, v := range env {
		t.Setenv(k, v)
	}
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestFrcctl_Workflow(t *testing.T) {
	dir := t.TempDir()
	env := map[string]string{"FRC_SQLITE_PATH": filepath.Join(dir, "frc.db"), "FRC_ACTOR": "assessor-1"}
	file := filepath.Join(dir, "items.yaml")
	require.NoError(t, os.WriteFile(file, []byte(snapshotYAML), 0o600))

	out, err := run(t, env, "snapshot", "import", "a-1", "--file", file)
	require.NoError(t, err)
	assert.Contains(t, out, "(3 items)")

	out, err = run(t, env, "reconcile", "a-1")
	require.NoError(t, err)
	assert.Contains(t, out, "bumper-repair")
	assert.Contains(t, out, "3 line(s) pending")

	_, err = run(t, env, "decide", "a-1", "bumper", "--status", "declined")
	require.NoError(t, err)
	_, err = run(t, env, "decide", "a-1", "bumper-repair", "--status", "adjusted", "--value", "150")
	require.NoError(t, err)
	_, err = run(t, env, "decide", "a-1", "paint", "--status", "approved", "--expected-version", "7")
	require.Error(t, err)
	_, err = run(t, env, "decide", "a-1", "paint", "--status", "approved")
	require.NoError(t, err)

	out, err = run(t, env, "invoice", "attach", "a-1", "paint", "--document", "inv-1", "--amount", "101", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"match_confidence": "exact"`)

	out, err = run(t, env, "reconcile", "a-1", "--json")
	require.NoError(t, err)
	var frc struct {
		Totals struct {
			BaselineTotal string `json:"baseline_total"`
			NewTotal      string `json:"new_total"`
			Delta         string `json:"delta"`
		} `json:"totals"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &frc))
	assert.Equal(t, "1101.00", frc.Totals.BaselineTotal)
	assert.Equal(t, "251.00", frc.Totals.NewTotal)
	assert.Equal(t, "-850.00", frc.Totals.Delta)

	out, err = run(t, env, "complete", "a-1", "--actor", "lead-1")
	require.NoError(t, err)
	assert.Contains(t, out, "completed by lead-1")
	assert.Contains(t, out, "new 251.00")

	_, err = run(t, env, "complete", "a-1")
	require.Error(t, err)

	out, err = run(t, env, "audit", "list", "a-1", "--json")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, `"frc.completed"`))
	assert.Equal(t, 3, strings.Count(out, `"frc.decision.recorded"`))
}

func TestFrcctl_InvalidBackend(t *testing.T) {
	_, err := run(t, map[string]string{"FRC_BACKEND": "postgres"}, "reconcile", "a-1")
	require.Error(t, err)
}

func TestReadSnapshotFile(t *testing.T) {
	items, err := readSnapshotFile(strings.NewReader(snapshotYAML))
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "bumper", items[1].ParentLineItemID)
	assert.Equal(t, "50.5", items[2].UnitPrice.String())
	assert.Equal(t, "2", items[2].Hours.String())

	_, err = readSnapshotFile(strings.NewReader("items:\n  - id: x\n    colour: red\n"))
	require.Error(t, err)

	_, err = readSnapshotFile(strings.NewReader("items:\n  - id: x\n    unit_price: ten\n"))
	require.Error(t, err)
}
