package reference

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadBothTables(t *testing.T) {
	dir := t.TempDir()
	programs := writeFile(t, dir, "programs.json", `{
		"data": [
			{"programId": "prog1", "programName": "Raydium"},
			{"programId": "", "programName": "dropped"},
			{"programId": "prog2", "programName": ""}
		]
	}`)
	accounts := writeFile(t, dir, "accounts.json", `{
		"accounts": [
			{"ownerAddress": "exchange1"},
			{"ownerAddress": ""}
		]
	}`)

	idx := Load(programs, accounts, zap.NewNop())

	p, a := idx.Counts()
	assert.Equal(t, 1, p, "entries missing id or name are skipped")
	assert.Equal(t, 1, a)

	assert.Equal(t, "Raydium", idx.ProgramName("prog1"))
	assert.True(t, idx.HasProgram("prog1"))
	assert.True(t, idx.IsKnownAccount("exchange1"))
	assert.False(t, idx.IsKnownAccount("someone-else"))
}

func TestLoadMissingFilesDegrades(t *testing.T) {
	idx := Load("/nonexistent/programs.json", "/nonexistent/accounts.json", zap.NewNop())

	require.NotNil(t, idx)
	p, a := idx.Counts()
	assert.Zero(t, p)
	assert.Zero(t, a)
	assert.False(t, idx.IsKnownAccount("anything"))
}

func TestLoadMalformedTableDegradesIndependently(t *testing.T) {
	dir := t.TempDir()
	programs := writeFile(t, dir, "programs.json", `not json at all`)
	accounts := writeFile(t, dir, "accounts.json", `{"accounts":[{"ownerAddress":"exchange1"}]}`)

	idx := Load(programs, accounts, zap.NewNop())

	p, a := idx.Counts()
	assert.Zero(t, p, "broken program table does not block the account table")
	assert.Equal(t, 1, a)
}

func TestProgramNameFallsBackToShortenedID(t *testing.T) {
	idx := Load("/nonexistent", "/nonexistent", zap.NewNop())

	name := idx.ProgramName("675kPX9MHTjS2zt1qfr1NYHuzeLXfQM9H24wFSUt1Mp8")
	assert.Equal(t, "675k...1Mp8", name)
}
