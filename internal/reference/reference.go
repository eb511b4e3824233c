// Package reference loads the static lookup tables: known program names
// and accounts excluded from holder rankings.
package reference

import (
	"encoding/json"
	"os"

	"go.uber.org/zap"

	"github.com/alayeseke/vybebot/internal/format"
)

type programTable struct {
	Data []struct {
		ProgramID   string `json:"programId"`
		ProgramName string `json:"programName"`
	} `json:"data"`
}

type accountTable struct {
	Accounts []struct {
		OwnerAddress string `json:"ownerAddress"`
	} `json:"accounts"`
}

// Index holds both tables. Each loads independently; a missing or
// malformed file degrades its feature instead of failing startup.
// Immutable after Load, safe for concurrent readers.
type Index struct {
	programNames  map[string]string
	knownAccounts map[string]struct{}
}

// Load reads the two tables from disk. It always returns a usable Index.
func Load(programPath, accountsPath string, log *zap.Logger) *Index {
	log = log.Named("reference")
	idx := &Index{
		programNames:  make(map[string]string),
		knownAccounts: make(map[string]struct{}),
	}

	var programs programTable
	if err := readJSON(programPath, &programs); err != nil {
		log.Warn("program table unavailable, names fall back to shortened IDs",
			zap.String("path", programPath), zap.Error(err))
	} else {
		for _, p := range programs.Data {
			if p.ProgramID != "" && p.ProgramName != "" {
				idx.programNames[p.ProgramID] = p.ProgramName
			}
		}
		log.Info("loaded program table", zap.Int("programs", len(idx.programNames)))
	}

	var accounts accountTable
	if err := readJSON(accountsPath, &accounts); err != nil {
		log.Warn("known-accounts table unavailable, holder filtering disabled",
			zap.String("path", accountsPath), zap.Error(err))
	} else {
		for _, a := range accounts.Accounts {
			if a.OwnerAddress != "" {
				idx.knownAccounts[a.OwnerAddress] = struct{}{}
			}
		}
		log.Info("loaded known-accounts table", zap.Int("accounts", len(idx.knownAccounts)))
	}

	return idx
}

func readJSON(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

// ProgramName returns the known name for a program ID, or the shortened
// ID when the table has no entry.
func (i *Index) ProgramName(programID string) string {
	if name, ok := i.programNames[programID]; ok {
		return name
	}
	return format.MintAddress(programID)
}

// HasProgram reports whether the table knows this program ID.
func (i *Index) HasProgram(programID string) bool {
	_, ok := i.programNames[programID]
	return ok
}

// IsKnownAccount reports whether an address belongs to the exclusion set
// (exchange and protocol-owned wallets).
func (i *Index) IsKnownAccount(address string) bool {
	_, ok := i.knownAccounts[address]
	return ok
}

// Counts returns table sizes for startup logging.
func (i *Index) Counts() (programs, accounts int) {
	return len(i.programNames), len(i.knownAccounts)
}
