// Package accounts loads the wallet accounts file (JSON list or TOML tables).
package accounts

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bnema/konnex-agent/internal/domain"
	"github.com/bnema/konnex-agent/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
)

const DefaultPath = "accounts.json"

var ErrNotAList = errors.New("accounts file must be a list of accounts")

type Repository struct {
	path string
	mu   *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.AccountRepository = (*Repository)(nil)

func NewRepository(path string) (*Repository, error) {
	if strings.TrimSpace(path) == "" {
		path = DefaultPath
	}
	path, err := normalizePath(path)
	if err != nil {
		return nil, err
	}
	return &Repository{path: path, mu: lockForPath(path)}, nil
}

func (r *Repository) Path() string {
	return r.path
}

// List re-reads the file on every call. Entries without a private key are skipped;
// kept accounts retain their position in the file as Index.
func (r *Repository) List(ctx context.Context) ([]domain.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("read accounts file: %w", err)
	}

	var all []domain.Account
	if isTOML(r.path) {
		all, err = decodeTOML(data)
	} else {
		all, err = decodeJSON(data)
	}
	if err != nil {
		return nil, err
	}

	accounts := make([]domain.Account, 0, len(all))
	for _, account := range all {
		if account.PrivateKey == "" {
			continue
		}
		accounts = append(accounts, account)
	}
	return accounts, nil
}

func decodeJSON(data []byte) ([]domain.Account, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, ErrNotAList
	}

	var entries []jsonAccount
	if err := json.Unmarshal(trimmed, &entries); err != nil {
		return nil, fmt.Errorf("decode accounts file: %w", err)
	}

	accounts := make([]domain.Account, 0, len(entries))
	for i, entry := range entries {
		accounts = append(accounts, entry.toDomain(i))
	}
	return accounts, nil
}

func decodeTOML(data []byte) ([]domain.Account, error) {
	var file tomlFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode accounts file: %w", err)
	}

	accounts := make([]domain.Account, 0, len(file.Accounts))
	for i, entry := range file.Accounts {
		accounts = append(accounts, entry.toDomain(i))
	}
	return accounts, nil
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

func normalizePath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve accounts path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}
