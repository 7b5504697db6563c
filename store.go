package tracker

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// PortfolioFilename is the fixed namespaced key the holding list is persisted
// under. It matches the storage key of the original web client so an exported
// payload is recognizable.
const PortfolioFilename = "stock-empire-portfolio-v2.json"

// ErrNotHydrated is returned by Save when the initial Load has not completed.
// Writing before hydration would clobber previously saved holdings with an
// empty list.
var ErrNotHydrated = errors.New("store not hydrated: Load must complete before Save")

// Store persists the holding list as a single JSON array in one file. Load
// must run exactly once, at startup, before any Save is permitted.
type Store struct {
	path     string
	hydrated bool
}

// NewStore returns a store persisting in the given directory under
// PortfolioFilename.
func NewStore(dir string) *Store {
	return &Store{path: filepath.Join(dir, PortfolioFilename)}
}

// Path returns the file backing this store.
func (s *Store) Path() string { return s.path }

// Load reads the persisted holding list. A missing file yields an empty list.
// Corrupted content also yields an empty list with a logged warning: a damaged
// file must never take the tracker down.
func (s *Store) Load() ([]Holding, error) {
	content, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.hydrated = true
		return nil, nil
	}
	if err != nil {
		// Unreadable is not the same as corrupted: stay un-hydrated so a later
		// Save cannot destroy whatever is in the file.
		return nil, fmt.Errorf("could not read portfolio file %q: %w", s.path, err)
	}
	s.hydrated = true
	var holdings []Holding
	if err := json.Unmarshal(content, &holdings); err != nil {
		log.Printf("portfolio file %q is corrupted, starting empty: %v", s.path, err)
		return nil, nil
	}
	return holdings, nil
}

// Save serializes the full holding list and replaces any prior file content.
// It returns ErrNotHydrated until Load has completed once.
func (s *Store) Save(holdings []Holding) error {
	if !s.hydrated {
		return ErrNotHydrated
	}
	if holdings == nil {
		holdings = []Holding{}
	}
	content, err := json.MarshalIndent(holdings, "", "  ")
	if err != nil {
		return fmt.Errorf("could not serialize portfolio: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("could not create portfolio directory: %w", err)
	}
	if err := os.WriteFile(s.path, content, 0644); err != nil {
		return fmt.Errorf("could not write portfolio file %q: %w", s.path, err)
	}
	return nil
}
