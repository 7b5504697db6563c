package tracker

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// ProfileFilename is the fixed key the user profile is persisted under,
// mirroring the original client's user storage key.
const ProfileFilename = "stock-empire-user.json"

// Profile is the tier source: who the user is and what they subscribed to.
// The tracker core only ever reads it; tier changes go through the pricing
// surface (here, the tier command).
type Profile struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Tier  Tier   `json:"tier"`
}

// LoadProfile reads the profile from the given directory. A missing or
// corrupted file yields the zero profile (tier FREE): an anonymous visitor.
func LoadProfile(dir string) Profile {
	path := filepath.Join(dir, ProfileFilename)
	content, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("could not read profile %q, assuming FREE tier: %v", path, err)
		}
		return Profile{}
	}
	var p Profile
	if err := json.Unmarshal(content, &p); err != nil {
		log.Printf("profile %q is corrupted, assuming FREE tier: %v", path, err)
		return Profile{}
	}
	return p
}

// SaveProfile writes the profile to the given directory.
func SaveProfile(dir string, p Profile) error {
	content, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("could not serialize profile: %w", err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create profile directory: %w", err)
	}
	path := filepath.Join(dir, ProfileFilename)
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("could not write profile %q: %w", path, err)
	}
	return nil
}
