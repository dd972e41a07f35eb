// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/jetsetilly/gopokey/curated"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is inserted at the beginning of a preferences file.
const WarningBoilerPlate = "*** do not edit this file while the program is running ***"

// separates the key and value of an entry in a preferences file.
const keySep = " :: "

// Sentinal error patterns.
const (
	NoPrefsFile = "prefs: no prefs file (%s)"
	BadPrefsKey = "prefs: cannot set %s: %v"
)

// Disk represents preference values as stored on disk. Entries in the file
// that do not belong to the Disk instance are preserved when the file is
// saved, so more than one Disk can share the same file.
type Disk struct {
	path    string
	entries map[string]pref
}

func (dsk *Disk) String() string {
	s := strings.Builder{}
	for _, k := range dsk.keys() {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, keySep, dsk.entries[k].String()))
	}
	return s.String()
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

func (dsk *Disk) keys() []string {
	k := make([]string, 0, len(dsk.entries))
	for key := range dsk.entries {
		k = append(k, key)
	}
	sort.Strings(k)
	return k
}

// Add preference value to list of values to store/load from Disk. The key
// value is used to identify the value in the preferences file.
func (dsk *Disk) Add(key string, p pref) error {
	if strings.ContainsAny(key, "\n") || strings.Contains(key, keySep) || strings.TrimSpace(key) == "" {
		return curated.Errorf("prefs: illegal key (%s)", key)
	}
	if isDefunct(key) {
		return curated.Errorf("prefs: key is defunct (%s)", key)
	}
	dsk.entries[key] = p
	return nil
}

// Reset all entries to their default values.
func (dsk *Disk) Reset() error {
	for _, k := range dsk.keys() {
		if err := dsk.entries[k].Reset(); err != nil {
			return curated.Errorf(BadPrefsKey, k, err)
		}
	}
	return nil
}

// read the preferences file into a map of raw strings. a missing file is
// returned as a curated NoPrefsFile error.
func (dsk *Disk) read() (map[string]string, error) {
	raw := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return raw, curated.Errorf(NoPrefsFile, dsk.path)
		}
		return raw, curated.Errorf("prefs: %v", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	// first line is the warning boilerplate
	if !scanner.Scan() {
		return raw, nil
	}

	for scanner.Scan() {
		k, v, ok := strings.Cut(scanner.Text(), keySep)
		if !ok || isDefunct(k) {
			continue
		}
		raw[k] = v
	}

	if err := scanner.Err(); err != nil {
		return raw, curated.Errorf("prefs: %v", err)
	}

	return raw, nil
}

// Save current preference values to disk.
func (dsk *Disk) Save() error {
	raw, err := dsk.read()
	if err != nil && !curated.Is(err, NoPrefsFile) {
		return err
	}

	for k, p := range dsk.entries {
		raw[k] = p.String()
	}

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	s.WriteString(WarningBoilerPlate)
	s.WriteString("\n")
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, keySep, raw[k]))
	}

	if err := os.WriteFile(dsk.path, []byte(s.String()), 0o600); err != nil {
		return curated.Errorf("prefs: %v", err)
	}

	return nil
}

// Load preference values from disk. If useCommandLine is true then any values
// on the top of the command line stack take precedence over the values on
// disk.
//
// A missing preferences file results in a NoPrefsFile error. Values that
// have been pushed on the command line stack are still applied in that case.
func (dsk *Disk) Load(useCommandLine bool) error {
	raw, readErr := dsk.read()
	if readErr != nil && !curated.Is(readErr, NoPrefsFile) {
		return readErr
	}

	for _, k := range dsk.keys() {
		v, ok := raw[k]
		if useCommandLine {
			if found, cv := GetCommandLinePref(k); found {
				v = fmt.Sprintf("%v", cv)
				ok = true
			}
		}
		if !ok {
			continue
		}
		if err := dsk.entries[k].Set(v); err != nil {
			return curated.Errorf(BadPrefsKey, k, err)
		}
	}

	return readErr
}
