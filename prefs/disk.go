// This file is part of VIDCemu.
//
// VIDCemu is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// VIDCemu is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with VIDCemu.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/jetsetilly/vidcemu/curated"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is written to the head of every preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// the separator between key and value in the preferences file.
const keySep = " :: "

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

func (dsk *Disk) String() string {
	s := strings.Builder{}
	for _, k := range dsk.keys() {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, keySep, dsk.entries[k].String()))
	}
	return s.String()
}

func (dsk *Disk) keys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Add preference value to list of values to store/load on disk.
func (dsk *Disk) Add(key string, p pref) error {
	if strings.Contains(key, keySep) || strings.TrimSpace(key) != key || key == "" {
		return curated.Errorf("prefs: illegal key (%s)", key)
	}
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf("prefs: key already added (%s)", key)
	}
	dsk.entries[key] = p
	return nil
}

// Reset all preference values to their zero value.
func (dsk *Disk) Reset() error {
	for _, k := range dsk.keys() {
		if err := dsk.entries[k].Reset(); err != nil {
			return curated.Errorf("prefs: %v", err)
		}
	}
	return nil
}

// read the preferences file into a map of strings. a missing file is not an
// error and returns an empty map
func (dsk *Disk) read() (map[string]string, error) {
	values := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return values, nil
		}
		return nil, curated.Errorf("prefs: %v", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	// the first line must be the boiler plate
	if !scanner.Scan() {
		return values, nil
	}
	if scanner.Text() != WarningBoilerPlate {
		return nil, curated.Errorf("prefs: not a valid prefs file (%s)", dsk.path)
	}

	for scanner.Scan() {
		kv := strings.SplitN(scanner.Text(), keySep, 2)
		if len(kv) != 2 {
			continue
		}
		values[kv[0]] = kv[1]
	}

	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf("prefs: %v", err)
	}

	return values, nil
}

// Save current preference values to disk. Values in the file that are not
// part of this Disk instance are preserved.
func (dsk *Disk) Save() error {
	values, err := dsk.read()
	if err != nil {
		return err
	}

	for k, p := range dsk.entries {
		values[k] = p.String()
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf("prefs: %v", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%s\n", WarningBoilerPlate)
	for _, k := range keys {
		fmt.Fprintf(w, "%s%s%s\n", k, keySep, values[k])
	}

	if err := w.Flush(); err != nil {
		return curated.Errorf("prefs: %v", err)
	}

	return nil
}

// Load preference values from disk. Values on the top of the command line
// stack take precedence over values in the file.
func (dsk *Disk) Load() error {
	values, err := dsk.read()
	if err != nil {
		return err
	}

	for _, k := range dsk.keys() {
		p := dsk.entries[k]

		if ok, v := GetCommandLinePref(k); ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf("prefs: %s: %v", k, err)
			}
			continue
		}

		if v, ok := values[k]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf("prefs: %s: %v", k, err)
			}
		}
	}

	return nil
}
