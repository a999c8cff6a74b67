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

// Package paths contains functions to prepare paths to VIDCemu resources.
//
// The ResourcePath() function returns the supplied resource path prepended
// with the appropriate config directory. For example, the following returns
// the path to the preferences file:
//
//	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
//
// For development builds the base directory is ".vidcemu" in the current
// working directory. For builds with the "release" build tag the base
// directory is inside the user's configuration directory, as returned by
// os.UserConfigDir(). On a modern Linux system that would be:
//
//	/home/user/.config/vidcemu
//
// Directories are created as required but files are never touched.
package paths
