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

// Package statsview runs a local HTTP server offering runtime statistics. The
// underlying functionality is provided by "github.com/go-echarts/statsview".
//
// After launch, graphical statistics will be viewable at:
//
//	localhost:12600/debug/statsview
//
// And standard Go pprof statistics available at:
//
//	localhost:12600/debug/pprof/
package statsview

import (
	"fmt"
	"io"
	"sync"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// Address of the statistics server.
const Address = "localhost:12600"

const url = "/debug/statsview"

// the server is only ever launched once
var launch sync.Once

// URL returns the address of the statistics page.
func URL() string {
	return fmt.Sprintf("http://%s%s", Address, url)
}

// Launch a new goroutine running the statsview. Subsequent calls do nothing.
func Launch(output io.Writer) {
	launch.Do(func() {
		viewer.SetConfiguration(viewer.WithAddr(Address))
		mgr := statsview.New()
		go mgr.Start()
		fmt.Fprintf(output, "stats server available at %s\n", URL())
	})
}
