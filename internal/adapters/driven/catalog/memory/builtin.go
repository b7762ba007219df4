package memory

import "sync"

var (
	builtinOnce    sync.Once
	builtinCatalog *Catalog
)

// Builtin returns the bundled Whistler catalog. It is built on first use
// and shared afterwards; it panics if the bundled tables are invalid.
func Builtin() *Catalog {
	builtinOnce.Do(func() {
		c, err := New(builtinProperties, builtinNeighborhoods, builtinPlatforms)
		if err != nil {
			panic("memory: invalid builtin catalog: " + err.Error())
		}
		builtinCatalog = c
	})
	return builtinCatalog
}
