package testing

import (
	"os"
	"path"
	"runtime"
)

func init() {
	// tests resolve towers.yaml, logs/ and sqlite files from the project root,
	// so a blank import of this package moves the test binary there:
	//
	//   import (
	//     _ "isharati.xyz/netdiag-service/pkg/testing"
	//   )

	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "..", "..")
	if err := os.Chdir(dir); err != nil {
		panic(err)
	}
}
