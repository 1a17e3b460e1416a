package dbg

import (
	"fmt"
	"reflect"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// Name turns arbitrary pointers into memorable names for debugging dumps.
// Segment and vertex graphs are all pointers, and comparing raw addresses in
// a dump is hopeless; "ProudMallard -> WiredTadpole" is not. Names are memoized
// per object and leak on purpose; this is debug-only code.

var memo = map[interface{}]string{}

func init() {
	// Names are handed out in demand order, so keep them nondeterministic as
	// a reminder that they do not survive across runs.
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	if reflect.ValueOf(obj).IsNil() {
		return "Ø"
	}
	if name, ok := memo[obj]; ok {
		return name
	}
	name := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[obj] = name
	return name
}
