// Package dbg turns flips and triangles into short readable names for log
// lines, so that the same flip can be followed across ticks by eye.
package dbg

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/kr/pretty"
)

// Names are handed out in order of demand and never forgotten. That leaks,
// but only when debug logging actually asks for names.
var (
	mu   sync.Mutex
	memo = make(map[interface{}]string)
)

func init() {
	// The same name will not mean the same object across runs; make that
	// obvious by not producing the same names either.
	petname.NonDeterministicMode()
}

// Name returns a stable readable name for obj, which must be comparable.
// Pointers are named by identity, so two flips with equal contents still get
// different names.
func Name(obj interface{}) string {
	if isNil(obj) {
		return "Ø"
	}

	mu.Lock()
	defer mu.Unlock()
	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[obj] = r
	return r
}

// TriangleName names a mesh triangle by index. Indexes are plain ints, so
// they get their own key space.
func TriangleName(index int) string {
	return Name(triangleKey(index))
}

type triangleKey int

// Dump renders v as a multi-line Go-ish literal for debug output.
func Dump(v interface{}) string {
	return pretty.Sprintf("%# v", v)
}

func isNil(obj interface{}) bool {
	if obj == nil {
		return true
	}
	value := reflect.ValueOf(obj)
	switch value.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return value.IsNil()
	}
	return false
}
