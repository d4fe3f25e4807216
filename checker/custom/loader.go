// Package custom provides a bridge between the Go core and Lua-based checker scripts.
package custom

import (
	"fmt"

	"github.com/kata-cli/kata/constant"
	"github.com/kata-cli/kata/internal/luacache"
	"github.com/kata-cli/kata/util"
	libs "github.com/metafates/mangal-lua-libs"
	lua "github.com/yuin/gopher-lua"
)

// IDfromName generates a canonical checker identifier for a given Lua script basename.
func IDfromName(name string) string {
	return name + " custom"
}

// LoadCheck initializes a new LuaCheck instance by executing and validating a Lua checker script.
func LoadCheck(path string) (*LuaCheck, error) {
	state := lua.NewState()
	libs.Preload(state)

	// Load and compile the Lua script (using cache if available).
	err := luacache.PreCompileAndLoad(state, path)
	if err != nil {
		return nil, err
	}

	name := util.FileStem(path)

	// Validation: Check is mandatory, Normalize is optional.
	if state.GetGlobal(constant.CheckFn).Type() != lua.LTFunction {
		return nil, fmt.Errorf("function %s is required but not defined in %s", constant.CheckFn, name)
	}

	return newLuaCheck(name, state), nil
}
