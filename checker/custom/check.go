// Package custom provides a bridge between the Go core and Lua-based checker scripts.
package custom

import (
	"fmt"

	"github.com/kata-cli/kata/constant"
	lua "github.com/yuin/gopher-lua"
)

// LuaCheck is a text check backed by a loaded Lua script.
type LuaCheck struct {
	name  string
	state *lua.LState
}

func newLuaCheck(name string, state *lua.LState) *LuaCheck {
	return &LuaCheck{
		name:  name,
		state: state,
	}
}

// Name returns the check name.
func (c *LuaCheck) Name() string {
	return c.name
}

// ID returns the check ID.
func (c *LuaCheck) ID() string {
	return IDfromName(c.name) // Defined in loader.go
}

// Run applies the optional Normalize function followed by the mandatory Check predicate.
func (c *LuaCheck) Run(input string) (bool, error) {
	value := lua.LString(input)

	if c.state.GetGlobal(constant.NormalizeFn).Type() == lua.LTFunction {
		normalized, err := c.call(constant.NormalizeFn, lua.LTString, value)
		if err != nil {
			return false, err
		}
		value = normalized.(lua.LString)
	}

	result, err := c.call(constant.CheckFn, lua.LTBool, value)
	if err != nil {
		return false, err
	}

	return lua.LVAsBool(result), nil
}

// call executes a global Lua function safely.
func (c *LuaCheck) call(fn string, retType lua.LValueType, args ...lua.LValue) (lua.LValue, error) {
	luaFn := c.state.GetGlobal(fn)
	if luaFn.Type() != lua.LTFunction {
		return nil, fmt.Errorf("function %s is not defined", fn)
	}

	err := c.state.CallByParam(lua.P{
		Fn:      luaFn,
		NRet:    1,
		Protect: true,
	}, args...)

	if err != nil {
		return nil, err
	}

	retval := c.state.Get(-1)
	c.state.Pop(1) // Clean stack

	if retval.Type() != retType {
		return nil, fmt.Errorf("%s returned %s, expected %s", fn, retval.Type(), retType)
	}

	return retval, nil
}
