// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

// Checker Function Identifiers - these constants define the required global function signatures for Lua checker modules.
const (
	CheckFn     = "Check"
	NormalizeFn = "Normalize"
)

// CheckerTemplate is a Go text/template for scaffolding new Lua checker files.
const CheckerTemplate = `{{ $divider := repeat "-" (plus (max (len .Name) (len .Author) 3) 12) }}{{ $divider }}
-- @name    {{ .Name }}
-- @author  {{ .Author }}
-- @license MIT
{{ $divider }}


----- MAIN -----

--- Reports whether the input satisfies this check.
-- @param input string Text to inspect
-- @return boolean
function {{ .CheckFn }}(input)
	return true
end


--- Optional. Normalizes the input before checking.
-- @param input string Raw text
-- @return string Normalized text
function {{ .NormalizeFn }}(input)
	return input
end

--- END MAIN ---

-- ex: ts=4 sw=4 et filetype=lua
`
