package constant

// LoadFn is the global function every Lua source defines.
const LoadFn = "Load"

// SourceTemplate scaffolds a new Lua source, see "statepane sources gen".
const SourceTemplate = `{{ $divider := repeat "-" (plus (max (len .URL) (len .Name) (len .Author) 3) 12) }}{{ $divider }}
-- @name    {{ .Name }}
-- @url     {{ .URL }}
-- @author  {{ .Author }}
-- @license MIT
{{ $divider }}


---@alias item { title: string, description: string|nil, url: string|nil }


----- IMPORTS -----
local http = require("http")
local json = require("json")
--- END IMPORTS ---



----- MAIN -----

--- Loads the items shown for a target.
-- An empty table shows the empty placeholder, error() shows the error placeholder.
-- @param target string Target entered by the user
-- @return item[] Table of items
function {{ .LoadFn }}(target)
	return {}
end

--- END MAIN ---

-- ex: ts=4 sw=4 et filetype=lua
`
