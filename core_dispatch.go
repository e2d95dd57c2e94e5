// core_dispatch.go - immediate-vs-deferred command dispatch

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package glcore

// issue routes cmd to immediate execution, to the active display list, or
// to both, per the dispatch policy in spec.md 4.1:
//   - no list compiling: execute immediately.
//   - COMPILE: append only.
//   - COMPILE_AND_EXECUTE: execute and append.
func (c *Context) issue(cmd command) {
	if c.activeList == displayListNone {
		cmd.Execute(c)
		return
	}
	list := c.lists[c.activeList]
	list.commands = append(list.commands, cmd)
	if c.activeMode == CompileAndExecute {
		cmd.Execute(c)
	}
}
