// core_displaylist.go - display list compilation and replay

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

/*
core_displaylist.go implements spec.md 4.1 and 4.8: GenLists reserves a
range of list IDs, NewList/EndList bracket compilation (issue() routes
every call in between into the list rather than executing it, unless the
mode is COMPILE_AND_EXECUTE), and CallList replays a compiled list's
commands through Execute. Re-entrant CallList (a list calling itself,
directly or through another list) is guarded by a depth counter rather
than cycle detection, the same bound a call-stack depth guard gives a
recursive interpreter.
*/

package glcore

type displayList struct {
	commands []command
}

// GenLists reserves n consecutive list IDs and returns the first one, or 0
// if n is not positive (spec.md 4.8).
func GenLists(n int) int {
	c := current("GenLists")
	c.mu.Lock()
	defer c.mu.Unlock()
	if n <= 0 {
		return 0
	}
	first := c.nextList
	for i := 0; i < n; i++ {
		c.lists[c.nextList] = &displayList{}
		c.nextList++
	}
	return first
}

// NewList begins compiling list into the active list slot (spec.md 4.1,
// 4.8). Nesting NewList while already compiling is fatal.
func NewList(list int, mode ListMode) {
	c := current("NewList")
	c.requireNoActivePrimitive("NewList")
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.activeList != displayListNone {
		fatal("NewList", "already compiling a list")
	}
	if _, ok := c.lists[list]; !ok {
		fatalf("NewList", "list %d was never reserved with GenLists", list)
	}
	c.lists[list].commands = c.lists[list].commands[:0]
	c.activeList = list
	c.activeMode = mode
}

// EndList closes compilation of the active list (spec.md 4.1, 4.8).
// Calling it with no list being compiled is fatal.
func EndList() {
	c := current("EndList")
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.activeList == displayListNone {
		fatal("EndList", "no list is being compiled")
	}
	c.activeList = displayListNone
}

// CallList replays a compiled list's commands (spec.md 4.1, 4.8). A list
// calling itself, directly or transitively, is bounded by
// maxCallListDepth rather than detected as a cycle, matching spec.md 9's
// re-entrancy-by-depth-guard resolution.
func CallList(list int) {
	current("CallList").issue(command{kind: cmdCallList, i: [6]int32{int32(list)}})
}

func (c *Context) doCallList(list int) {
	if c.callDepth >= maxCallListDepth {
		fatalf("CallList", "call depth exceeded %d, probable list cycle", maxCallListDepth)
	}
	l, ok := c.lists[list]
	if !ok {
		fatalf("CallList", "list %d was never reserved with GenLists", list)
	}
	c.callDepth++
	cmds := l.commands
	for i := range cmds {
		cmds[i].Execute(c)
	}
	c.callDepth--
}
