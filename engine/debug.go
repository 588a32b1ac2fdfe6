package engine

import (
	"github.com/kylelemons/godebug/pretty"

	"github.com/proofscript/lispcore/core"
)

// DebugDump renders the context's local bindings and control stack for
// the CLI's --trace flag; never consulted by the reduction loop itself.
func (c *Context) DebugDump() string {
	return pretty.Sprint(struct {
		Ctx   []core.Value
		Stack []Frame
	}{Ctx: c.ctx, Stack: c.stack})
}
