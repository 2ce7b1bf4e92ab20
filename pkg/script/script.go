// Package script exposes dynamic content functions written in JavaScript.
// A dynamic function's value is only known after pagination settles (page
// counters being the canonical case); scripting them lets a host document
// format counters however it likes without touching the engine.
package script

import (
	"fmt"

	"github.com/dop251/goja"

	"galley/pkg/layout"
)

// Engine hosts compiled dynamic functions in a single goja runtime.
// Layout and paint are single-threaded, so the runtime needs no locking.
type Engine struct {
	vm *goja.Runtime
}

// New creates an engine with a fresh goja runtime.
func New() *Engine {
	return &Engine{vm: goja.New()}
}

// Compile turns a JS function literal of the form
//
//	function(page, pages) { return "p. " + page + "/" + pages; }
//
// into a layout.DynamicFunc. The function receives the one-based number of
// the page holding the line and the total page count, and must return the
// text to render.
func (e *Engine) Compile(src string) (layout.DynamicFunc, error) {
	v, err := e.vm.RunString("(" + src + ")")
	if err != nil {
		return nil, fmt.Errorf("compile dynamic function: %w", err)
	}
	fn, ok := goja.AssertFunction(v)
	if !ok {
		return nil, fmt.Errorf("compile dynamic function: source is not a function")
	}
	return &scriptFunc{vm: e.vm, fn: fn}, nil
}

type scriptFunc struct {
	vm *goja.Runtime
	fn goja.Callable
}

// Evaluate calls the compiled function. A throwing function resolves to
// the empty string.
func (f *scriptFunc) Evaluate(c *layout.Context, line layout.BoxID) string {
	page := c.PageIndexFor(line) + 1
	pages := c.PageCount()
	v, err := f.fn(goja.Undefined(), f.vm.ToValue(page), f.vm.ToValue(pages))
	if err != nil {
		return ""
	}
	return v.String()
}
