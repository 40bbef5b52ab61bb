// Package api exposes tag navigation to Lua plugin scripts.
package api

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/tagnav/internal/config"
	"github.com/dshills/tagnav/internal/dispatcher/execctx"
	tagh "github.com/dshills/tagnav/internal/dispatcher/handlers/tag"
	"github.com/dshills/tagnav/internal/input"
)

// Context carries the editor state a plugin call operates on.
type Context struct {
	// Exec is the execution context for the active document.
	Exec *execctx.ExecutionContext

	// Tags is the tag navigation handler.
	Tags *tagh.Handler

	// Config is the live configuration store. Optional; when nil,
	// set_delimiters raises an error.
	Config *config.Store
}

// TagModule implements the tagnav Lua API module.
type TagModule struct {
	ctx *Context
}

// NewTagModule creates a tag module bound to the given context.
func NewTagModule(ctx *Context) *TagModule {
	return &TagModule{ctx: ctx}
}

// Name returns the module name.
func (m *TagModule) Name() string {
	return "tagnav"
}

// Register registers the module into the Lua state as the global
// "tagnav" table.
func (m *TagModule) Register(L *lua.LState) error {
	mod := L.NewTable()

	L.SetField(mod, "next", L.NewFunction(m.next))
	L.SetField(mod, "prev", L.NewFunction(m.prev))
	L.SetField(mod, "select_inner", L.NewFunction(m.selectInner))
	L.SetField(mod, "select_outer", L.NewFunction(m.selectOuter))
	L.SetField(mod, "remove", L.NewFunction(m.remove))
	L.SetField(mod, "content", L.NewFunction(m.content))
	L.SetField(mod, "is_selection_tag", L.NewFunction(m.isSelectionTag))
	L.SetField(mod, "reset", L.NewFunction(m.reset))
	L.SetField(mod, "set_delimiters", L.NewFunction(m.setDelimiters))

	L.SetGlobal("tagnav", mod)
	return nil
}

// pushResult converts a handler result to (ok, message).
func (m *TagModule) pushResult(L *lua.LState, ok bool, msg string, err error) int {
	if err != nil {
		L.RaiseError("tagnav: %v", err)
		return 0
	}
	L.Push(lua.LBool(ok))
	L.Push(lua.LString(msg))
	return 2
}

// next() -> ok, message
// Selects the next tag region.
func (m *TagModule) next(L *lua.LState) int {
	res := m.ctx.Tags.HandleAction(actionFor(tagh.ActionNext), m.ctx.Exec)
	return m.pushResult(L, res.IsOK(), res.Message, res.Error)
}

// prev() -> ok, message
// Selects the previous tag region.
func (m *TagModule) prev(L *lua.LState) int {
	res := m.ctx.Tags.HandleAction(actionFor(tagh.ActionPrev), m.ctx.Exec)
	return m.pushResult(L, res.IsOK(), res.Message, res.Error)
}

// select_inner() -> ok, message
// Selects the content of the current tag.
func (m *TagModule) selectInner(L *lua.LState) int {
	res := m.ctx.Tags.HandleAction(actionFor(tagh.ActionSelectInner), m.ctx.Exec)
	return m.pushResult(L, res.IsOK(), res.Message, res.Error)
}

// select_outer() -> ok, message
// Selects the current tag including delimiters.
func (m *TagModule) selectOuter(L *lua.LState) int {
	res := m.ctx.Tags.HandleAction(actionFor(tagh.ActionSelectOuter), m.ctx.Exec)
	return m.pushResult(L, res.IsOK(), res.Message, res.Error)
}

// remove() -> ok, message
// Removes the current tag, keeping its content.
func (m *TagModule) remove(L *lua.LState) int {
	res := m.ctx.Tags.HandleAction(actionFor(tagh.ActionRemove), m.ctx.Exec)
	return m.pushResult(L, res.IsOK(), res.Message, res.Error)
}

// content() -> string | nil
// Returns the current tag's content.
func (m *TagModule) content(L *lua.LState) int {
	if text, ok := m.ctx.Tags.Content(); ok {
		L.Push(lua.LString(text))
	} else {
		L.Push(lua.LNil)
	}
	return 1
}

// is_selection_tag() -> bool
// Reports whether the active selection spans a delimiter pair.
func (m *TagModule) isSelectionTag(L *lua.LState) int {
	L.Push(lua.LBool(m.ctx.Tags.IsSelectionTag(m.ctx.Exec)))
	return 1
}

// reset()
// Discards tag match state.
func (m *TagModule) reset(L *lua.LState) int {
	m.ctx.Tags.Reset()
	return 0
}

// set_delimiters(open, close)
// Updates the delimiter pair through the configuration store.
func (m *TagModule) setDelimiters(L *lua.LState) int {
	open := L.CheckString(1)
	close := L.CheckString(2)

	if m.ctx.Config == nil {
		L.RaiseError("set_delimiters: no configuration store")
		return 0
	}
	if err := m.ctx.Config.SetDelimiters(open, close); err != nil {
		L.RaiseError("set_delimiters: %v", err)
		return 0
	}
	return 0
}

func actionFor(name string) input.Action {
	return input.NewAction(name)
}
