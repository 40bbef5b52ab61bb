package api

import (
	"testing"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/tagnav/internal/config"
	"github.com/dshills/tagnav/internal/dispatcher/execctx"
	tagh "github.com/dshills/tagnav/internal/dispatcher/handlers/tag"
	"github.com/dshills/tagnav/internal/engine/buffer"
	"github.com/dshills/tagnav/internal/engine/cursor"
	"github.com/dshills/tagnav/internal/tag"
)

func newLuaFixture(t *testing.T, text string) (*lua.LState, *Context, *buffer.Buffer) {
	t.Helper()

	b := buffer.NewBufferFromString(text)
	ctx := &Context{
		Exec: execctx.New().
			WithEngine(b).
			WithCursors(cursor.NewManager()),
		Tags:   tagh.NewHandler(tag.NewLocator("|<", ">|", true)),
		Config: config.NewStore(config.Default()),
	}

	L := lua.NewState()
	t.Cleanup(L.Close)

	if err := NewTagModule(ctx).Register(L); err != nil {
		t.Fatalf("Register: %v", err)
	}
	return L, ctx, b
}

func TestLuaNextAndContent(t *testing.T) {
	L, ctx, _ := newLuaFixture(t, "pad |<X>| end")

	if err := L.DoString(`ok, msg = tagnav.next()`); err != nil {
		t.Fatalf("DoString: %v", err)
	}
	if lua.LVAsBool(L.GetGlobal("ok")) != true {
		t.Error("tagnav.next() returned false")
	}

	sel := ctx.Exec.Cursors.Primary()
	if sel.Start() != 4 || sel.End() != 9 {
		t.Errorf("selection = [%d,%d), want [4,9)", sel.Start(), sel.End())
	}

	if err := L.DoString(`c = tagnav.content()`); err != nil {
		t.Fatalf("DoString: %v", err)
	}
	if got := lua.LVAsString(L.GetGlobal("c")); got != "X" {
		t.Errorf("content = %q, want %q", got, "X")
	}
}

func TestLuaNextNoMatch(t *testing.T) {
	L, _, _ := newLuaFixture(t, "plain text")

	if err := L.DoString(`ok, msg = tagnav.next()`); err != nil {
		t.Fatalf("DoString: %v", err)
	}
	if lua.LVAsBool(L.GetGlobal("ok")) {
		t.Error("tagnav.next() returned true on tagless buffer")
	}
	if got := lua.LVAsString(L.GetGlobal("msg")); got != tagh.NoTagMessage {
		t.Errorf("message = %q, want %q", got, tagh.NoTagMessage)
	}
}

func TestLuaRemove(t *testing.T) {
	L, _, b := newLuaFixture(t, "before |<X>| after")

	script := `
		tagnav.next()
		ok, msg = tagnav.remove()
	`
	if err := L.DoString(script); err != nil {
		t.Fatalf("DoString: %v", err)
	}
	if got := b.Text(); got != "before X after" {
		t.Errorf("text = %q, want %q", got, "before X after")
	}
}

func TestLuaIsSelectionTag(t *testing.T) {
	L, ctx, _ := newLuaFixture(t, "pad |<X>| end")
	ctx.Exec.Cursors.SetPrimary(cursor.NewSelection(4, 9))

	if err := L.DoString(`is = tagnav.is_selection_tag()`); err != nil {
		t.Fatalf("DoString: %v", err)
	}
	if !lua.LVAsBool(L.GetGlobal("is")) {
		t.Error("is_selection_tag() = false for tag-spanning selection")
	}
}

func TestLuaSetDelimiters(t *testing.T) {
	L, ctx, _ := newLuaFixture(t, "a {{b}} c")

	if err := L.DoString(`tagnav.set_delimiters("{{", "}}")`); err != nil {
		t.Fatalf("DoString: %v", err)
	}
	if got := ctx.Config.Current().Tag.Open; got != "{{" {
		t.Errorf("config open = %q, want {{", got)
	}
}

func TestLuaSetDelimitersInvalid(t *testing.T) {
	L, _, _ := newLuaFixture(t, "x")

	if err := L.DoString(`tagnav.set_delimiters("@@", "@@")`); err == nil {
		t.Error("expected error for identical delimiters")
	}
}

func TestLuaReset(t *testing.T) {
	L, ctx, _ := newLuaFixture(t, "pad |<X>| end")

	script := `
		tagnav.next()
		tagnav.reset()
	`
	if err := L.DoString(script); err != nil {
		t.Fatalf("DoString: %v", err)
	}
	if ctx.Tags.Locator().HasMatch() {
		t.Error("match should be cleared after reset")
	}
}
