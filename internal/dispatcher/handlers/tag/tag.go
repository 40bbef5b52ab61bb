// Package tag provides the navigation driver for tag regions: it runs
// the locator against the active buffer and turns results into
// selections and edits.
package tag

import (
	"github.com/dshills/tagnav/internal/dispatcher/execctx"
	"github.com/dshills/tagnav/internal/dispatcher/handler"
	"github.com/dshills/tagnav/internal/engine/buffer"
	"github.com/dshills/tagnav/internal/engine/cursor"
	"github.com/dshills/tagnav/internal/input"
	"github.com/dshills/tagnav/internal/tag"
)

// Action names for tag operations.
const (
	ActionNext        = "tag.next"        // select the next tag region
	ActionPrev        = "tag.prev"        // select the previous tag region
	ActionSelectInner = "tag.selectInner" // select the content of the current tag
	ActionSelectOuter = "tag.selectOuter" // select the current tag including delimiters
	ActionRemove      = "tag.remove"      // remove the current tag, keeping content
	ActionReset       = "tag.reset"       // discard tag match state
)

// NoTagMessage is surfaced when a scan finds nothing. Absence of a tag
// is a normal outcome, never an error.
const NoTagMessage = "no tag found"

// Handler implements namespace-based tag navigation. It owns the
// locator and therefore the single live match state; all calls must
// come from one logical owner (the editor's command dispatch).
type Handler struct {
	loc *tag.Locator

	// Identity of the buffer state the current match was computed
	// against. A mismatch invalidates the match.
	docID    string
	revision buffer.RevisionID
}

// NewHandler creates a tag handler around the given locator.
func NewHandler(loc *tag.Locator) *Handler {
	return &Handler{loc: loc}
}

// Locator returns the underlying locator.
func (h *Handler) Locator() *tag.Locator {
	return h.loc
}

// Namespace returns the tag namespace.
func (h *Handler) Namespace() string {
	return "tag"
}

// CanHandle returns true if this handler can process the action.
func (h *Handler) CanHandle(actionName string) bool {
	switch actionName {
	case ActionNext, ActionPrev, ActionSelectInner, ActionSelectOuter,
		ActionRemove, ActionReset:
		return true
	}
	return false
}

// HandleAction processes a tag action.
func (h *Handler) HandleAction(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
	if err := ctx.ValidateForEdit(); err != nil {
		return handler.Error(err)
	}

	switch action.Name {
	case ActionNext:
		return h.Navigate(ctx, tag.Forward)
	case ActionPrev:
		return h.Navigate(ctx, tag.Backward)
	case ActionSelectInner:
		return h.SelectInner(ctx)
	case ActionSelectOuter:
		return h.SelectOuter(ctx)
	case ActionRemove:
		return h.Remove(ctx)
	case ActionReset:
		h.Reset()
		return handler.Success()
	default:
		return handler.Errorf("unknown tag action: %s", action.Name)
	}
}

// Navigate locates the nearest tag region in the given direction and
// selects its outer span. Forward scans start at the current selection
// end, backward scans one position before the selection start, so that
// repeated navigation moves past the just-found region.
func (h *Handler) Navigate(ctx *execctx.ExecutionContext, dir tag.Direction) handler.Result {
	h.invalidateIfStale(ctx)

	text := ctx.Engine.Text()
	sel := ctx.Cursors.Primary()

	origin := sel.End()
	if dir == tag.Backward {
		origin = sel.Start() - 1
	}

	if !h.loc.Locate(text, origin, dir, false) {
		return handler.NoOpWithMessage(NoTagMessage)
	}

	h.docID = ctx.Engine.DocumentID()
	h.revision = ctx.Engine.RevisionID()

	outer, _ := h.loc.Outer()
	newSel := cursor.NewRangeSelection(outer)
	ctx.Cursors.SetPrimary(newSel)
	return handler.Success().WithSelection(newSel)
}

// SelectInner selects the content span of the current tag. When no
// match is live but the active selection itself spans a delimiter
// pair, the inner span is derived from the selection without a scan.
func (h *Handler) SelectInner(ctx *execctx.ExecutionContext) handler.Result {
	h.invalidateIfStale(ctx)

	if inner, ok := h.loc.Inner(); ok {
		newSel := cursor.NewRangeSelection(inner)
		ctx.Cursors.SetPrimary(newSel)
		return handler.Success().WithSelection(newSel)
	}

	if r, ok := h.selectionTagBounds(ctx); ok {
		open, close := h.loc.Delimiters()
		inner := buffer.Range{Start: r.Start + len(open), End: r.End - len(close)}
		newSel := cursor.NewRangeSelection(inner)
		ctx.Cursors.SetPrimary(newSel)
		return handler.Success().WithSelection(newSel)
	}

	return handler.NoOpWithMessage(NoTagMessage)
}

// SelectOuter selects the current tag including its delimiters.
func (h *Handler) SelectOuter(ctx *execctx.ExecutionContext) handler.Result {
	h.invalidateIfStale(ctx)

	if outer, ok := h.loc.Outer(); ok {
		newSel := cursor.NewRangeSelection(outer)
		ctx.Cursors.SetPrimary(newSel)
		return handler.Success().WithSelection(newSel)
	}

	if r, ok := h.selectionTagBounds(ctx); ok {
		newSel := cursor.NewRangeSelection(r)
		ctx.Cursors.SetPrimary(newSel)
		return handler.Success().WithSelection(newSel)
	}

	return handler.NoOpWithMessage(NoTagMessage)
}

// Remove replaces the current tag's outer span with its content and
// clears the match state, since the edit shifts every later offset.
func (h *Handler) Remove(ctx *execctx.ExecutionContext) handler.Result {
	h.invalidateIfStale(ctx)

	r, content, ok := h.loc.Removal()
	if !ok {
		// Fall back to a selection that itself spans a tag.
		sr, sok := h.selectionTagBounds(ctx)
		if !sok {
			return handler.NoOpWithMessage(NoTagMessage)
		}
		open, close := h.loc.Delimiters()
		r = sr
		content = ctx.Engine.TextRange(sr.Start+len(open), sr.End-len(close))
	}

	oldText := ctx.Engine.TextRange(r.Start, r.End)
	if _, err := ctx.Engine.Replace(r.Start, r.End, content); err != nil {
		return handler.Error(err)
	}
	h.Reset()

	newSel := cursor.NewCursorSelection(r.Start + len(content))
	ctx.Cursors.SetPrimary(newSel)

	return handler.Success().
		WithEdit(handler.Edit{Range: r, NewText: content, OldText: oldText}).
		WithSelection(newSel).
		WithMessage("tag removed")
}

// IsSelectionTag reports whether the active selection's text starts
// with the opening delimiter and ends with the closing delimiter.
func (h *Handler) IsSelectionTag(ctx *execctx.ExecutionContext) bool {
	_, ok := h.selectionTagBounds(ctx)
	return ok
}

// Content returns the current match's content, if any.
func (h *Handler) Content() (string, bool) {
	return h.loc.Content()
}

// Reset discards the match state.
func (h *Handler) Reset() {
	h.loc.Reset()
	h.docID = ""
	h.revision = 0
}

// selectionTagBounds returns the active selection's range when its
// text exactly spans a delimiter pair.
func (h *Handler) selectionTagBounds(ctx *execctx.ExecutionContext) (buffer.Range, bool) {
	if ctx.Cursors == nil {
		return buffer.Range{}, false
	}
	sel := ctx.Cursors.Primary()
	if sel.IsEmpty() {
		return buffer.Range{}, false
	}
	r := sel.Range()
	if !h.loc.IsSelectionTag(ctx.Engine.TextRange(r.Start, r.End)) {
		return buffer.Range{}, false
	}
	return r, true
}

// invalidateIfStale discards the match when the document changed
// identity or revision since the match was computed: its offsets no
// longer describe the current text.
func (h *Handler) invalidateIfStale(ctx *execctx.ExecutionContext) {
	if !h.loc.HasMatch() {
		return
	}
	if h.docID != ctx.Engine.DocumentID() || h.revision != ctx.Engine.RevisionID() {
		h.Reset()
	}
}
