// Package execctx provides the execution context for action handlers.
package execctx

import (
	"github.com/dshills/tagnav/internal/engine/buffer"
	"github.com/dshills/tagnav/internal/engine/cursor"
)

// EngineInterface is the narrow editor capability surface handlers
// depend on: text read, range replace, and offset/point conversion.
// It is deliberately small so that handlers are testable against a
// plain in-memory buffer without a host editor.
type EngineInterface interface {
	Text() string
	TextRange(start, end buffer.ByteOffset) string
	Len() buffer.ByteOffset
	Replace(start, end buffer.ByteOffset, text string) (buffer.ByteOffset, error)
	OffsetToPoint(offset buffer.ByteOffset) buffer.Point
	PointToOffset(point buffer.Point) buffer.ByteOffset
	DocumentID() string
	RevisionID() buffer.RevisionID
}

// CursorInterface abstracts selection state for handlers.
type CursorInterface interface {
	Primary() cursor.Selection
	SetPrimary(sel cursor.Selection)
	HasSelection() bool
}

// ExecutionContext provides context for action execution.
type ExecutionContext struct {
	// Engine provides access to the text buffer.
	Engine EngineInterface

	// Cursors provides access to selection state.
	Cursors CursorInterface

	// FilePath is the path of the active document, if any.
	FilePath string

	// Data holds handler-specific context data.
	Data map[string]any
}

// New creates a new execution context.
func New() *ExecutionContext {
	return &ExecutionContext{Data: make(map[string]any)}
}

// WithEngine returns the context with the engine set.
func (ctx *ExecutionContext) WithEngine(engine EngineInterface) *ExecutionContext {
	ctx.Engine = engine
	return ctx
}

// WithCursors returns the context with cursors set.
func (ctx *ExecutionContext) WithCursors(cursors CursorInterface) *ExecutionContext {
	ctx.Cursors = cursors
	return ctx
}

// HasSelection returns true if there is an active selection.
func (ctx *ExecutionContext) HasSelection() bool {
	return ctx.Cursors != nil && ctx.Cursors.HasSelection()
}

// SetData sets a context data value.
func (ctx *ExecutionContext) SetData(key string, value any) {
	if ctx.Data == nil {
		ctx.Data = make(map[string]any)
	}
	ctx.Data[key] = value
}

// GetData retrieves a context data value.
func (ctx *ExecutionContext) GetData(key string) (any, bool) {
	if ctx.Data == nil {
		return nil, false
	}
	v, ok := ctx.Data[key]
	return v, ok
}

// Validate checks that the context has all required components.
func (ctx *ExecutionContext) Validate() error {
	if ctx.Engine == nil {
		return ErrMissingEngine
	}
	return nil
}

// ValidateForEdit checks that the context is valid for editing operations.
func (ctx *ExecutionContext) ValidateForEdit() error {
	if err := ctx.Validate(); err != nil {
		return err
	}
	if ctx.Cursors == nil {
		return ErrMissingCursors
	}
	return nil
}
