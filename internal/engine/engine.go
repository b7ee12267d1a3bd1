package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/csvql/csvql/internal/executor"
	"github.com/csvql/csvql/internal/index"
	"github.com/csvql/csvql/internal/parser"
	"github.com/csvql/csvql/internal/parser/lexer"
	"github.com/csvql/csvql/internal/table"
)

// Engine is the main entry point for the query system. It owns the
// column store and its indexes, both built once at startup and only
// ever read afterwards - queries never mutate them, so the Engine is
// safe to share between readers.
type Engine struct {
	store     *table.ColumnStore
	indexes   map[string]*index.ColumnIndex
	observers []Observer
}

// New creates an Engine over an already loaded and indexed store
func New(store *table.ColumnStore, indexes map[string]*index.ColumnIndex) *Engine {
	return &Engine{
		store:     store,
		indexes:   indexes,
		observers: make([]Observer, 0),
	}
}

// Execute processes one query string and returns the result. Parse and
// execution errors are returned to the caller; the engine stays usable
// for the next query either way.
func (e *Engine) Execute(query string) (*executor.Result, error) {
	queryID := uuid.New().String()

	// 1. Tokenize
	e.notify(Event{Type: EventLexStart, QueryID: queryID, Data: query})
	tokens, err := lexer.Tokenize(query)
	if err != nil {
		return nil, fmt.Errorf("lexer error: %w", err)
	}
	e.notify(Event{Type: EventLexEnd, QueryID: queryID, Data: len(tokens)})

	// 2. Parse
	e.notify(Event{Type: EventParseStart, QueryID: queryID})
	stmt, err := parser.New(tokens).Parse()
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	e.notify(Event{Type: EventParseEnd, QueryID: queryID, Data: stmt.String()})

	// 3. Execute
	e.notify(Event{Type: EventExecStart, QueryID: queryID})
	result, err := executor.Execute(stmt, e.store, e.indexes)
	if err != nil {
		return nil, err
	}
	e.notify(Event{Type: EventExecEnd, QueryID: queryID, Data: map[string]interface{}{
		"rows_returned": len(result.Rows),
	}})

	return result, nil
}

// Columns returns the schema as (name, kind) pairs in natural order
func (e *Engine) Columns() []executor.ColumnMetadata {
	names := e.store.Columns()
	meta := make([]executor.ColumnMetadata, 0, len(names))
	for _, name := range names {
		col, err := e.store.Column(name)
		if err != nil {
			continue
		}
		meta = append(meta, executor.ColumnMetadata{Name: col.Name, Kind: col.Kind})
	}
	return meta
}

// RowCount returns the number of loaded rows
func (e *Engine) RowCount() int {
	return e.store.RowCount()
}

// AddObserver registers an observer to receive lifecycle events
func (e *Engine) AddObserver(observer Observer) {
	e.observers = append(e.observers, observer)
}

// RemoveObserver unregisters an observer
func (e *Engine) RemoveObserver(observer Observer) {
	for i, o := range e.observers {
		if o == observer {
			e.observers = append(e.observers[:i], e.observers[i+1:]...)
			return
		}
	}
}

// notify sends an event to all registered observers
func (e *Engine) notify(event Event) {
	event.Timestamp = time.Now()
	for _, observer := range e.observers {
		observer.OnEvent(event)
	}
}
