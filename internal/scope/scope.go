// Package scope implements the liveness-aware lexical scope chain the
// dependency traverser and JSX lowering engine (both in internal/tr)
// consult to decide whether a read of an identifier must be rewritten into
// a runtime `.getValue()` call. It also mints collision-free names for
// synthesized bindings (runtime namespace imports, unmount signals,
// per-component argument objects).
//
// Grounded on original_source/transformer/src/scope.rs (Scope, ScopeItem,
// insert_prefixed_item_with_offset) and glob.rs (uname).
package scope

import (
	"fmt"
	"strings"

	"github.com/viewmill/viewmill/internal/js_ast"
)

// Marker records whether a name bound in a Scope is a reactive "live" cell
// (its reads must route through the runtime's getValue accessor) or an
// ordinary, Default binding.
type Marker uint8

const (
	Default Marker = iota
	Live
)

func (m Marker) IsLive() bool { return m == Live }

// Scope is a single lexical level: a name -> Marker map plus a per-prefix
// counter used by InsertPrefixedItemWithOffset to mint fresh names.
// Mirrors scope.rs's Scope<'a> exactly, trading Rust's borrowed parent
// reference for a plain pointer (this repo's Scope chains are always
// tree-shaped and outlive their children for the span of one transform).
type Scope struct {
	parent     *Scope
	items      map[string]Marker
	countedSet map[string]uint64
}

// New creates a fresh root scope with no parent.
func New() *Scope {
	return &Scope{
		items:      make(map[string]Marker),
		countedSet: make(map[string]uint64),
	}
}

// ChildOf creates a new scope nested under parent, matching
// Scope::child_of.
func ChildOf(parent *Scope) *Scope {
	s := New()
	s.parent = parent
	return s
}

// IsLive reports whether name resolves, through this scope and its
// ancestors, to a Live binding. An unbound name is never live.
func (s *Scope) IsLive(name string) bool {
	item, ok := s.get(name)
	return ok && item.IsLive()
}

func (s *Scope) get(name string) (Marker, bool) {
	if item, ok := s.items[name]; ok {
		return item, true
	}
	if s.parent != nil {
		return s.parent.get(name)
	}
	return Default, false
}

// Insert binds name as a Default (non-live) item.
func (s *Scope) Insert(name string) {
	s.InsertItem(name, Default)
}

// InsertItem binds name with the given marker and resets its prefix
// counter, so a later InsertPrefixedItemWithOffset(name, ...) starts fresh
// in this scope.
func (s *Scope) InsertItem(name string, item Marker) {
	s.items[name] = item
	s.countedSet[name] = 0
}

// InsertPatItem walks every identifier bound by a destructuring pattern
// and inserts each with the given marker, mirroring
// walk_every_pat_idents + insert_pat_item.
func (s *Scope) InsertPatItem(b js_ast.Binding, item Marker) {
	WalkBindingIdents(b, func(name string) {
		s.InsertItem(name, item)
	})
}

// InsertStrPrefixed mints a fresh Default-marked name from prefix with no
// explicit offset, the common case used throughout internal/tr for
// synthesized locals.
func (s *Scope) InsertStrPrefixed(prefix string) string {
	return s.InsertPrefixedItemWithOffset(prefix, nil, Default)
}

// InsertPrefixedItemWithOffset mints a collision-free name starting from
// prefix. The first call in a scope chain for a given prefix yields the
// bare prefix itself (unless offset forces a numeric suffix from the
// start); every subsequent call in the same chain yields prefix+N for an
// increasing N, continuing any counter already established by an ancestor
// scope. If the minted name collides with something already visible in
// this scope chain (e.g. a user-written identifier that happens to look
// like one of ours), minting starts over with the colliding name as the
// prefix, so a taken "foo1" yields "foo11".
//
// This is a direct port of scope.rs's insert_prefixed_item_with_offset;
// see that file's test suite (reproduced in scope_test.go) for the exact
// offset/collision semantics this algorithm must reproduce.
func (s *Scope) InsertPrefixedItemWithOffset(prefix string, offset *uint64, item Marker) string {
	var c uint64
	if existing, ok := s.countedSet[prefix]; ok {
		c = existing + 1
		s.countedSet[prefix] = c
	} else {
		var count *uint64
		cur := s.parent
		for cur != nil {
			if pc, ok := cur.countedSet[prefix]; ok {
				v := pc + 1
				count = &v
				break
			}
			cur = cur.parent
		}
		switch {
		case count != nil:
			c = *count
		case offset != nil:
			c = *offset
		default:
			c = 0
		}
		s.countedSet[prefix] = c
	}

	var name string
	if c == 0 && offset == nil {
		name = prefix
	} else {
		name = fmt.Sprintf("%s%d", prefix, c)
	}

	if name != prefix {
		if _, ok := s.get(name); ok {
			return s.InsertPrefixedItemWithOffset(name, offset, item)
		}
	}
	s.items[name] = item
	return name
}

// WalkBindingIdents calls fn for every identifier name a binding pattern
// introduces, in left-to-right order, including defaults/rests/nested
// array and object patterns. Grounded on utils.rs's walk_every_pat_idents.
func WalkBindingIdents(b js_ast.Binding, fn func(name string)) {
	switch d := b.Data.(type) {
	case *js_ast.BIdentifier:
		fn(d.Name)
	case *js_ast.BArray:
		for _, elem := range d.Items {
			if elem.Binding.Data == nil {
				continue
			}
			WalkBindingIdents(elem.Binding, fn)
		}
	case *js_ast.BObject:
		for _, prop := range d.Properties {
			if prop.Kind == js_ast.OBPRest {
				fn(prop.Key.Ident)
				continue
			}
			WalkBindingIdents(prop.Value, fn)
		}
	case *js_ast.BAssign:
		WalkBindingIdents(d.Left, fn)
	}
}

// Uname returns a name derived from want that does not occur anywhere in
// src as a substring — including inside string and comment text. This is
// conservative by design (see DESIGN.md's Open Question on name minting):
// it trades a few false-positive underscores for never needing to inspect
// whether a substring match is a real identifier occurrence. Grounded on
// glob.rs's uname.
func Uname(want string, src string) string {
	if !strings.Contains(src, want) {
		return want
	}
	name := want + "_"
	for strings.Contains(src, name) {
		name += "_"
	}
	return name
}
