package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ported case-for-case from original_source/transformer/src/scope.rs's own
// `mod tests`, which is the authoritative definition of this algorithm's
// offset/collision semantics.

func TestInsert(t *testing.T) {
	s := New()
	s.Insert("foo")
	assert.True(t, func() bool { _, ok := s.get("foo"); return ok }())
	assert.False(t, s.IsLive("foo"))
}

func TestInsertPrefixedWithoutOffset(t *testing.T) {
	s := New()
	require.Equal(t, "foo", s.InsertStrPrefixed("foo"))
	require.Equal(t, "foo1", s.InsertStrPrefixed("foo"))
	require.Equal(t, "foo2", s.InsertPrefixedItemWithOffset("foo", nil, Default))
	_, ok := s.get("foo3")
	assert.False(t, ok)
}

func TestInsertPrefixedWithOffset0(t *testing.T) {
	s := New()
	zero := uint64(0)
	oneTwoThree := uint64(123)
	require.Equal(t, "foo0", s.InsertPrefixedItemWithOffset("foo", &zero, Default))
	require.Equal(t, "foo1", s.InsertPrefixedItemWithOffset("foo", &oneTwoThree, Default))
	require.Equal(t, "foo2", s.InsertPrefixedItemWithOffset("foo", nil, Default))
	_, ok := s.get("foo")
	assert.False(t, ok)
	_, ok = s.get("foo3")
	assert.False(t, ok)
}

func TestInsertPrefixedWithOffset123(t *testing.T) {
	s := New()
	oneTwoThree := uint64(123)
	threeTwoOne := uint64(321)
	require.Equal(t, "foo123", s.InsertPrefixedItemWithOffset("foo", &oneTwoThree, Default))
	require.Equal(t, "foo124", s.InsertPrefixedItemWithOffset("foo", nil, Default))
	require.Equal(t, "foo125", s.InsertPrefixedItemWithOffset("foo", &threeTwoOne, Default))
	_, ok := s.get("foo")
	assert.False(t, ok)
}

func TestInsertCollision(t *testing.T) {
	s := New()
	s.Insert("foo1")
	one := uint64(1)
	require.Equal(t, "foo11", s.InsertPrefixedItemWithOffset("foo", &one, Default))
}

func TestReplace(t *testing.T) {
	s := New()
	threeTwoOne := uint64(321)
	require.Equal(t, "foo321", s.InsertPrefixedItemWithOffset("foo", &threeTwoOne, Live))
	_, ok := s.get("foo")
	assert.False(t, ok)
	assert.True(t, s.IsLive("foo321"))

	require.Equal(t, "foo322", s.InsertStrPrefixed("foo"))
	s.Insert("foo")
	assert.False(t, s.IsLive("foo"))
	assert.True(t, s.IsLive("foo321"))
	assert.False(t, s.IsLive("foo322"))

	require.Equal(t, "foo1", s.InsertPrefixedItemWithOffset("foo", &threeTwoOne, Default))
	require.Equal(t, "foo2", s.InsertPrefixedItemWithOffset("foo", &threeTwoOne, Default))
}

func TestChildInsert(t *testing.T) {
	root := New()
	root.Insert("foo")
	root.InsertItem("bar", Default)

	s1 := ChildOf(root)
	require.Equal(t, "foo1", s1.InsertStrPrefixed("foo"))
	require.Equal(t, "bar1", s1.InsertStrPrefixed("bar"))

	s2 := ChildOf(s1)
	require.Equal(t, "foo2", s2.InsertStrPrefixed("foo"))
	require.Equal(t, "bar2", s2.InsertStrPrefixed("bar"))

	s3 := ChildOf(s2)
	s4 := ChildOf(s3)
	require.Equal(t, "foo3", s4.InsertStrPrefixed("foo"))
	require.Equal(t, "bar3", s4.InsertStrPrefixed("bar"))

	oneTwoThree := uint64(123)
	threeTwoOne := uint64(321)
	require.Equal(t, "bar4", s4.InsertPrefixedItemWithOffset("bar", &oneTwoThree, Default))
	require.Equal(t, "baz321", s4.InsertPrefixedItemWithOffset("baz", &threeTwoOne, Default))

	s5 := ChildOf(s4)
	s6 := ChildOf(s5)
	s7 := ChildOf(s6)
	s8 := ChildOf(s7)
	oneZeroTwoFour := uint64(1024)
	require.Equal(t, "baz322", s8.InsertPrefixedItemWithOffset("baz", &oneZeroTwoFour, Default))
}

func TestUnameNoMatches(t *testing.T) {
	assert.Equal(t, "foo", Uname("foo", ""))
}

func TestUnameMatches(t *testing.T) {
	assert.Equal(t, "foo_", Uname("foo", "foo"))
	assert.Equal(t, "foo_", Uname("foo", "foo-bar"))
	assert.Equal(t, "foo__", Uname("foo", "foo_"))
	assert.Equal(t, "foo____", Uname("foo", "foo___"))
}
