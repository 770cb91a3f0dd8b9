package plain

import (
	"hash/maphash"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plaindata/options"
)

func TestFields(t *testing.T) {
	pt := MustAugment[Point](pointCfg)

	names, err := Fields(pt)
	require.NoError(t, err)
	assert.Equal(t, []string{"X", "Y"}, names)

	names, err = Fields(pt.MustNew(Point{1, 2}))
	require.NoError(t, err)
	assert.Equal(t, []string{"X", "Y"}, names)

	_, err = Fields(Point{})
	assert.ErrorIs(t, err, ErrTypeMismatch)

	_, err = Fields(nil)
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

func TestDynamicNilTargets(t *testing.T) {
	var (
		nilType *Type[Point]
		nilInst *Instance[Point]
	)

	_, err := Fields(nilType)
	assert.ErrorIs(t, err, ErrTypeMismatch)

	_, err = Fields(nilInst)
	assert.ErrorIs(t, err, ErrTypeMismatch)

	_, err = Replace(nilInst, map[string]any{"X": 1})
	assert.ErrorIs(t, err, ErrTypeMismatch)

	_, err = Hash(nilInst)
	assert.ErrorIs(t, err, ErrTypeMismatch)

	p := MustAugment[Point](pointCfg).MustNew(Point{1, 2})
	assert.False(t, Equal(nilInst, p))
	assert.False(t, Equal(p, nilInst))

	_, err = Compare(nilInst, p)
	assert.ErrorIs(t, err, ErrTypeMismatch)

	_, err = Compare(p, nilInst)
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

func TestReplaceDynamic(t *testing.T) {
	pt := MustAugment[Point](pointCfg)
	p := pt.MustNew(Point{1, 2})

	out, err := Replace(p, map[string]any{"Y": 9})
	require.NoError(t, err)

	q, ok := out.(*Instance[Point])
	require.True(t, ok)
	assert.True(t, q.Equal(pt.MustNew(Point{1, 9})))

	_, err = Replace(Point{1, 2}, map[string]any{"Y": 9})
	assert.ErrorIs(t, err, ErrTypeMismatch)

	_, err = Replace(pt, map[string]any{"Y": 9})
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

func TestDynamicEqualAndCompare(t *testing.T) {
	pt := MustAugment[Point](pointCfg)
	rt := MustAugment[Range](pointCfg)

	a, b := pt.MustNew(Point{1, 2}), pt.MustNew(Point{1, 2})
	r := rt.MustNew(Range{1, 2})

	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, r))
	assert.False(t, Equal(a, Point{1, 2}))

	c, err := Compare(a, pt.MustNew(Point{0, 5}))
	require.NoError(t, err)
	assert.Equal(t, 1, c)

	_, err = Compare(a, r)
	assert.ErrorIs(t, err, ErrConfig)

	_, err = Compare(a, 3)
	assert.ErrorIs(t, err, ErrTypeMismatch)

	h, err := Hash(a)
	require.NoError(t, err)
	direct, err := a.Hash()
	require.NoError(t, err)
	assert.Equal(t, direct, h)

	_, err = Hash("a")
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

func TestDynamicEqualWithoutEq(t *testing.T) {
	pt := MustAugment[Point](options.Config{})
	a, b := pt.MustNew(Point{1, 2}), pt.MustNew(Point{1, 2})

	assert.True(t, Equal(a, a))
	assert.False(t, Equal(a, b))
}

func TestValueHelpers(t *testing.T) {
	assert.True(t, EqualValues(Tag("a"), Tag("A")))
	assert.True(t, EqualValues([]int{1, 2}, []int{1, 2}))
	assert.False(t, EqualValues(1, int64(1)))
	assert.True(t, EqualValues(nil, nil))

	assert.Equal(t, `"x"`, ReprValue("x"))
	assert.Equal(t, "nil", ReprValue(nil))
	assert.Equal(t, "-3", ReprValue(-3))

	assert.Equal(t, -1, CompareBool(false, true))
	assert.Equal(t, 0, CompareBool(true, true))

	type active bool
	assert.Equal(t, -1, CompareBool(active(false), active(true)))
	assert.Equal(t, 1, CompareBool(active(true), active(false)))
	assert.Equal(t, 1, CompareBool(true, false))

	var h1, h2 maphash.Hash
	h1.SetSeed(Seed())
	h2.SetSeed(Seed())
	require.NoError(t, WriteHash(&h1, "abc"))
	require.NoError(t, WriteHash(&h2, "abc"))
	assert.Equal(t, h1.Sum64(), h2.Sum64())
	assert.Error(t, WriteHash(&h1, []int{1}))

	err := UnknownField("Point", "y", []string{"X", "Y"})
	var nameErr *FieldNameError
	require.ErrorAs(t, err, &nameErr)
	assert.Equal(t, "Y", nameErr.Suggestion)

	err = FieldTypeMismatch("X", "int", "one")
	assert.EqualError(t, err, `plaindata: field "X" wants int, got string`)

	assert.Equal(t, []string{"a", "b", "c"}, SortedKeys(map[string]any{"c": 1, "a": 2, "b": 3}))
}

func TestGeneratedCodeHelpers(t *testing.T) {
	err := ValidationFailed("Email", assert.AnError)
	assert.ErrorIs(t, err, ErrInvariant)
	assert.ErrorIs(t, err, assert.AnError)

	err = HashingDisabled("Point")
	assert.ErrorIs(t, err, ErrUnhashable)
	assert.Contains(t, err.Error(), "hashing disabled")

	err = UnhashableField("Bag", "Items", "[]string values are not comparable")
	assert.EqualError(t, err, `plaindata: unhashable Bag: field "Items": []string values are not comparable`)

	require.NoError(t, CheckFields("Bag", []string{"Items"}, map[string]any{"Items": 1}))
	require.NoError(t, CheckFields("Bag", []string{"Items"}, nil))

	err = CheckFields("Bag", []string{"Items"}, map[string]any{"Items": 1, "Zzz": 1, "Itms": 1})

	var nameErr *FieldNameError
	require.ErrorAs(t, err, &nameErr)
	assert.Equal(t, "Itms", nameErr.Field, "first unknown key in sorted order")
	assert.Equal(t, "Items", nameErr.Suggestion)
}
