package plain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plaindata/options"
)

type Point struct {
	X int
	Y int
}

type Base struct {
	ID int
}

type Tagged struct {
	Base
	Name string
}

type Shadowed struct {
	Base
	ID string
}

type hidden struct {
	secret int
}

type WithHidden struct {
	hidden
	Visible int
	private string
}

type record struct {
	ID   int
	note string
}

type User struct {
	record
	Name string
}

type Empty struct{}

type Named struct {
	Name  string
	Count int
}

func (Named) String() string { return "named" }

type Bag struct {
	Items []string
}

type Lookup struct {
	Index map[string]int
}

type Range struct {
	Min int
	Max int
}

type Email struct {
	Addr string
}

func (e Email) Validate() error {
	if e.Addr == "" {
		return errors.New("empty address")
	}

	return nil
}

var pointCfg = options.Default().With(options.FlagOrder | options.FlagFrozen)

func TestAugmentPoint(t *testing.T) {
	pt, err := Augment[Point](pointCfg)
	require.NoError(t, err)

	assert.Equal(t, "Point", pt.Name())
	assert.Equal(t, []string{"X", "Y"}, pt.Fields())
	assert.Equal(t, pointCfg, pt.Config())

	f, ok := pt.Descriptor().Field("Y")
	require.True(t, ok)
	assert.Equal(t, 1, f.Position)
	assert.Equal(t, "int", f.Type.String())
}

func TestAugmentRejectsOrderWithoutEq(t *testing.T) {
	_, err := Augment[Point](options.Config{Order: true})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfig)
	assert.ErrorIs(t, err, options.ErrOrderWithoutEq)

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "Point", cfgErr.Type)
}

func TestAugmentRejectsNonStruct(t *testing.T) {
	_, err := Augment[int](options.Default())
	assert.ErrorIs(t, err, ErrShape)

	_, err = Augment[*Point](options.Default())
	assert.ErrorIs(t, err, ErrShape)
}

func TestAugmentRejectsExistingMethod(t *testing.T) {
	_, err := Augment[Named](options.Default())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfig)
	assert.Contains(t, err.Error(), "can't generate String: method already exists")

	// Without repr nothing clashes.
	nt, err := Augment[Named](options.Default().Without(options.FlagRepr))
	require.NoError(t, err)
	assert.Equal(t, []string{"Name", "Count"}, nt.Fields())
}

func TestAugmentRejectsUnorderableField(t *testing.T) {
	_, err := Augment[Lookup](options.Default().With(options.FlagOrder))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfig)
	assert.Contains(t, err.Error(), "field Index")
}

func TestAugmentRejectsBadInvariant(t *testing.T) {
	_, err := Augment[Range](options.Default(), WithInvariant("Min +"))
	assert.ErrorIs(t, err, ErrConfig)

	_, err = Augment[Range](options.Default(), WithInvariant("Min + Max"))
	assert.ErrorIs(t, err, ErrConfig)
}

func TestFieldDiscovery(t *testing.T) {
	tests := []struct {
		name     string
		fields   func() []string
		expected []string
	}{
		{"embedded struct is flattened", func() []string { return MustAugment[Tagged](options.Default()).Fields() }, []string{"ID", "Name"}},
		{"shallow field shadows promoted one", func() []string { return MustAugment[Shadowed](options.Default()).Fields() }, []string{"ID"}},
		{"unexported embedded struct is flattened", func() []string { return MustAugment[User](options.Default()).Fields() }, []string{"ID", "Name"}},
		{"unexported fields are skipped", func() []string { return MustAugment[WithHidden](options.Default()).Fields() }, []string{"Visible"}},
		{"no fields", func() []string { return MustAugment[Empty](options.Default()).Fields() }, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.fields())
		})
	}

	f, ok := MustAugment[Shadowed](options.Default()).Descriptor().Field("ID")
	require.True(t, ok)
	assert.Equal(t, "string", f.Type.String())
}

func TestUnexportedEmbeddedFields(t *testing.T) {
	ut := MustAugment[User](options.Default().With(options.FlagFrozen))

	a := User{record: record{ID: 1, note: "first"}, Name: "ada"}
	b := User{record: record{ID: 2}, Name: "ada"}

	assert.False(t, ut.Equal(a, b))
	assert.Equal(t, `User(ID=1, Name="ada")`, ut.Repr(a))

	ha, err := ut.Hash(a)
	require.NoError(t, err)

	hb, err := ut.Hash(b)
	require.NoError(t, err)
	assert.NotEqual(t, ha, hb)

	moved, err := ut.Replace(a, map[string]any{"ID": 2})
	require.NoError(t, err)
	assert.True(t, ut.Equal(moved, b))
	assert.Equal(t, 1, a.ID)
}

func TestWithName(t *testing.T) {
	pt := MustAugment[Point](pointCfg, WithName("geo.Point"))
	assert.Equal(t, "geo.Point(X=1, Y=2)", pt.Repr(Point{1, 2}))
}

func TestMake(t *testing.T) {
	pt := MustAugment[Point](pointCfg)

	p, err := pt.Make(map[string]any{"X": 3})
	require.NoError(t, err)
	assert.Equal(t, Point{X: 3}, p.Value())

	_, err = pt.Make(map[string]any{"X": "three"})
	var mismatch *TypeMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "X", mismatch.Field)
	assert.Equal(t, "int", mismatch.Want)
	assert.Equal(t, "string", mismatch.Got)

	_, err = pt.Make(map[string]any{"Z": 1})
	assert.ErrorIs(t, err, ErrFieldName)

	_, err = pt.Make(map[string]any{"X": nil})
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

func TestFieldNameSuggestion(t *testing.T) {
	nt := MustAugment[Named](options.Default().Without(options.FlagRepr))

	_, err := nt.Make(map[string]any{"Nmae": "x"})

	var nameErr *FieldNameError
	require.ErrorAs(t, err, &nameErr)
	assert.Equal(t, "Nmae", nameErr.Field)
	assert.Equal(t, "Named", nameErr.Type)
	assert.Equal(t, "Name", nameErr.Suggestion)
	assert.Contains(t, err.Error(), `did you mean "Name"?`)

	_, err = nt.Make(map[string]any{"Weight": 1})
	require.ErrorAs(t, err, &nameErr)
	assert.Empty(t, nameErr.Suggestion)
}

func TestTypeEqualAndCompare(t *testing.T) {
	pt := MustAugment[Point](pointCfg)

	assert.True(t, pt.Equal(Point{1, 2}, Point{1, 2}))
	assert.False(t, pt.Equal(Point{1, 2}, Point{2, 1}))

	tests := []struct {
		a, b     Point
		expected int
	}{
		{Point{1, 2}, Point{1, 3}, -1},
		{Point{2, 1}, Point{1, 9}, 1},
		{Point{1, 2}, Point{1, 2}, 0},
		{Point{-5, 0}, Point{0, -5}, -1},
	}

	for _, tt := range tests {
		c, err := pt.Compare(tt.a, tt.b)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, c, "%v vs %v", tt.a, tt.b)
	}

	less, err := pt.Less(Point{2, 1}, Point{1, 9})
	require.NoError(t, err)
	assert.False(t, less)
}

func TestTypeCompareWithoutOrder(t *testing.T) {
	pt := MustAugment[Point](options.Default())

	_, err := pt.Compare(Point{1, 2}, Point{1, 3})
	assert.ErrorIs(t, err, ErrConfig)
}

func TestTypeEqualWithoutEq(t *testing.T) {
	pt := MustAugment[Point](options.Config{})
	assert.True(t, pt.Equal(Point{1, 2}, Point{1, 2}))

	bt := MustAugment[Bag](options.Config{})
	assert.False(t, bt.Equal(Bag{}, Bag{}))
}

func TestTypeHash(t *testing.T) {
	frozen := MustAugment[Point](pointCfg)

	h1, err := frozen.Hash(Point{1, 2})
	require.NoError(t, err)
	h2, err := frozen.Hash(Point{1, 2})
	require.NoError(t, err)
	assert.Equal(t, h1, h2)

	mutable := MustAugment[Point](options.Default())
	_, err = mutable.Hash(Point{1, 2})
	assert.ErrorIs(t, err, ErrUnhashable)

	bags := MustAugment[Bag](options.Default().With(options.FlagUnsafeHash))
	_, err = bags.Hash(Bag{Items: []string{"a"}})

	var unhashable *UnhashableTypeError
	require.ErrorAs(t, err, &unhashable)
	assert.Equal(t, "Items", unhashable.Field)

	plainBags := MustAugment[Bag](options.Config{})
	_, err = plainBags.Hash(Bag{})
	assert.ErrorIs(t, err, ErrUnhashable)
}

func TestTypeRepr(t *testing.T) {
	pt := MustAugment[Point](pointCfg)
	assert.Equal(t, "Point(X=1, Y=2)", pt.Repr(Point{1, 2}))

	bare := MustAugment[Point](options.Config{Eq: true})
	assert.Equal(t, "{1 2}", bare.Repr(Point{1, 2}))

	et := MustAugment[Empty](options.Default())
	assert.Equal(t, "Empty()", et.Repr(Empty{}))
}

func TestTypeReplace(t *testing.T) {
	pt := MustAugment[Point](pointCfg)

	orig := Point{1, 2}
	next, err := pt.Replace(orig, map[string]any{"Y": 9})
	require.NoError(t, err)
	assert.Equal(t, Point{1, 9}, next)
	assert.Equal(t, Point{1, 2}, orig)

	same, err := pt.Replace(orig, nil)
	require.NoError(t, err)
	assert.True(t, pt.Equal(orig, same))

	_, err = pt.Replace(orig, map[string]any{"Y": 9, "Q": 1})
	assert.ErrorIs(t, err, ErrFieldName)
}

func TestUnknownNameWinsOverWrongValue(t *testing.T) {
	bt := MustAugment[Bag](options.Default())
	bag := Bag{Items: []string{"a"}}

	_, err := bt.Replace(bag, map[string]any{"Items": 1, "Zzz": 1})

	var nameErr *FieldNameError
	require.ErrorAs(t, err, &nameErr)
	assert.Equal(t, "Zzz", nameErr.Field)
	assert.NotErrorIs(t, err, ErrTypeMismatch)

	_, err = bt.MustNew(bag).Replace(map[string]any{"Items": 1, "Zzz": 1})
	require.ErrorAs(t, err, &nameErr)

	_, err = bt.Make(map[string]any{"Items": 1, "Zzz": 1})
	require.ErrorAs(t, err, &nameErr)

	_, err = bt.Replace(bag, map[string]any{"Items": 1})
	require.ErrorIs(t, err, ErrTypeMismatch)
}

func TestInvariants(t *testing.T) {
	rt := MustAugment[Range](options.Default().With(options.FlagFrozen), WithInvariant("Min <= Max"))

	r, err := rt.New(Range{Min: 1, Max: 5})
	require.NoError(t, err)

	_, err = rt.New(Range{Min: 6, Max: 5})
	assert.ErrorIs(t, err, ErrInvariant)

	_, err = r.Replace(map[string]any{"Min": 10})
	assert.ErrorIs(t, err, ErrInvariant)
	assert.Equal(t, Range{Min: 1, Max: 5}, r.Value())

	_, err = rt.Replace(Range{Min: 1, Max: 5}, map[string]any{"Max": 0})
	assert.ErrorIs(t, err, ErrInvariant)

	_, err = rt.Make(map[string]any{"Max": -1})
	assert.ErrorIs(t, err, ErrInvariant)
}

func TestValidateHook(t *testing.T) {
	et := MustAugment[Email](options.Default())

	_, err := et.New(Email{Addr: "a@example.com"})
	require.NoError(t, err)

	_, err = et.New(Email{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvariant)
	assert.Contains(t, err.Error(), "empty address")

	assert.Panics(t, func() { et.MustNew(Email{}) })
}
