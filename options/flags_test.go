package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()
	assert.Equal(t, Config{Eq: true, Repr: true}, c)
	assert.Equal(t, "eq|repr", c.String())
	assert.NoError(t, c.Validate())
}

func TestFlagsRoundTrip(t *testing.T) {
	for f := FlagEnum(0); f <= FlagAll; f++ {
		assert.Equal(t, f, FromFlags(f).Flags(), f.String())
	}
}

func TestValidate(t *testing.T) {
	err := Config{Order: true}.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOrderWithoutEq))

	assert.NoError(t, Config{Eq: true, Order: true}.Validate())
	assert.NoError(t, Config{}.Validate())
}

func TestWithWithout(t *testing.T) {
	c := Default().With(FlagOrder | FlagFrozen)
	assert.Equal(t, "eq|order|repr|frozen", c.String())

	c = c.Without(FlagRepr)
	assert.False(t, c.Repr)
	assert.True(t, c.Order)
}

func TestParseFlag(t *testing.T) {
	tests := []struct {
		in   string
		want FlagEnum
	}{
		{"eq", FlagEq},
		{"unsafe_hash", FlagUnsafeHash},
		{" Order ", FlagOrder},
		{"REPR", FlagRepr},
		{"frozen", FlagFrozen},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFlag(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseFlag("slots")
	assert.Error(t, err)
}

func TestHashMode(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want HashMode
	}{
		{"default config is mutable", Default(), HashDisabled},
		{"frozen eq", Config{Eq: true, Frozen: true}, HashDerived},
		{"unsafe hash mutable", Config{Eq: true, UnsafeHash: true}, HashDerived},
		{"unsafe hash without eq", Config{UnsafeHash: true}, HashDerived},
		{"no eq", Config{Repr: true}, HashDefault},
		{"no eq frozen", Config{Frozen: true}, HashDefault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.HashMode())
		})
	}
}
