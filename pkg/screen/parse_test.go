package screen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInt(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"7", 7, true},
		{" -3 ", -3, true},
		{"", 0, false},
		{"x", 0, false},
		{"1.5", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := Int(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIntRange(t *testing.T) {
	parse := IntRange(1, 2)

	for _, in := range []string{"1", "2"} {
		_, ok := parse(in)
		assert.True(t, ok, in)
	}
	for _, in := range []string{"0", "3", "x", ""} {
		_, ok := parse(in)
		assert.False(t, ok, in)
	}
}

func TestTextAndNonEmpty(t *testing.T) {
	v, ok := Text("  hi ")
	assert.True(t, ok)
	assert.Equal(t, "hi", v)

	_, ok = Text("")
	assert.True(t, ok)

	_, ok = NonEmpty("   ")
	assert.False(t, ok)

	v, ok = NonEmpty(" x ")
	assert.True(t, ok)
	assert.Equal(t, "x", v)
}

func TestOneOf(t *testing.T) {
	parse := OneOf("Red", "Green")

	v, ok := parse("green")
	assert.True(t, ok)
	assert.Equal(t, "Green", v)

	_, ok = parse("blue")
	assert.False(t, ok)
}

func TestConfirm(t *testing.T) {
	for _, in := range []string{"y", "YES", "true", "1"} {
		v, ok := Confirm(in)
		assert.True(t, ok, in)
		assert.True(t, v, in)
	}
	for _, in := range []string{"n", "No", "false", "0"} {
		v, ok := Confirm(in)
		assert.True(t, ok, in)
		assert.False(t, v, in)
	}
	_, ok := Confirm("maybe")
	assert.False(t, ok)
}

func TestChoice(t *testing.T) {
	parse := Choice("Settings", "Quit")

	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"1", 0, true},
		{"2", 1, true},
		{"quit", 1, true},
		{" Settings ", 0, true},
		{"0", 0, false},
		{"3", 0, false},
		{"", 0, false},
		{"help", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := parse(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOptional(t *testing.T) {
	parse := Optional(Confirm, true)

	v, ok := parse("")
	assert.True(t, ok)
	assert.True(t, v)

	v, ok = parse("n")
	assert.True(t, ok)
	assert.False(t, v)

	_, ok = parse("?")
	assert.False(t, ok)
}
