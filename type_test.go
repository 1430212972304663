package formula

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeOf(t *testing.T) {
	cases := []struct {
		value    Value
		expected string
	}{
		{Boolean(false), "boolean"},
		{Integer(1), "number"},
		{Text(""), "string"},
		{NewList(), "any[]"},
		{NewList(Integer(1), Integer(2)), "number[]"},
		{NewList(Integer(1), Text("2")), "any[]"},
		{NewList(NewList(Text("a")), NewList(Text("b"))), "string[][]"},
	}
	for _, c := range cases {
		t.Run(c.expected, func(t *testing.T) {
			assert.Equal(t, c.expected, TypeOf(c.value).String())
		})
	}
}

func TestAdmits(t *testing.T) {
	numbers := ListOf(IntegerType)

	assert.True(t, AnyType.Admits(Text("x")))
	assert.False(t, AnyType.Admits(nil))
	assert.True(t, BooleanType.Admits(Boolean(true)))
	assert.False(t, BooleanType.Admits(Integer(1)))
	assert.True(t, numbers.Admits(NewList()))
	assert.True(t, numbers.Admits(NewList(Integer(1), Integer(2))))
	assert.False(t, numbers.Admits(NewList(Integer(1), Text("2"))))
	assert.False(t, numbers.Admits(Integer(1)))
	assert.True(t, ListOf(AnyType).Admits(NewList(Integer(1), Text("2"))))
}

func TestTypeEqualAndElem(t *testing.T) {
	assert.True(t, ListOf(TextType).Equal(ListOf(TextType)))
	assert.False(t, ListOf(TextType).Equal(ListOf(IntegerType)))
	assert.False(t, ListOf(TextType).Equal(TextType))

	elem, ok := ListOf(BooleanType).Elem()
	assert.True(t, ok)
	assert.Equal(t, "boolean", elem.String())

	_, ok = IntegerType.Elem()
	assert.False(t, ok)
}

func TestDescribe(t *testing.T) {
	cases := []struct {
		name     string
		types    []Type
		expected string
	}{
		{"empty", nil, "any"},
		{"single", []Type{TextType}, "string"},
		{"dedup-and-order", []Type{TextType, BooleanType, IntegerType, TextType}, "boolean | number | string"},
		{"lists-last", []Type{ListOf(IntegerType), TextType, ListOf(BooleanType)}, "string | boolean[] | number[]"},
		{"any-absorbs", []Type{IntegerType, AnyType}, "any"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expected, describe(c.types))
		})
	}
}
