// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package ast_test

import (
	"testing"

	"github.com/creachadair/mds/mtest"
	"github.com/google/go-cmp/cmp"
	"github.com/timvandam/jchunk/ast"
)

func TestString(t *testing.T) {
	tests := []struct {
		input ast.Value
		want  string
	}{
		{ast.Null{}, "null"},

		{ast.Bool(false), "false"},
		{ast.Bool(true), "true"},

		{ast.String(""), `""`},
		{ast.String("a \t b"), `"a \t b"`},
		{ast.String(`say "hi"`), `"say \"hi\""`},

		{ast.Float(-0.00239), `-0.00239`},
		{ast.MustNumber("1.5e10"), `1.5e10`},

		{ast.Int(0), `0`},
		{ast.Int(15), `15`},
		{ast.Int(-25), `-25`},

		{ast.Array{}, `[]`},
		{ast.Array{
			ast.Bool(false),
		}, `[false]`},
		{ast.Array{
			ast.Bool(true),
			ast.Int(199),
		}, `[true,199]`},
		{ast.Array{
			ast.String("free"),
			ast.String("your"),
			ast.String("mind"),
		}, `["free","your","mind"]`},

		{ast.Object{}, `{}`},
		{ast.Object{
			ast.Field("xs", ast.Null{}),
		}, `{"xs":null}`},
		{ast.Object{
			ast.Field("name", ast.String("Dennis")),
			ast.Field("age", ast.Int(37)),
			ast.Field("isOld", ast.Bool(false)),
		}, `{"name":"Dennis","age":37,"isOld":false}`},

		{ast.Object{
			ast.Field("values", ast.Array{
				ast.Int(5),
				ast.Int(10),
				ast.Bool(true),
			}),
			ast.Field("page", ast.Object{
				ast.Field("token", ast.String("xyz-pdq-zvm")),
				ast.Field("count", ast.Int(100)),
			}),
		}, `{"values":[5,10,true],"page":{"token":"xyz-pdq-zvm","count":100}}`},
	}
	for _, test := range tests {
		got := test.input.JSON()
		if got != test.want {
			t.Errorf("Input: %+v\nGot:  %s\nWant: %s", test.input, got, test.want)
		}
	}
}

func TestObjectSet(t *testing.T) {
	var obj ast.Object
	obj = obj.Set("a", ast.Int(1))
	obj = obj.Set("b", ast.Int(2))
	obj = obj.Set("a", ast.Int(3))

	want := ast.Object{
		ast.Field("b", ast.Int(2)),
		ast.Field("a", ast.Int(3)),
	}
	if diff := cmp.Diff(want, obj); diff != "" {
		t.Errorf("Set (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"b", "a"}, obj.Keys()); diff != "" {
		t.Errorf("Keys (-want, +got):\n%s", diff)
	}
	if m := obj.Find("a"); m == nil || m.Value != ast.Value(ast.Int(3)) {
		t.Errorf(`Find("a"): got %+v, want 3`, m)
	}
	if m := obj.Find("nonesuch"); m != nil {
		t.Errorf(`Find("nonesuch"): got %+v, want nil`, m)
	}
}

func TestNumber(t *testing.T) {
	tests := []struct {
		input string
		ok    bool
		isInt bool
		value float64
	}{
		{"0", true, true, 0},
		{"-0", true, true, 0},
		{"15", true, true, 15},
		{"-6.32", true, false, -6.32},
		{"0.1e-2", true, false, 0.001},
		{"3E+4", true, false, 30000},

		{"", false, false, 0},
		{"-", false, false, 0},
		{"01", false, false, 0},
		{"-01.5", false, false, 0},
		{"1.", false, false, 0},
		{".5", false, false, 0},
		{"1e", false, false, 0},
		{"1e+", false, false, 0},
		{"1-2", false, false, 0},
		{"1.2.3", false, false, 0},
		{"--1", false, false, 0},
		{"1e999", false, false, 0},
	}
	for _, test := range tests {
		n, err := ast.ParseNumber(test.input)
		if err != nil {
			if test.ok {
				t.Errorf("ParseNumber(%q): unexpected error: %v", test.input, err)
			}
			continue
		} else if !test.ok {
			t.Errorf("ParseNumber(%q): got %v, want error", test.input, n)
			continue
		}
		if n.Value != test.value {
			t.Errorf("ParseNumber(%q): got value %v, want %v", test.input, n.Value, test.value)
		}
		if got := n.IsInt(); got != test.isInt {
			t.Errorf("ParseNumber(%q).IsInt: got %v, want %v", test.input, got, test.isInt)
		}
		if n.Text != test.input {
			t.Errorf("ParseNumber(%q).Text: got %q", test.input, n.Text)
		}
	}

	if z, ok := ast.Int(-25).Int64(); !ok || z != -25 {
		t.Errorf("Int64: got %v, %v; want -25, true", z, ok)
	}
	if _, ok := ast.MustNumber("2.5").Int64(); ok {
		t.Error("Int64 of 2.5 should not succeed")
	}

	mtest.MustPanic(t, func() { ast.MustNumber("01") })
	mtest.MustPanic(t, func() { ast.MustNumber("1e400") })
}
