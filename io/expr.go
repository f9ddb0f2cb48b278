package io

import (
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// ParseValues evaluates an input expression, such as "[7, -3]" or
// "range(10)", into input values. A single integer is a list of one.
func ParseValues(expr string) (values []int16, err error) {
	thread := starlark.Thread{Name: "input"}
	opts := syntax.FileOptions{}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "input", prog, starlark.StringDict{})
	if err != nil {
		err = ErrParseExpression(expr)
		return
	}

	rc := dict["rc"]
	if _, ok := rc.(starlark.Int); ok {
		rc = starlark.NewList([]starlark.Value{rc})
	}

	items := starlark.Iterate(rc)
	if items == nil {
		err = ErrParseExpression(expr)
		return
	}
	defer items.Done()

	var item starlark.Value
	for items.Next(&item) {
		st_int, ok := item.(starlark.Int)
		if !ok {
			err = ErrParseExpression(expr)
			return
		}
		v64, ok := st_int.Int64()
		if !ok || v64 < -0x8000 || v64 > 0x7fff {
			err = ErrParseExpression(expr)
			return
		}
		values = append(values, int16(v64))
	}

	return
}
