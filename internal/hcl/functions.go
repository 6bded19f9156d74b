package hcl

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
	"github.com/zclconf/go-cty/cty/gocty"
)

// newEvalContext returns the evaluation context device files are decoded
// with. There are no variables, only helpers for writing long column lists.
func newEvalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Functions: map[string]function.Function{
			"concat": stdlib.ConcatFunc,
			"range":  stdlib.RangeFunc,
			"repeat": RepeatFunc,
		},
	}
}

// RepeatFunc returns a tuple holding count copies of value. A list or tuple
// value is spliced, so repeat(["clexl", "clexm"], 2) yields four elements.
var RepeatFunc = function.New(&function.Spec{
	Params: []function.Parameter{
		{Name: "value", Type: cty.DynamicPseudoType},
		{Name: "count", Type: cty.Number},
	},
	Type: function.StaticReturnType(cty.DynamicPseudoType),
	Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
		var count int
		if err := gocty.FromCtyValue(args[1], &count); err != nil {
			return cty.NilVal, function.NewArgError(1, err)
		}
		if count < 0 {
			return cty.NilVal, function.NewArgErrorf(1, "count must not be negative, got %d", count)
		}

		unit := []cty.Value{args[0]}
		if ty := args[0].Type(); ty.IsListType() || ty.IsTupleType() {
			unit = args[0].AsValueSlice()
		}
		var out []cty.Value
		for i := 0; i < count; i++ {
			out = append(out, unit...)
		}
		if len(out) == 0 {
			return cty.EmptyTupleVal, nil
		}
		return cty.TupleVal(out), nil
	},
})
