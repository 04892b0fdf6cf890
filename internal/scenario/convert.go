package scenario

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
)

// ctyToGo converts a literal cty value from a params block into the plain Go
// representation module parameters use: float64 numbers, strings, bools, and
// nested slices/maps of the same.
func ctyToGo(value cty.Value) (any, error) {
	if value.IsNull() {
		return nil, nil
	}

	ty := value.Type()
	switch {
	case ty.Equals(cty.Number):
		f, _ := value.AsBigFloat().Float64()
		return f, nil
	case ty.Equals(cty.String):
		return value.AsString(), nil
	case ty.Equals(cty.Bool):
		return value.True(), nil
	case ty.IsTupleType() || ty.IsListType() || ty.IsSetType():
		out := make([]any, 0, value.LengthInt())
		for it := value.ElementIterator(); it.Next(); {
			_, elem := it.Element()
			converted, err := ctyToGo(elem)
			if err != nil {
				return nil, err
			}
			out = append(out, converted)
		}
		return out, nil
	case ty.IsObjectType() || ty.IsMapType():
		out := make(map[string]any, value.LengthInt())
		for it := value.ElementIterator(); it.Next(); {
			key, elem := it.Element()
			converted, err := ctyToGo(elem)
			if err != nil {
				return nil, err
			}
			out[key.AsString()] = converted
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported parameter value type %s", ty.FriendlyName())
	}
}
