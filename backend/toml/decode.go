// Package toml decodes TOML documents into variant.Value trees using
// github.com/pelletier/go-toml, preserving table key order the way
// package json preserves JSON object member order.
package toml

import (
	"fmt"
	"io"
	"time"

	gotoml "github.com/pelletier/go-toml"

	"github.com/arnodel/spath/variant"
)

// Decode reads a TOML document from r and converts its root table into a
// variant.Value tree.
func Decode(r io.Reader) (variant.Value, error) {
	tree, err := gotoml.LoadReader(r)
	if err != nil {
		return nil, err
	}
	return treeToValue(tree), nil
}

func treeToValue(tree *gotoml.Tree) variant.Value {
	keys := tree.Keys()
	values := make(map[string]variant.Value, len(keys))
	for _, k := range keys {
		values[k] = convert(tree.GetPath([]string{k}))
	}
	return variant.NewObject(keys, values)
}

// convert maps a value as returned by (*toml.Tree).Get / GetPath into the
// corresponding variant.Value. TOML has no null, and treeToValue only asks
// for keys listed by Keys(), so nil does not arise from a decoded document;
// convert maps it to variant.Nil all the same.
func convert(v interface{}) variant.Value {
	switch x := v.(type) {
	case *gotoml.Tree:
		return treeToValue(x)
	case []*gotoml.Tree:
		items := make([]variant.Value, len(x))
		for i, t := range x {
			items[i] = treeToValue(t)
		}
		return variant.NewArray(items)
	case []interface{}:
		items := make([]variant.Value, len(x))
		for i, e := range x {
			items[i] = convert(e)
		}
		return variant.NewArray(items)
	case int64:
		return variant.Int(x)
	case float64:
		return variant.Float(x)
	case bool:
		return variant.Bool(x)
	case string:
		return variant.String(x)
	case time.Time:
		// TOML datetimes have no SPath-native representation; they surface
		// as RFC 3339 strings, matching how queries would compare them
		// against string literals in a filter expression.
		return variant.String(x.Format(time.RFC3339))
	case nil:
		return variant.Nil
	default:
		return variant.String(fmt.Sprintf("%v", x))
	}
}
