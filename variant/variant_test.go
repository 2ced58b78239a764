package variant

import "testing"

func TestNumberEquality(t *testing.T) {
	tests := []struct {
		name  string
		a, b  Value
		equal bool
	}{
		{"int equals int", Int(1), Int(1), true},
		{"int equals float with same value", Int(1), Float(1.0), true},
		{"float equals float", Float(1.5), Float(1.5), true},
		{"different ints", Int(1), Int(2), false},
		{"number vs string never equal", Int(1), String("1"), false},
		{"null vs null", Nil, Nil, true},
		{"null vs false", Nil, Bool(false), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Equal(tc.b); got != tc.equal {
				t.Errorf("Equal() = %v, want %v", got, tc.equal)
			}
		})
	}
}

func TestIsLessThan(t *testing.T) {
	tests := []struct {
		name      string
		a, b      Value
		want      bool
		wantOK    bool
	}{
		{"1 < 2", Int(1), Int(2), true, true},
		{"2 < 1", Int(2), Int(1), false, true},
		{"a < b", String("a"), String("b"), true, true},
		{"string vs number not ordered", String("a"), Int(1), false, false},
		{"bool not ordered", Bool(true), Bool(false), false, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tc.a.IsLessThan(tc.b)
			if ok != tc.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tc.wantOK)
			}
			if ok && got != tc.want {
				t.Errorf("IsLessThan() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestDeepEqualArraysAndObjects(t *testing.T) {
	a := NewArray([]Value{Int(1), String("x"), Bool(true)})
	b := NewArray([]Value{Int(1), String("x"), Bool(true)})
	c := NewArray([]Value{Int(1), String("x"), Bool(false)})
	if !DeepEqual(a, b) {
		t.Error("expected equal arrays to be equal")
	}
	if DeepEqual(a, c) {
		t.Error("expected differing arrays to be unequal")
	}

	o1 := NewObject([]string{"a", "b"}, map[string]Value{"a": Int(1), "b": Int(2)})
	o2 := NewObject([]string{"b", "a"}, map[string]Value{"a": Int(1), "b": Int(2)})
	if !DeepEqual(o1, o2) {
		t.Error("expected objects with same keys in different order to be equal")
	}
}

func TestFromJSONLiteral(t *testing.T) {
	if FromJSONLiteral(nil).Kind() != Null {
		t.Error("nil should map to Null")
	}
	if v := FromJSONLiteral(float64(10)); v.Kind() != Number {
		t.Error("float64 should map to Number")
	}
	if v := FromJSONLiteral("hi"); v.Kind() != String {
		t.Error("string should map to String")
	}
}
