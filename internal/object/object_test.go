package object

import "testing"

func TestReprDecimalAlwaysShowsFractionalPart(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{2.0, "2.0"},
		{2.5, "2.5"},
		{0.1, "0.1"},
		{-3.0, "-3.0"},
	}
	for _, tt := range tests {
		got := (&Decimal{Value: tt.value}).Repr()
		if got != tt.want {
			t.Errorf("Repr(%v) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestReprListQuotesNestedStrings(t *testing.T) {
	list := &List{Elements: []Value{&String{Value: "hi"}, &Integer{Value: 1}}}
	want := `["hi", 1]`
	if got := list.Repr(); got != want {
		t.Errorf("Repr() = %q, want %q", got, want)
	}
}

func TestTopLevelStringReprUnquoted(t *testing.T) {
	s := &String{Value: "hi"}
	if got := s.Repr(); got != "hi" {
		t.Errorf("Repr() = %q, want %q (no quotes at top level)", got, "hi")
	}
}

func TestLessCrossTypeRanking(t *testing.T) {
	vals := []Value{
		NilValue,
		&Boolean{Value: false},
		&Integer{Value: 100},
		&String{Value: "a"},
		&List{},
		NewSet(nil),
		NewDictionary(nil),
	}
	for i := 0; i < len(vals)-1; i++ {
		if !Less(vals[i], vals[i+1]) {
			t.Errorf("expected %s < %s", vals[i].Type(), vals[i+1].Type())
		}
		if Less(vals[i+1], vals[i]) {
			t.Errorf("expected NOT %s < %s", vals[i+1].Type(), vals[i].Type())
		}
	}
}

func TestLessNumericCrossVariant(t *testing.T) {
	if !Less(&Integer{Value: 1}, &Decimal{Value: 1.5}) {
		t.Error("expected Integer(1) < Decimal(1.5)")
	}
	if Less(&Decimal{Value: 2.0}, &Integer{Value: 1}) {
		t.Error("expected NOT Decimal(2.0) < Integer(1)")
	}
}

func TestEqualCrossVariantNumeric(t *testing.T) {
	if !Equal(&Integer{Value: 1}, &Decimal{Value: 1.0}) {
		t.Error("expected Integer(1) == Decimal(1.0)")
	}
	if Equal(&Integer{Value: 1}, &Decimal{Value: 1.5}) {
		t.Error("expected Integer(1) != Decimal(1.5)")
	}
}

func TestEqualStructural(t *testing.T) {
	a := &List{Elements: []Value{&Integer{Value: 1}, &String{Value: "x"}}}
	b := &List{Elements: []Value{&Integer{Value: 1}, &String{Value: "x"}}}
	if !Equal(a, b) {
		t.Error("expected structurally equal lists to be Equal")
	}
	c := &List{Elements: []Value{&Integer{Value: 2}}}
	if Equal(a, c) {
		t.Error("expected differing lists to not be Equal")
	}
}

func TestEqualDifferentTypesFalse(t *testing.T) {
	if Equal(&String{Value: "1"}, &Integer{Value: 1}) {
		t.Error("expected String(\"1\") != Integer(1)")
	}
}

func TestTruthyFalsyValues(t *testing.T) {
	falsy := []Value{
		&Boolean{Value: false},
		NilValue,
		&Integer{Value: 0},
		&Decimal{Value: 0.0},
		&String{Value: ""},
		&List{},
		NewSet(nil),
		NewDictionary(nil),
	}
	for _, v := range falsy {
		if Truthy(v) {
			t.Errorf("expected %s (%s) to be falsy", v.Type(), v.Repr())
		}
	}
}

func TestTruthyTruthyValues(t *testing.T) {
	truthy := []Value{
		&Boolean{Value: true},
		&Integer{Value: 1},
		&Integer{Value: -1},
		&Decimal{Value: 0.1},
		&String{Value: "x"},
		&List{Elements: []Value{&Integer{Value: 1}}},
		NewSet([]Value{&Integer{Value: 1}}),
		&Function{Name: "f"},
	}
	for _, v := range truthy {
		if !Truthy(v) {
			t.Errorf("expected %s (%s) to be truthy", v.Type(), v.Repr())
		}
	}
}

func TestSetDedup(t *testing.T) {
	s := NewSet([]Value{&Integer{Value: 1}, &Integer{Value: 1}, &Integer{Value: 2}})
	if len(s.Elements) != 2 {
		t.Fatalf("elements = %d, want 2", len(s.Elements))
	}
	if !s.Has(&Integer{Value: 1}) || !s.Has(&Integer{Value: 2}) {
		t.Error("expected set to contain 1 and 2")
	}
}

func TestSetReprSortedOrder(t *testing.T) {
	s := NewSet([]Value{&Integer{Value: 3}, &Integer{Value: 1}, &Integer{Value: 2}})
	if got, want := s.Repr(), "{1, 2, 3}"; got != want {
		t.Errorf("Repr() = %q, want %q", got, want)
	}
}

func TestDictionaryRightBiasedMerge(t *testing.T) {
	d := NewDictionary([]DictEntry{
		{Key: &String{Value: "a"}, Value: &Integer{Value: 1}},
		{Key: &String{Value: "b"}, Value: &Integer{Value: 2}},
		{Key: &String{Value: "a"}, Value: &Integer{Value: 9}},
	})
	v, ok := d.Get(&String{Value: "a"})
	if !ok {
		t.Fatal("expected key 'a' present")
	}
	if v.(*Integer).Value != 9 {
		t.Errorf("a = %d, want 9 (later entry should win)", v.(*Integer).Value)
	}
	if len(d.Entries) != 2 {
		t.Errorf("entries = %d, want 2 (duplicate key should not grow the entry list)", len(d.Entries))
	}
}

func TestDictionaryRepr(t *testing.T) {
	d := NewDictionary([]DictEntry{
		{Key: &String{Value: "b"}, Value: &Integer{Value: 2}},
		{Key: &String{Value: "a"}, Value: &Integer{Value: 1}},
	})
	want := `#{"a": 1, "b": 2}`
	if got := d.Repr(); got != want {
		t.Errorf("Repr() = %q, want %q", got, want)
	}
}

func TestPromoteWidensIntegerToDecimal(t *testing.T) {
	a, b := Promote(&Integer{Value: 2}, &Decimal{Value: 1.5})
	if _, ok := a.(*Decimal); !ok {
		t.Fatalf("a = %T, want *Decimal", a)
	}
	if a.(*Decimal).Value != 2.0 {
		t.Errorf("a.Value = %v, want 2.0", a.(*Decimal).Value)
	}
	if b.(*Decimal).Value != 1.5 {
		t.Errorf("b.Value = %v, want 1.5", b.(*Decimal).Value)
	}
}

func TestPromoteLeavesSameTypePairUnchanged(t *testing.T) {
	a, b := Promote(&Integer{Value: 2}, &Integer{Value: 3})
	if a.(*Integer).Value != 2 || b.(*Integer).Value != 3 {
		t.Errorf("Promote changed same-type pair: a=%v b=%v", a, b)
	}
}

func TestFunctionNeedsMore(t *testing.T) {
	f := &Function{Arity: 2}
	if !f.NeedsMore(1) {
		t.Error("expected 1 more arg to still be partial for arity 2")
	}
	if f.NeedsMore(2) {
		t.Error("expected 2 args to fully satisfy arity 2")
	}
	f.Bound = []Value{&Integer{Value: 1}}
	if f.NeedsMore(1) {
		t.Error("expected bound+1 more to satisfy arity 2")
	}
}

func TestEnvironmentClosureSharedCell(t *testing.T) {
	env := NewEnvironment()
	env.Define("c", &Integer{Value: 1}, true)

	inner := NewEnclosedEnvironment(env)
	v, ok := inner.Get("c")
	if !ok || v.(*Integer).Value != 1 {
		t.Fatalf("expected inner scope to see outer binding c=1, got %v, %v", v, ok)
	}

	if !inner.Set("c", &Integer{Value: 2}) {
		t.Fatal("expected Set through inner scope to find outer cell")
	}
	v, _ = env.Get("c")
	if v.(*Integer).Value != 2 {
		t.Errorf("expected mutation via inner scope visible in outer scope, got %v", v.(*Integer).Value)
	}
}

func TestEnvironmentDefineShadowsOuter(t *testing.T) {
	env := NewEnvironment()
	env.Define("x", &Integer{Value: 1}, false)

	inner := NewEnclosedEnvironment(env)
	inner.Define("x", &Integer{Value: 2}, false)

	v, _ := inner.Get("x")
	if v.(*Integer).Value != 2 {
		t.Errorf("inner x = %v, want 2", v.(*Integer).Value)
	}
	outerV, _ := env.Get("x")
	if outerV.(*Integer).Value != 1 {
		t.Errorf("outer x = %v, want 1 (shadowing must not mutate outer)", outerV.(*Integer).Value)
	}
}

func TestEnvironmentSetFailsOnUnknownName(t *testing.T) {
	env := NewEnvironment()
	if env.Set("missing", &Integer{Value: 1}) {
		t.Error("expected Set on undefined name to fail")
	}
}
