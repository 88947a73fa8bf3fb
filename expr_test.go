package willowui

import (
	"errors"
	"testing"
)

func TestExprEval(t *testing.T) {
	vars := Vars{"WINDOW_RIGHT": 800, "WIDTH": 300, "PARENT_BOTTOM": 50}
	tests := []struct {
		src  string
		want int
	}{
		{"42", 42},
		{"-5", -5},
		{"1 + 2 * 3", 7},
		{"(1 + 2) * 3", 9},
		{"(WINDOW_RIGHT - WIDTH) / 2", 250},
		{"PARENT_BOTTOM - 10", 40},
		{"7 / 2", 3},
		{"-7 / 2", -3},
		{"10 % 4", 2},
		{"--3", 3},
		{"+4", 4},
	}
	for _, tt := range tests {
		e, err := ParseExpr(tt.src)
		if err != nil {
			t.Fatalf("ParseExpr(%q): %v", tt.src, err)
		}
		got, err := e.Eval(vars)
		if err != nil {
			t.Fatalf("Eval(%q): %v", tt.src, err)
		}
		if got != tt.want {
			t.Errorf("Eval(%q) = %d, want %d", tt.src, got, tt.want)
		}
	}
}

func TestExprParseErrors(t *testing.T) {
	for _, src := range []string{"", "1 +", "(1 + 2", "1 2", "3 $ 4", ")"} {
		if _, err := ParseExpr(src); !errors.Is(err, ErrBadExpression) {
			t.Errorf("ParseExpr(%q) err = %v, want ErrBadExpression", src, err)
		}
	}
}

func TestExprUnknownVariable(t *testing.T) {
	e := MustParseExpr("FOO + 1")
	_, err := e.Eval(Vars{})
	if !errors.Is(err, ErrUnknownVariable) {
		t.Errorf("err = %v, want ErrUnknownVariable", err)
	}
}

func TestExprDivisionByZero(t *testing.T) {
	e := MustParseExpr("10 / ZERO")
	if _, err := e.Eval(Vars{"ZERO": 0}); !errors.Is(err, ErrBadExpression) {
		t.Errorf("err = %v, want ErrBadExpression", err)
	}
}

func TestZeroExprIsZero(t *testing.T) {
	var e Expr
	if !e.IsZero() {
		t.Error("zero Expr should report IsZero")
	}
	v, err := e.Eval(nil)
	if err != nil || v != 0 {
		t.Errorf("Eval = %d, %v; want 0, nil", v, err)
	}
}

func TestMustParseExprPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	MustParseExpr("1 +")
}
