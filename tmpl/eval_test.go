package tmpl

import (
	"errors"
	"testing"
	"time"
)

func TestEvaluate_Arithmetic(t *testing.T) {
	result, err := Evaluate("1 + 2", nil)
	if err != nil {
		t.Fatalf("evaluate error: %v", err)
	}

	if result != 3 {
		t.Errorf("expected 3, got %v (%T)", result, result)
	}
}

func TestEvaluate_Deterministic(t *testing.T) {
	names := map[string]any{"x": 5}

	first, err := Evaluate("x * 2 + 1", names)
	if err != nil {
		t.Fatalf("evaluate error: %v", err)
	}

	for range 10 {
		next, err := Evaluate("x * 2 + 1", names)
		if err != nil {
			t.Fatalf("evaluate error: %v", err)
		}

		if next != first {
			t.Errorf("expected %v on every call, got %v", first, next)
		}
	}
}

func TestEvaluate_NowIsTimestamp(t *testing.T) {
	before := time.Now()

	result, err := Evaluate("now", nil)
	if err != nil {
		t.Fatalf("evaluate error: %v", err)
	}

	now, ok := result.(time.Time)
	if !ok {
		t.Fatalf("expected time.Time, got %T", result)
	}

	if now.Before(before) || time.Since(now) > time.Minute {
		t.Errorf("now binding %v is not current", now)
	}
}

func TestEvaluate_OverlayWinsOverBuiltin(t *testing.T) {
	fixed := time.Date(1999, time.December, 31, 0, 0, 0, 0, time.UTC)

	result, err := Evaluate(`datetime_format(now, "%Y")`, map[string]any{
		"now": fixed,
	})
	if err != nil {
		t.Fatalf("evaluate error: %v", err)
	}

	if result != "1999" {
		t.Errorf("expected overlay now to win, got %v", result)
	}
}

func TestEvaluate_DoesNotMutateNames(t *testing.T) {
	names := map[string]any{"x": 1}

	if _, err := Evaluate("x + 1", names); err != nil {
		t.Fatalf("evaluate error: %v", err)
	}

	if len(names) != 1 || names["x"] != 1 {
		t.Errorf("caller bindings mutated: %v", names)
	}
}

func TestEvaluate_MemberAccess(t *testing.T) {
	names := map[string]any{
		"filter": map[string]any{"name": "temp-123"},
	}

	result, err := Evaluate(`starts_with(filter.name, "temp-")`, names)
	if err != nil {
		t.Fatalf("evaluate error: %v", err)
	}

	if result != true {
		t.Errorf("expected true, got %v", result)
	}
}

func TestEvaluate_UnixtimeEpoch(t *testing.T) {
	result, err := Evaluate(`unixtime("2024-01-01T00:00:00Z")`, nil)
	if err != nil {
		t.Fatalf("evaluate error: %v", err)
	}

	if result != float64(1704067200) {
		t.Errorf("expected 1704067200, got %v (%T)", result, result)
	}
}

func TestEvaluate_UnixtimeNumericPassthrough(t *testing.T) {
	result, err := Evaluate("unixtime(1704067200)", nil)
	if err != nil {
		t.Fatalf("evaluate error: %v", err)
	}

	if result != 1704067200 {
		t.Errorf("expected numeric input unchanged, got %v (%T)", result, result)
	}
}

func TestEvaluate_UnixtimeUnparsableString(t *testing.T) {
	_, err := Evaluate(`unixtime("not a date")`, nil)
	if err == nil {
		t.Fatal("expected error for unparsable date string")
	}

	if !errors.Is(err, ErrBadArgument) {
		t.Errorf("expected ErrBadArgument, got %v", err)
	}
}

func TestEvaluate_TimedeltaComposition(t *testing.T) {
	result, err := Evaluate(
		"now + timedelta_hours(24) == now + timedelta_days(1)", nil,
	)
	if err != nil {
		t.Fatalf("evaluate error: %v", err)
	}

	if result != true {
		t.Errorf("expected 24h to equal 1d, got %v", result)
	}
}

func TestEvaluate_UnknownName(t *testing.T) {
	_, err := Evaluate("unrecognized_name", nil)
	if err == nil {
		t.Fatal("expected error for unknown name")
	}

	if !errors.Is(err, ErrNameNotFound) {
		t.Errorf("expected ErrNameNotFound, got %v", err)
	}
}

func TestEvaluate_UnknownNameSuggestion(t *testing.T) {
	_, err := Evaluate("unixtme(1)", nil)
	if err == nil {
		t.Fatal("expected error for misspelled function")
	}

	if !errors.Is(err, ErrNameNotFound) {
		t.Fatalf("expected ErrNameNotFound, got %v", err)
	}

	e := &Error{}
	if !errors.As(err, &e) {
		t.Fatalf("expected *Error, got %T", err)
	}

	var suggestion string

	for _, attr := range e.LogValue().Group() {
		if attr.Key == "suggestion" {
			suggestion = attr.Value.String()
		}
	}

	if suggestion != "unixtime" {
		t.Errorf("expected suggestion %q, got %q", "unixtime", suggestion)
	}
}

func TestEvaluate_SyntaxError(t *testing.T) {
	_, err := Evaluate("1 +", nil)
	if err == nil {
		t.Fatal("expected error for invalid syntax")
	}

	if !errors.Is(err, ErrExprSyntax) {
		t.Errorf("expected ErrExprSyntax, got %v", err)
	}
}

func TestEvaluate_ListHelpers(t *testing.T) {
	result, err := Evaluate(`list.has("a, b, c", ",", "b")`, nil)
	if err != nil {
		t.Fatalf("evaluate error: %v", err)
	}

	if result != true {
		t.Errorf("expected true, got %v", result)
	}
}
