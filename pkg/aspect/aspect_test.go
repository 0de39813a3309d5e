package aspect

import "testing"

func TestReduceIdempotentOnScreenRatios(t *testing.T) {
	for r := firstScreen; r <= lastScreen; r++ {
		reduced := Reduce(r)
		if Reduce(reduced) != reduced {
			t.Fatalf("Reduce(%v)=%v is not itself a fixed point", r, reduced)
		}
	}
}

func TestReduce16x10Reduces8x5(t *testing.T) {
	if got := Reduce(Screen16_10); got != Screen8_5 {
		t.Fatalf("Reduce(Screen16_10) = %v, want Screen8_5", got)
	}
	if got := Reduce(Print9x16L); got != Screen16_9 {
		t.Fatalf("Reduce(Print9x16L) = %v, want Screen16_9", got)
	}
}

func TestAsFractionInvalidAndUser(t *testing.T) {
	if _, _, ok := AsFraction(Invalid); ok {
		t.Fatalf("AsFraction(Invalid) should not be ok")
	}
	if _, _, ok := AsFraction(User); ok {
		t.Fatalf("AsFraction(User) should not be ok")
	}
}

func TestAsFractionReducesPrintToScreen(t *testing.T) {
	num, den, ok := AsFraction(Print2x3)
	if !ok || num != 2 || den != 3 {
		t.Fatalf("AsFraction(Print2x3) = %d:%d,%v, want 2:3,true", num, den, ok)
	}
}

func TestAsFloatSpecialCases(t *testing.T) {
	if AsFloat(Invalid) != 0 {
		t.Fatalf("AsFloat(Invalid) should be 0")
	}
	if AsFloat(Free) != 0 {
		t.Fatalf("AsFloat(Free) should be 0")
	}
	if AsFloat(User) != -1 {
		t.Fatalf("AsFloat(User) should be -1")
	}
	if got := AsFloat(Screen1_1); got != 1 {
		t.Fatalf("AsFloat(Screen1_1) = %v, want 1", got)
	}
}

func TestFromFractionReducesBeforeMatching(t *testing.T) {
	if got := FromFraction(32, 20); got != Screen8_5 {
		t.Fatalf("FromFraction(32,20) = %v, want Screen8_5", got)
	}
}

func TestFromFractionInvalidInputs(t *testing.T) {
	if got := FromFraction(0, 5); got != Invalid {
		t.Fatalf("FromFraction(0,5) = %v, want Invalid", got)
	}
	if got := FromFraction(5, -1); got != Invalid {
		t.Fatalf("FromFraction(5,-1) = %v, want Invalid", got)
	}
}

func TestFromFractionUnknownRatioReturnsUser(t *testing.T) {
	if got := FromFraction(37, 41); got != User {
		t.Fatalf("FromFraction(37,41) = %v, want User", got)
	}
}

func TestFromFractionNeverReturnsPrint(t *testing.T) {
	for num := 1; num <= 30; num++ {
		for den := 1; den <= 30; den++ {
			if got := FromFraction(num, den); IsPrintRatio(got) {
				t.Fatalf("FromFraction(%d,%d) = %v is a print ratio", num, den, got)
			}
		}
	}
}

func TestNameCoversFreeAndUser(t *testing.T) {
	if Name(Free) != "Free" {
		t.Fatalf("Name(Free) = %q", Name(Free))
	}
	if Name(User) != "User" {
		t.Fatalf("Name(User) = %q", Name(User))
	}
	if Name(Screen16_9) != "16 : 9" {
		t.Fatalf("Name(Screen16_9) = %q", Name(Screen16_9))
	}
}

func TestIsScreenAndPrintRatioDisjoint(t *testing.T) {
	for r := firstValid; r <= lastValid; r++ {
		if IsScreenRatio(r) == IsPrintRatio(r) {
			t.Fatalf("ratio %v: IsScreenRatio and IsPrintRatio both %v", r, IsScreenRatio(r))
		}
	}
}
