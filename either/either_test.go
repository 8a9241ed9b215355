package either

import (
	"errors"
	"testing"

	"github.com/auth-platform/libs/go/container/contract"
)

func expectViolation(t *testing.T, code contract.Code) {
	t.Helper()
	r := recover()
	if r == nil {
		t.Fatal("expected a contract violation panic")
	}
	v, ok := contract.From(r)
	if !ok {
		t.Fatalf("expected a contract.Violation, got %v", r)
	}
	if v.Code != code {
		t.Errorf("violation code = %s, want %s", v.Code, code)
	}
}

func TestConstructors(t *testing.T) {
	t.Run("Right holds the success value", func(t *testing.T) {
		e := Right[string](42)
		if !e.IsRight() || e.IsLeft() {
			t.Error("expected Right")
		}
		if e.Unwrap() != 42 {
			t.Errorf("expected 42, got %d", e.Unwrap())
		}
	})

	t.Run("Left holds the error value", func(t *testing.T) {
		e := Left[string, int]("bad")
		if !e.IsLeft() {
			t.Error("expected Left")
		}
		if e.UnwrapLeft() != "bad" {
			t.Errorf("expected bad, got %s", e.UnwrapLeft())
		}
	})

	t.Run("nil is a legal payload on either side", func(t *testing.T) {
		if !Left[any, int](nil).IsLeft() {
			t.Error("expected Left(nil)")
		}
		e := Right[string, any](nil)
		if !e.IsRight() || e.Unwrap() != nil {
			t.Error("expected Right(nil) to keep its nil payload")
		}
	})

	t.Run("containers nest without flattening", func(t *testing.T) {
		inner := Right[string](1)
		outer := Right[string](inner)
		if !outer.Unwrap().Equals(inner) {
			t.Error("expected the inner container to carry through unchanged")
		}
	})
}

func TestTry(t *testing.T) {
	t.Run("success becomes Right", func(t *testing.T) {
		e := Try(func() (int, error) { return 5, nil })
		if e.Unwrap() != 5 {
			t.Error("expected Right(5)")
		}
	})

	t.Run("error becomes Left", func(t *testing.T) {
		boom := errors.New("boom")
		e := Try(func() (int, error) { return 0, boom })
		if e.UnwrapLeft() != boom {
			t.Error("expected Left(boom)")
		}
	})

	t.Run("panic becomes Left", func(t *testing.T) {
		e := Try(func() (int, error) { panic("kaboom") })
		if e.UnwrapLeft().Error() != "kaboom" {
			t.Errorf("expected Left(kaboom), got %v", e.UnwrapLeft())
		}
	})

	t.Run("contract violations are re-raised", func(t *testing.T) {
		defer expectViolation(t, contract.CodeWrongVariant)
		Try(func() (int, error) {
			return Left[string, int]("x").Unwrap(), nil
		})
	})
}

func TestMapAndBimap(t *testing.T) {
	t.Run("Map acts on Right only", func(t *testing.T) {
		double := Map[string](func(n int) int { return n * 2 })
		if got := double(Right[string](3)).Unwrap(); got != 6 {
			t.Errorf("expected 6, got %d", got)
		}
		if got := double(Left[string, int]("e")).UnwrapLeft(); got != "e" {
			t.Errorf("expected Left to pass through, got %s", got)
		}
	})

	t.Run("First acts on Left only", func(t *testing.T) {
		tag := First[string, string, int](func(s string) string { return "tagged:" + s })
		if got := tag(Left[string, int]("e")).UnwrapLeft(); got != "tagged:e" {
			t.Errorf("expected tagged:e, got %s", got)
		}
		if got := tag(Right[string](1)).Unwrap(); got != 1 {
			t.Errorf("expected Right to pass through, got %d", got)
		}
	})

	t.Run("MapBoth runs exactly one side", func(t *testing.T) {
		leftRuns, rightRuns := 0, 0
		bimap := MapBoth(
			func(s string) string { leftRuns++; return s },
			func(n int) int { rightRuns++; return n },
		)
		bimap(Right[string](1))
		bimap(Left[string, int]("e"))
		if leftRuns != 1 || rightRuns != 1 {
			t.Errorf("expected one run per side, got left=%d right=%d", leftRuns, rightRuns)
		}
	})

	t.Run("Second is Map under the bifunctor name", func(t *testing.T) {
		double := func(n int) int { return n * 2 }
		e := Right[string](4)
		if !Second[string](double)(e).Equals(Map[string](double)(e)) {
			t.Error("expected Second and Map to agree")
		}
	})
}

func TestChainAndAp(t *testing.T) {
	parse := Chain(func(s string) Either[string, int] {
		if s == "" {
			return Left[string, int]("empty")
		}
		return Right[string](len(s))
	})
	if got := parse(Right[string]("abc")).Unwrap(); got != 3 {
		t.Errorf("expected 3, got %d", got)
	}
	if got := parse(Left[string, string]("e")).UnwrapLeft(); got != "e" {
		t.Errorf("expected short-circuit, got %s", got)
	}

	apply := Ap(Right[string](func(n int) int { return n + 1 }))
	if got := apply(Right[string](1)).Unwrap(); got != 2 {
		t.Errorf("expected 2, got %d", got)
	}
	if got := apply(Left[string, int]("v")).UnwrapLeft(); got != "v" {
		t.Errorf("expected the value side's Left, got %s", got)
	}
	broken := Ap(Left[string, func(int) int]("f"))
	if got := broken(Right[string](1)).UnwrapLeft(); got != "f" {
		t.Errorf("expected the function side's Left, got %s", got)
	}
}

func TestFilter(t *testing.T) {
	even := func(n int) bool { return n%2 == 0 }
	if got := Right[string](3).Filter(even, "odd").UnwrapLeft(); got != "odd" {
		t.Errorf("expected Left(odd), got %s", got)
	}
	if !Right[string](4).Filter(even, "odd").IsRight() {
		t.Error("expected Right(4) to survive")
	}
	if got := Left[string, int]("e").Filter(even, "odd").UnwrapLeft(); got != "e" {
		t.Error("expected an existing Left to pass through unchanged")
	}

	got := Right[string](3).FilterLazy(even, func(n int) string {
		if n != 3 {
			t.Errorf("expected the rejected payload, got %d", n)
		}
		return "odd"
	})
	if got.UnwrapLeft() != "odd" {
		t.Error("expected Left(odd)")
	}
}

func TestAltAndRecover(t *testing.T) {
	if got := Right[string](1).Or(Right[string](2)).Unwrap(); got != 1 {
		t.Errorf("expected 1, got %d", got)
	}
	if got := Left[string, int]("e").Or(Right[string](2)).Unwrap(); got != 2 {
		t.Errorf("expected 2, got %d", got)
	}

	invoked := false
	Right[string](1).OrElse(func() Either[string, int] { invoked = true; return Right[string](2) })
	if invoked {
		t.Error("supplier must not run on Right")
	}

	if got := Left[string, int]("e").Recover(7).Unwrap(); got != 7 {
		t.Errorf("expected 7, got %d", got)
	}
	if got := Left[string, int]("abc").RecoverWith(func(s string) int { return len(s) }).Unwrap(); got != 3 {
		t.Errorf("expected 3, got %d", got)
	}
}

func TestUnwrapFamily(t *testing.T) {
	if got := Left[string, int]("e").GetOrElse(9); got != 9 {
		t.Errorf("expected 9, got %d", got)
	}
	if got := Left[string, int]("abc").GetOrElseGet(func(s string) int { return len(s) }); got != 3 {
		t.Errorf("expected 3, got %d", got)
	}

	t.Run("GetOrElseThrow panics with the built error", func(t *testing.T) {
		defer func() {
			r := recover()
			if err, ok := r.(error); !ok || err.Error() != "e" {
				t.Errorf("expected error %q, got %v", "e", r)
			}
		}()
		Left[string, int]("e").GetOrElseThrow(func(s string) error { return errors.New(s) })
	})

	t.Run("Unwrap on Left violates the contract", func(t *testing.T) {
		defer expectViolation(t, contract.CodeWrongVariant)
		Left[string, int]("e").Unwrap()
	})

	t.Run("UnwrapLeft on Right violates the contract", func(t *testing.T) {
		defer expectViolation(t, contract.CodeWrongVariant)
		Right[string](1).UnwrapLeft()
	})
}

func TestSwapAndSlices(t *testing.T) {
	if got := Right[string](1).Swap().UnwrapLeft(); got != 1 {
		t.Errorf("expected Left(1), got %d", got)
	}
	if got := Left[string, int]("e").Swap().Unwrap(); got != "e" {
		t.Errorf("expected Right(e), got %s", got)
	}
	if got := Right[string](1).ToSlice(); len(got) != 1 || got[0] != 1 {
		t.Errorf("expected [1], got %v", got)
	}
	if got := Left[string, int]("e").ToSlice(); len(got) != 0 {
		t.Errorf("expected empty slice, got %v", got)
	}
}

func TestCheckedBimap(t *testing.T) {
	fold := func(current string, fault error) string {
		if fault != nil {
			return "fault:" + fault.Error()
		}
		return "kept:" + current
	}

	t.Run("Right with clean run re-wraps in Right", func(t *testing.T) {
		step := CheckedBimap(fold, func(n int) (int, error) { return n + 1, nil })
		if got := step(Right[string](1)).Unwrap(); got != 2 {
			t.Errorf("expected 2, got %d", got)
		}
	})

	t.Run("Right with returned error folds to Left", func(t *testing.T) {
		step := CheckedBimap(fold, func(int) (int, error) { return 0, errors.New("boom") })
		if got := step(Right[string](1)).UnwrapLeft(); got != "fault:boom" {
			t.Errorf("expected fault:boom, got %s", got)
		}
	})

	t.Run("Right with panic folds to Left", func(t *testing.T) {
		step := CheckedBimap(fold, func(int) (int, error) { panic("kaboom") })
		if got := step(Right[string](1)).UnwrapLeft(); got != "fault:kaboom" {
			t.Errorf("expected fault:kaboom, got %s", got)
		}
	})

	t.Run("existing Left folds without invoking the run", func(t *testing.T) {
		invoked := false
		step := CheckedBimap(fold, func(n int) (int, error) { invoked = true; return n, nil })
		if got := step(Left[string, int]("old")).UnwrapLeft(); got != "kept:old" {
			t.Errorf("expected kept:old, got %s", got)
		}
		if invoked {
			t.Error("the run must never execute on Left")
		}
	})
}

func TestCheckedMap(t *testing.T) {
	onFault := func(err error) string { return "fault:" + err.Error() }

	step := CheckedMap(onFault, func(n int) (int, error) { return n * 2, nil })
	if got := step(Right[string](2)).Unwrap(); got != 4 {
		t.Errorf("expected 4, got %d", got)
	}

	failing := CheckedMap(onFault, func(int) (int, error) { return 0, errors.New("boom") })
	if got := failing(Right[string](2)).UnwrapLeft(); got != "fault:boom" {
		t.Errorf("expected fault:boom, got %s", got)
	}

	if got := failing(Left[string, int]("e")).UnwrapLeft(); got != "e" {
		t.Error("expected an existing Left to pass through unchanged")
	}
}

func TestObservationHooks(t *testing.T) {
	var rights []int
	var lefts []string
	Right[string](1).
		IfRight(func(n int) { rights = append(rights, n) }).
		IfLeft(func(s string) { t.Error("IfLeft must not run on Right") })
	Left[string, int]("e").
		IfLeft(func(s string) { lefts = append(lefts, s) }).
		IfRight(func(int) { t.Error("IfRight must not run on Left") })
	if len(rights) != 1 || len(lefts) != 1 {
		t.Errorf("expected one observation per side, got %v %v", rights, lefts)
	}
}

func TestAll(t *testing.T) {
	t.Run("collects right values in input order", func(t *testing.T) {
		e := All(Right[string](1), Right[string](2))
		got := e.Unwrap()
		if len(got) != 2 || got[0] != 1 || got[1] != 2 {
			t.Errorf("expected [1 2], got %v", got)
		}
	})

	t.Run("first Left short-circuits as-is", func(t *testing.T) {
		e := All(Right[string](1), Left[string, int]("a"), Left[string, int]("b"))
		if got := e.UnwrapLeft(); got != "a" {
			t.Errorf("expected the first Left, got %s", got)
		}
	})
}

func TestAny(t *testing.T) {
	t.Run("first Right wins", func(t *testing.T) {
		e := Any(Left[string, int]("a"), Right[string](1), Right[string](2))
		if got := e.Unwrap(); got != 1 {
			t.Errorf("expected 1, got %d", got)
		}
	})

	t.Run("all Left yields the first Left, never an absent marker", func(t *testing.T) {
		e := Any(Left[string, int]("a"), Left[string, int]("b"))
		if got := e.UnwrapLeft(); got != "a" {
			t.Errorf("expected Left(a), got %s", got)
		}
	})
}

func TestEachLiftMapIn(t *testing.T) {
	var seen int
	in := []Either[string, int]{Right[string](1), Left[string, int]("e"), Right[string](2)}
	Each(func(Either[string, int]) { seen++ }, in)
	if seen != 2 {
		t.Errorf("expected iteration to stop after the first Left, saw %d", seen)
	}

	double := func(n int) int { return n * 2 }
	if got := Lift(double, in); len(got) != 2 || got[0] != 2 || got[1] != 4 {
		t.Errorf("expected [2 4], got %v", got)
	}
	mapped := MapIn(double, in)
	if !mapped[0].Equals(Right[string](2)) || !mapped[1].Equals(Left[string, int]("e")) {
		t.Errorf("expected containers preserved, got %v", mapped)
	}
}

func TestConversions(t *testing.T) {
	t.Run("ToMaybe discards the left payload", func(t *testing.T) {
		present := func(n int) string { return "present" }
		absent := func() string { return "absent" }
		if got := ToMaybe(Right[string](1), present, absent); got != "present" {
			t.Errorf("expected present, got %s", got)
		}
		if got := ToMaybe(Left[string, int]("e"), present, absent); got != "absent" {
			t.Errorf("expected absent, got %s", got)
		}
	})

	t.Run("ToDeferred rejects with the left payload", func(t *testing.T) {
		var rejected any
		resolve := func(int) string { return "resolved" }
		reject := func(r any) string { rejected = r; return "rejected" }
		if got := ToDeferred(Left[string, int]("e"), resolve, reject); got != "rejected" || rejected != "e" {
			t.Errorf("expected rejection with e, got %s (%v)", got, rejected)
		}
		if got := ToDeferred(Right[string](1), resolve, reject); got != "resolved" {
			t.Errorf("expected resolved, got %s", got)
		}
	})
}

func TestString(t *testing.T) {
	if got := Right[string](1).String(); got != "Right(1)" {
		t.Errorf("expected Right(1), got %s", got)
	}
	if got := Left[string, int]("e").String(); got != "Left(e)" {
		t.Errorf("expected Left(e), got %s", got)
	}
}
