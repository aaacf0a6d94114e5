package tt

import (
	"fmt"
	"strings"
	"testing"
)

// testT implements the T interface and is used to verify the Test function's
// interaction with T.
type testT []string

func (t *testT) Helper() {}

func (t *testT) Errorf(format string, args ...any) {
	*t = append(*t, fmt.Sprintf(format, args...))
}

// Simple functions to test.

func add(x, y int) int {
	return x + y
}

func addsub(x int, y int) (int, int) {
	return x + y, x - y
}

func TestPass(t *testing.T) {
	var testT testT
	Test(&testT, Fn("addsub", addsub), Table{
		Args(1, 10).Rets(11, -9),
	})
	if len(testT) > 0 {
		t.Errorf("Test errors when test should pass")
	}
}

func TestFailOneReturn(t *testing.T) {
	var testT testT
	Test(&testT, Fn("add", add), Table{
		Args(1, 10).Rets(12),
	})
	assertOneError(t, testT, "add(1, 10) -> 11, want 12")
}

func TestFailTwoReturns(t *testing.T) {
	var testT testT
	Test(&testT, Fn("addsub", addsub), Table{
		Args(2, 10).Rets(12, -9),
	})
	assertOneError(t, testT, "addsub(2, 10) -> (12, -8), want (12, -9)")
}

func TestAnyMatcher(t *testing.T) {
	var testT testT
	Test(&testT, Fn("add", add), Table{
		Args(1, 10).Rets(Any),
	})
	if len(testT) > 0 {
		t.Errorf("Test errors when test should pass")
	}
}

func TestNilArg(t *testing.T) {
	var testT testT
	isNil := func(v any) bool { return v == nil }
	Test(&testT, Fn("isNil", isNil), Table{
		Args(nil).Rets(true),
	})
	if len(testT) > 0 {
		t.Errorf("Test errors when test should pass")
	}
}

func assertOneError(t *testing.T, testT testT, want string) {
	t.Helper()
	switch len(testT) {
	case 0:
		t.Errorf("Test didn't error when it should")
	case 1:
		if !strings.HasPrefix(testT[0], want) {
			t.Errorf("Test errored with %q, want %q", testT[0], want)
		}
	default:
		t.Errorf("Test errored multiple times")
	}
}
