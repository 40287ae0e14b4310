package steprange

import (
	"strconv"
	"strings"

	"github.com/iotaledger/hive.go/ierrors"
)

// Parse turns the output of String back into a StepRange with an identical Spec. It accepts every call shape that New
// and NewWithBoundType accept, with an optional quoted bound type tag as the first argument:
//
//	Parse(`StepRange(10)`)
//	Parse(`StepRange(0, 10, 2, 1)`)
//	Parse(`StepRange("[]", 0, 10, 2)`)
//
// It returns ErrParseFailed for text it does not recognize; recognized shapes are handed to the constructors, whose
// errors are passed through.
func Parse(s string) (stepRange *StepRange, err error) {
	inner, found := strings.CutPrefix(strings.TrimSpace(s), "StepRange(")
	if !found {
		return nil, ierrors.Wrapf(ErrParseFailed, "missing StepRange( prefix in %q", s)
	}
	inner, found = strings.CutSuffix(inner, ")")
	if !found {
		return nil, ierrors.Wrapf(ErrParseFailed, "missing closing parenthesis in %q", s)
	}

	args := strings.Split(inner, ",")
	for i, arg := range args {
		args[i] = strings.TrimSpace(arg)
	}

	hasBoundType := len(args) > 0 && strings.HasPrefix(args[0], `"`)
	var boundType BoundType
	if hasBoundType {
		tag, unquoteErr := strconv.Unquote(args[0])
		if unquoteErr != nil {
			return nil, ierrors.Wrapf(ErrParseFailed, "malformed bound type tag %s", args[0])
		}
		if boundType, err = BoundTypeFromTag(tag); err != nil {
			return nil, err
		}
		args = args[1:]
	}

	nums := make([]int64, len(args))
	for i, arg := range args {
		if nums[i], err = strconv.ParseInt(arg, 10, 64); err != nil {
			return nil, ierrors.Wrapf(ErrParseFailed, "malformed number %q", arg)
		}
	}

	if hasBoundType {
		return NewWithBoundType(boundType, nums...)
	}

	return New(nums...)
}
