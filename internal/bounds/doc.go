// Package bounds validates access windows against a fixed capacity.
//
// # Overflow Safety
//
// The check never forms index+length for a non-negative length. Once index is
// known to be non-negative the comparison is rearranged to
// length <= capacity-index, which cannot overflow for any int64 index and
// int32 length:
//
//	if err := bounds.Check(int64(len(b)), idx, n); err != nil {
//	    return err
//	}
//
// The package contains no unsafe code and no state.
package bounds
