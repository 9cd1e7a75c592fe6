// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package set

import "fmt"

func toString(elt any) string {
	if s, ok := elt.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprint(elt)
}
