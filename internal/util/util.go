package util

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

func MapsKeysSorted[M ~map[K]V, K constraints.Ordered, V any](m M) []K {
	if m == nil {
		return nil
	}
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}

func TryClose(obj any) error {
	closer, ok := any(obj).(interface{ Close() error })
	if ok {
		return closer.Close()
	}
	closerIrregular, okIrregular := any(obj).(interface{ Close() })
	if okIrregular {
		closerIrregular.Close()
	}
	return nil
}

func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
