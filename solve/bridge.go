package solve

import "tchisla/numtheory"

func trySqrtIntDomain(x int64) (int64, bool) { return numtheory.TrySqrt(x) }
