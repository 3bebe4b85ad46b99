package kdtreetester

import "errors"

// ErrNoDisagreement is returned by Reduce when the supplied ray already
// agrees with the brute-force oracle — there is nothing to reduce.
var ErrNoDisagreement = errors.New("kdtreetester: ray does not disagree with the oracle")
