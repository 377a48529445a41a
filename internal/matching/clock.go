package matching

import "time"

// clock is swappable in tests that need a fixed current year.
var clock = time.Now
