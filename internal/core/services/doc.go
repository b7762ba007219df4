// Package services implements the driving port interfaces.
// Services contain the catalog query logic: availability, seasonal
// pricing, filtered search and comparison. They read from a
// driven.Catalog and never modify it.
//
// Services are pure Go with no CGO and no I/O.
package services
