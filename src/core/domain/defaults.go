package domain

// DefaultListLimit is the page size used when a caller does not ask for one.
const DefaultListLimit = 10

// MaxListLimit caps how many contacts a single list call may return.
const MaxListLimit = 500
