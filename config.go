package mpstream

// DataSize expresses byte-count configuration values so size-shaped
// options read naturally: WithMaxBeforeWrite(8 * MB).
type DataSize int64

const (
	_ DataSize = 1 << (iota * 10)
	KB
	MB
	GB
)
