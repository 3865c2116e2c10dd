package activity

// Recorder is the append-only activity log contract. Record never fails
// the calling operation: sink errors are reported to the diagnostic
// logger and swallowed.
type Recorder interface {
	Record(actor, message string)
}
