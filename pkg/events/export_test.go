package events

// IsListeningForTest exposes isListening to the external test package.
func (l *NotifyListener) IsListeningForTest(channel string) bool {
	return l.isListening(channel)
}
