package bst

// notifier holds at most one transient message.
type notifier struct {
	duration float64
	message  string
	elapsed  float64
}

func (n *notifier) publish(msg string) {
	n.message = msg
	n.elapsed = 0
}

func (n *notifier) update(dt float64) {
	if n.message == "" {
		return
	}
	n.elapsed += dt
	if n.elapsed >= n.duration {
		n.message = ""
		n.elapsed = 0
	}
}
