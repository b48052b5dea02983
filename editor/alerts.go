package editor

import "time"

type (
	// Alert is a message shown to the user for a while, e.g. when a file
	// could not be loaded. Alerts with the same Name replace each other.
	Alert struct {
		Name     string
		Priority AlertPriority
		Message  string
		Duration time.Duration
	}

	AlertPriority int

	Alerts Model
)

const (
	Info AlertPriority = iota
	Warning
	Error
)

const defaultAlertDuration = 3 * time.Second

func (p AlertPriority) String() string {
	switch p {
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	}
	return "unknown"
}

// Alerts returns the alerts view of the model.
func (m *Model) Alerts() *Alerts { return (*Alerts)(m) }

// Add shows a new alert, replacing any earlier alert with the same name.
func (m *Alerts) Add(name, message string, priority AlertPriority) {
	m.AddAlert(Alert{Name: name, Priority: priority, Message: message, Duration: defaultAlertDuration})
}

func (m *Alerts) AddAlert(a Alert) {
	if a.Name != "" {
		for i := range m.alerts {
			if m.alerts[i].Name == a.Name {
				m.alerts[i] = a
				return
			}
		}
	}
	m.alerts = append(m.alerts, a)
}

// Update ages the alerts by d and drops the ones that have expired. Returns
// true if there are still alerts to show.
func (m *Alerts) Update(d time.Duration) (animating bool) {
	kept := m.alerts[:0]
	for _, a := range m.alerts {
		a.Duration -= d
		if a.Duration > 0 {
			kept = append(kept, a)
		}
	}
	clear(m.alerts[len(kept):])
	m.alerts = kept
	return len(m.alerts) > 0
}

// Iterate returns the live alerts, most severe first.
func (m *Alerts) Iterate() []Alert {
	ret := make([]Alert, 0, len(m.alerts))
	for p := Error; p >= Info; p-- {
		for _, a := range m.alerts {
			if a.Priority == p {
				ret = append(ret, a)
			}
		}
	}
	return ret
}

func (m *Alerts) Count() int { return len(m.alerts) }
