package mocks

import (
	"sync"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
)

type AuditSinkMock struct {
	lock   sync.Mutex
	Events []audit.Event
}

var _ audit.Sink = (*AuditSinkMock)(nil)

func (m *AuditSinkMock) Log(ev audit.Event) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	m.Events = append(m.Events, ev)
	return nil
}

func (m *AuditSinkMock) Actions() []string {
	m.lock.Lock()
	defer m.lock.Unlock()

	out := make([]string, 0, len(m.Events))
	for _, ev := range m.Events {
		out = append(out, ev.Action)
	}
	return out
}
