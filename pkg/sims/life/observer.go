package life

// Observer is notified synchronously after every state-changing operation.
// Implementations read what changed through DrainPendingUpdates and the cell
// accessors; they must not call mutating operations from Notify.
//
// Observers are compared by identity on Unregister, so register pointers.
type Observer interface {
	Notify()
}

// Register adds o to the notification list.
func (s *Simulation) Register(o Observer) {
	if o == nil {
		return
	}
	s.mu.Lock()
	s.observers = append(s.observers, o)
	s.mu.Unlock()
}

// Unregister removes the first registration of o.
func (s *Simulation) Unregister(o Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.observers {
		if existing == o {
			s.observers = append(s.observers[:i:i], s.observers[i+1:]...)
			return
		}
	}
}

func (s *Simulation) notify() {
	s.mu.Lock()
	observers := append([]Observer(nil), s.observers...)
	s.mu.Unlock()
	for _, o := range observers {
		o.Notify()
	}
}
