package theatre

type EventListener func(theatre *Theatre, data interface{})

type EventDataSetRender struct {
	Event  string
	Render bool
}

func (t *Theatre) AddEventListener(event string, callback EventListener) {
	t.listenerMu.Lock()
	defer t.listenerMu.Unlock()
	t.listener[event] = append(t.listener[event], callback)
}

func (t *Theatre) invoke(event string, data interface{}) {
	t.listenerMu.Lock()
	listeners := t.listener[event]
	t.listenerMu.Unlock()

	for _, listener := range listeners {
		go listener(t, data)
	}
}
