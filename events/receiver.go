package events

import "sync"

// Receiver fans events out to every registered listener. Send blocks
// until all listeners have taken the event, a listener that stops
// consuming stalls the sender.
type Receiver struct {
	muListeners sync.Mutex
	listeners   []chan interface{}
}

func New() *Receiver {
	return &Receiver{
		listeners: make([]chan interface{}, 0),
	}
}

func (er *Receiver) Listen() <-chan interface{} {
	ch := make(chan interface{})
	er.muListeners.Lock()
	er.listeners = append(er.listeners, ch)
	er.muListeners.Unlock()
	return ch
}

func (er *Receiver) Send(event interface{}) {
	er.muListeners.Lock()
	listeners := er.listeners
	er.muListeners.Unlock()
	for _, ch := range listeners {
		ch <- event
	}
}

func (er *Receiver) Close() {
	er.muListeners.Lock()
	defer er.muListeners.Unlock()
	for _, ch := range er.listeners {
		close(ch)
	}
	er.listeners = make([]chan interface{}, 0)
}
