// Package bus addresses element events by namespace key. A listener added
// under key "box" for event "Drop" hears events named "boxDrop", so senders
// and receivers only need to agree on keys, never on references.
package bus

import "github.com/rileylov/dragzone/dom"

// Keyed is implemented by payloads that can be stamped with the key they
// were dispatched under.
type Keyed interface {
	WithTargetKey(key string) any
}

// Envelope carries a payload that does not implement Keyed.
type Envelope struct {
	TargetKey string
	Data      any
}

// EventName joins a key and an event name.
func EventName(key, event string) string {
	return key + event
}

// AddListener registers l on el for event under every non-empty key.
func AddListener(el *dom.Element, keys []string, event string, l *dom.Listener) {
	for _, key := range keys {
		if key == "" {
			continue
		}
		el.AddEventListener(EventName(key, event), l)
	}
}

// RemoveListener undoes AddListener called with the same arguments.
func RemoveListener(el *dom.Element, keys []string, event string, l *dom.Listener) {
	for _, key := range keys {
		if key == "" {
			continue
		}
		el.RemoveEventListener(EventName(key, event), l)
	}
}

// Dispatch sends one bubbling, cancelable event per non-empty key. Each
// event's detail is the payload stamped with its key. It returns the keys
// that were dispatched.
func Dispatch(el *dom.Element, keys []string, event string, payload any) []string {
	if el == nil {
		return nil
	}
	sent := make([]string, 0, len(keys))
	for _, key := range keys {
		if key == "" {
			continue
		}
		el.DispatchEvent(dom.NewCustomEvent(EventName(key, event), stamp(payload, key)))
		sent = append(sent, key)
	}
	return sent
}

func stamp(payload any, key string) any {
	if k, ok := payload.(Keyed); ok {
		return k.WithTargetKey(key)
	}
	return Envelope{TargetKey: key, Data: payload}
}
