package ui

import "strings"

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
)

type Toast struct {
	Kind    Kind
	Message string
}

// FlashStore is the persistence behind Notifier. sessions.Session satisfies it.
type FlashStore interface {
	AddFlash(value interface{}, vars ...string)
	Flashes(vars ...string) []interface{}
	Save() error
}

const flashKey = "toasts"

// Notifier is the toast service. Toasts queued with Show survive one redirect
// and are handed out once by Pending; Dismiss drops everything still queued.
type Notifier struct {
	store FlashStore
}

func NewNotifier(store FlashStore) *Notifier {
	return &Notifier{store: store}
}

func (n *Notifier) Show(t Toast) error {
	if t.Kind == "" {
		t.Kind = KindInfo
	}
	n.store.AddFlash(string(t.Kind)+":"+t.Message, flashKey)
	return n.store.Save()
}

func (n *Notifier) Success(msg string) error {
	return n.Show(Toast{Kind: KindSuccess, Message: msg})
}

func (n *Notifier) Error(msg string) error {
	return n.Show(Toast{Kind: KindError, Message: msg})
}

func (n *Notifier) Dismiss() error {
	n.store.Flashes(flashKey)
	return n.store.Save()
}

// Pending returns and consumes the queued toasts.
func (n *Notifier) Pending() ([]Toast, error) {
	raw := n.store.Flashes(flashKey)
	if len(raw) == 0 {
		return nil, nil
	}
	out := make([]Toast, 0, len(raw))
	for _, v := range raw {
		s, ok := v.(string)
		if !ok {
			continue
		}
		kind, msg, found := strings.Cut(s, ":")
		if !found {
			kind, msg = string(KindInfo), s
		}
		out = append(out, Toast{Kind: Kind(kind), Message: msg})
	}
	return out, n.store.Save()
}
