package reducers

import (
	"slices"

	"github.com/google/uuid"

	"github.com/jask/ananas/internal/store"
)

const (
	ActionAddMessage     store.ActionType = "message/add"
	ActionDismissMessage store.ActionType = "message/dismiss"
	ActionClearMessages  store.ActionType = "message/clear"
)

type Level string

const (
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

type Message struct {
	ID    string
	Level Level
	Text  string
}

// MessageState is the message log, oldest first, capped at Limit entries.
type MessageState struct {
	Items []Message
	Limit int
}

type AddMessage struct{ Message Message }

type DismissMessage struct{ ID string }

type ClearMessages struct{}

func (AddMessage) Type() store.ActionType     { return ActionAddMessage }
func (DismissMessage) Type() store.ActionType { return ActionDismissMessage }
func (ClearMessages) Type() store.ActionType  { return ActionClearMessages }

// NewMessage builds an AddMessage with a fresh id.
func NewMessage(level Level, text string) AddMessage {
	return AddMessage{Message: Message{ID: uuid.NewString(), Level: level, Text: text}}
}

func initialMessages(limit int) func() *MessageState {
	if limit <= 0 {
		limit = 100
	}
	return func() *MessageState { return &MessageState{Limit: limit} }
}

func reduceMessages(s *MessageState, a store.Action) *MessageState {
	switch a := a.(type) {
	case AddMessage:
		if a.Message.Text == "" {
			return s
		}
		return s.push(a.Message)
	case DismissMessage:
		i := slices.IndexFunc(s.Items, func(m Message) bool { return m.ID == a.ID })
		if i < 0 {
			return s
		}
		return &MessageState{Items: slices.Delete(slices.Clone(s.Items), i, i+1), Limit: s.Limit}
	case ClearMessages:
		if len(s.Items) == 0 {
			return s
		}
		return &MessageState{Limit: s.Limit}
	default:
		return s
	}
}

func (s *MessageState) push(m Message) *MessageState {
	items := append(slices.Clip(s.Items), m)
	if over := len(items) - s.Limit; s.Limit > 0 && over > 0 {
		items = items[over:]
	}
	return &MessageState{Items: items, Limit: s.Limit}
}
