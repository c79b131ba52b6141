package notification

import (
	"github.com/google/uuid"

	"github.com/x-xyz/storefront/base/ctx"
)

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

const (
	PositionBottomCenter = "bottom-center"
	DefaultDurationMs    = 4000
)

// Toast is a transient message rendered once by the client
type Toast struct {
	Id         string `json:"id"`
	Kind       Kind   `json:"kind"`
	Icon       string `json:"icon"`
	Message    string `json:"message"`
	Position   string `json:"position"`
	DurationMs int    `json:"durationMs"`
}

func Success(msg string) Toast {
	return newToast(KindSuccess, "✅", msg)
}

func Error(msg string) Toast {
	return newToast(KindError, "❌", msg)
}

func newToast(kind Kind, icon, msg string) Toast {
	return Toast{
		Id:         uuid.NewString(),
		Kind:       kind,
		Icon:       icon,
		Message:    msg,
		Position:   PositionBottomCenter,
		DurationMs: DefaultDurationMs,
	}
}

type Field struct {
	Name  string
	Value string
}

// Notice is an operator facing message
type Notice struct {
	Title       string
	Description string
	Url         string
	ImageUrl    string
	Fields      []Field
}

type Notifier interface {
	Notify(ctx ctx.Ctx, notice Notice) error
}
