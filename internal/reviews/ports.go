package reviews

import (
	"context"
	"time"
)

type Tone string

const (
	ToneProfessional Tone = "Professional"
	ToneApologetic   Tone = "Apologetic"
	ToneWitty        Tone = "Witty"
	ToneFirmButFair  Tone = "Firm but Fair"
)

// Tones lists the accepted tones in display order.
var Tones = []Tone{ToneProfessional, ToneApologetic, ToneWitty, ToneFirmButFair}

func (t Tone) Valid() bool {
	for _, v := range Tones {
		if t == v {
			return true
		}
	}
	return false
}

// Exchange is one stored review together with its generated reply.
// It is never modified after the store creates it.
type Exchange struct {
	ID           int64     `json:"id"`
	OriginalText string    `json:"originalText"`
	ResponseText string    `json:"responseText"`
	Tone         Tone      `json:"tone"`
	CreatedAt    time.Time `json:"createdAt"`
}

// GenerateRequest is the body of POST /api/reviews/generate.
type GenerateRequest struct {
	Text string `json:"text" validate:"required,max=2000"`
	Tone Tone   `json:"tone" validate:"required,tone"`
}

// Repo is the append-only exchange store.
type Repo interface {
	Create(ctx context.Context, originalText, responseText string, tone Tone) (Exchange, error)
	List(ctx context.Context) ([]Exchange, error)
}

// Generator drafts a reply for a validated request.
type Generator interface {
	Generate(ctx context.Context, req GenerateRequest) (string, error)
}

// Service orchestrates validation, generation and persistence.
type Service interface {
	Generate(ctx context.Context, req GenerateRequest) (Exchange, error)
	List(ctx context.Context) ([]Exchange, error)
}
