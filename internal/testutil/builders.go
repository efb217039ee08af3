package testutil

import (
	"time"

	"github.com/akyairhashvil/focusring/internal/config"
	"github.com/akyairhashvil/focusring/internal/models"
)

// RecordBuilder provides fluent API for creating test session records.
type RecordBuilder struct {
	rec models.SessionRecord
}

// NewRecord starts from a completed default focus session.
func NewRecord() *RecordBuilder {
	return &RecordBuilder{
		rec: models.SessionRecord{
			Kind:            models.KindWork,
			Label:           config.StatusWorkStarted,
			DurationSeconds: config.DefaultFocusMinutes * 60,
			CompletedAt:     time.Now(),
		},
	}
}

func (b *RecordBuilder) WithKind(k models.SessionKind) *RecordBuilder {
	b.rec.Kind = k
	return b
}

func (b *RecordBuilder) WithLabel(l string) *RecordBuilder {
	b.rec.Label = l
	return b
}

func (b *RecordBuilder) WithMinutes(m int) *RecordBuilder {
	b.rec.DurationSeconds = m * 60
	return b
}

func (b *RecordBuilder) CompletedAt(t time.Time) *RecordBuilder {
	b.rec.CompletedAt = t
	return b
}

func (b *RecordBuilder) Build() models.SessionRecord {
	return b.rec
}
