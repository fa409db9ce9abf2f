package contact

import (
	"encoding/json"
	"time"

	"github.com/Zachkp/microx-portfolio/internal/dom"
	"github.com/Zachkp/microx-portfolio/internal/formcheck"
)

// TimestampLayout renders UTC millisecond ISO-8601 timestamps, e.g.
// 2026-10-14T09:30:00.000Z.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Field names of the contact form.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldSubject = "subject"
	FieldMessage = "message"
)

// Record is one contact form submission.
type Record struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// RecordFromForm reads the form controls verbatim and stamps the record with
// now.
func RecordFromForm(form dom.Form, now time.Time) Record {
	return Record{
		Name:      form.Value(FieldName),
		Email:     form.Value(FieldEmail),
		Subject:   form.Value(FieldSubject),
		Message:   form.Value(FieldMessage),
		Timestamp: FormatTimestamp(now),
	}
}

// FormatTimestamp renders t in UTC with millisecond precision.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// Payload returns the record as the decoded JSON object it is sent as.
func (r Record) Payload() (formcheck.Payload, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}
	return formcheck.Decode(data)
}
