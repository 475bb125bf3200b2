// Package feed subscribes to the alert change stream. Every source hands the
// same JSON row shape to decodeAlert, either bare or inside a change envelope.
package feed

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"guardian/internal/domain/entity"
	"guardian/internal/domain/service"
	"guardian/internal/errors"
)

var (
	// ErrMissingID marks an event without a usable alert id.
	ErrMissingID = errors.New("alert event has no id")
	// ErrNotInsert marks a change envelope for an update or delete.
	ErrNotInsert = errors.New("alert event is not an insert")
)

const changeTypeInsert = "INSERT"

// flexibleID accepts ids encoded as JSON strings or numbers.
type flexibleID string

func (f *flexibleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""

		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return errors.WithStack(err)
		}
		*f = flexibleID(strings.TrimSpace(s))

		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.Wrap(err, "id must be a string or number")
	}
	*f = flexibleID(n.String())

	return nil
}

// alertRow mirrors the alerts table joined with the subject name.
type alertRow struct {
	ID                flexibleID `json:"id"`
	AlertType         string     `json:"alert_type"`
	Severity          string     `json:"severity"`
	Title             string     `json:"title"`
	Description       string     `json:"description"`
	Status            string     `json:"status"`
	CreatedAt         string     `json:"created_at"`
	ElderlyPersonID   flexibleID `json:"elderly_person_id"`
	ElderlyPersonName string     `json:"elderly_person_name"`
}

// changeEnvelope is the realtime payload shape: {"type":"INSERT","table":"alerts","record":{...}}.
type changeEnvelope struct {
	Type   string          `json:"type"`
	Table  string          `json:"table"`
	Record json.RawMessage `json:"record"`
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02 15:04:05.999999-07",
	"2006-01-02 15:04:05.999999",
}

func parseCreatedAt(value string) time.Time {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC()
		}
	}

	return time.Time{}
}

func decodeAlert(data []byte) (*entity.AlertEvent, error) {
	var envelope changeEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, errors.Wrap(err, "decode alert event")
	}

	payload := data
	if len(envelope.Record) > 0 && !bytes.Equal(envelope.Record, []byte("null")) {
		if envelope.Type != "" && !strings.EqualFold(envelope.Type, changeTypeInsert) {
			return nil, errors.Wrapf(ErrNotInsert, "type %s", envelope.Type)
		}
		payload = envelope.Record
	}

	var row alertRow
	if err := json.Unmarshal(payload, &row); err != nil {
		return nil, errors.Wrap(err, "decode alert record")
	}

	if row.ID == "" {
		return nil, ErrMissingID
	}

	return &entity.AlertEvent{
		ID:          string(row.ID),
		AlertType:   row.AlertType,
		Severity:    row.Severity,
		Title:       row.Title,
		Description: row.Description,
		Status:      row.Status,
		CreatedAt:   parseCreatedAt(row.CreatedAt),
		SubjectID:   string(row.ElderlyPersonID),
		SubjectName: row.ElderlyPersonName,
	}, nil
}

// dispatch decodes one raw event and hands it to the handler. Undecodable
// events are logged and dropped, they are never retried.
func dispatch(logger *slog.Logger, source string, data []byte, handler service.AlertHandler) bool {
	alert, err := decodeAlert(data)
	if err != nil {
		level := slog.LevelWarn
		if errors.Is(err, ErrNotInsert) {
			level = slog.LevelDebug
		}
		logger.Log(context.Background(), level, "[Feed] Ignoring event",
			slog.String("source", source),
			slog.Any("error", err),
		)

		return false
	}

	handler(alert)

	return true
}
