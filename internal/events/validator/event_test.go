package validator

import (
	"io"
	"testing"
	"time"

	"eventbook/pkg/logger"
	"eventbook/pkg/model"
)

func newTestLogger() *logger.Logger {
	return logger.New(logger.Config{Level: logger.ERROR, Output: io.Discard, Service: "test"})
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		want    time.Time
	}{
		{
			name:  "valid",
			input: "01.01.2030 10:00",
			want:  time.Date(2030, 1, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			name:  "surrounding whitespace",
			input: "  15.06.2027 18:30 ",
			want:  time.Date(2027, 6, 15, 18, 30, 0, 0, time.UTC),
		},
		{name: "empty", input: "", wantErr: true},
		{name: "iso layout rejected", input: "2030-01-01 10:00", wantErr: true},
		{name: "garbage", input: "tomorrow", wantErr: true},
		{name: "date without time", input: "01.01.2030", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	v := NewEventValidator(newTestLogger())
	date := time.Date(2030, 1, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		event   model.Event
		wantErr bool
	}{
		{
			name:  "valid without ID",
			event: model.Event{Title: "Workshop", Date: date, Location: "Room 5"},
		},
		{
			name:  "valid with ID",
			event: model.Event{ID: 4, Title: "Workshop", Date: date, Location: "Room 5"},
		},
		{
			name:    "missing title",
			event:   model.Event{Date: date, Location: "Room 5"},
			wantErr: true,
		},
		{
			name:    "missing location",
			event:   model.Event{Title: "Workshop", Date: date},
			wantErr: true,
		},
		{
			name:    "zero date",
			event:   model.Event{Title: "Workshop", Location: "Room 5"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.event)
			if tt.wantErr && err == nil {
				t.Errorf("expected validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
