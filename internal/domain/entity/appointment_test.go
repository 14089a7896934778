package entity

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

// The slot fields are compared as plain strings everywhere, including the
// unique index, so they must be stored as text. A DATE column is handed
// back by the Postgres driver as time.Time, which database/sql renders
// into a string destination as RFC3339 ("2025-03-10T00:00:00Z") and
// breaks the 2006-01-02 wire format on every read.
func TestAppointmentSlotColumnsStoredAsText(t *testing.T) {
	appointmentType := reflect.TypeOf(Appointment{})

	for _, name := range []string{"Date", "Time", "Room"} {
		field, ok := appointmentType.FieldByName(name)
		if !ok {
			t.Fatalf("field %s missing", name)
		}
		tag := field.Tag.Get("gorm")
		if !strings.Contains(tag, "type:varchar") {
			t.Errorf("%s column type must be varchar, have %q", name, tag)
		}
		if !strings.Contains(tag, "uniqueIndex:idx_appointments_slot") {
			t.Errorf("%s is part of the slot and must carry the slot index, have %q", name, tag)
		}
	}
}

func TestAppointmentDateWireFormat(t *testing.T) {
	appointment := Appointment{
		Date: "2025-03-10",
		Time: "10:00",
		Room: "1",
	}

	payload, err := json.Marshal(appointment)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(payload), `"date":"2025-03-10"`) {
		t.Fatalf("date serialized as something other than 2006-01-02: %s", payload)
	}

	var decoded Appointment
	if err := json.Unmarshal(payload, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.Date != appointment.Date || decoded.Time != appointment.Time {
		t.Fatalf("slot did not round-trip: %+v", decoded)
	}
}
