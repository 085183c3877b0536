package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// BoxedTimestamp - значение даты в том виде, в каком его отдает хранилище: {"value": "..."}
type BoxedTimestamp struct {
	Value string `json:"value"`
}

// UnmarshalJSON принимает как объект {"value": ...}, так и голую строку
func (b *BoxedTimestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &b.Value)
	}

	type boxed BoxedTimestamp
	var v boxed
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("invalid boxed timestamp: %w", err)
	}
	*b = BoxedTimestamp(v)
	return nil
}

// RawIncident - строка таблицы пожарных инцидентов как она приходит из источника
type RawIncident struct {
	IncidentNo            string          `json:"Incident_No"`
	DateTimeOfEvent       *BoxedTimestamp `json:"Date_Time_Of_Event"`
	FinalIncidentType     string          `json:"Final_Incident_Type"`
	FinalIncidentCategory string          `json:"Final_Incident_Category"`
	StreetName            string          `json:"Street_Name"`
}

// Incident - нормализованная запись с декодированной датой и предвычисленным месяцем
type Incident struct {
	ID         string    `json:"id"`
	OccurredAt time.Time `json:"occurred_at"`
	Month      int       `json:"month"`
	Type       string    `json:"incident_type"`
	Category   string    `json:"incident_category"`
	StreetName string    `json:"street_name"`
}
