package model

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar day without a time component. On the wire it is a
// "YYYY-MM-DD" string; in the store it maps to a DATE column.
type Date struct {
	time.Time
}

func Today() Date {
	y, m, d := time.Now().UTC().Date()
	return Date{time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return Date{t}, nil
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(dateLayout))
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value and Scan bridge Date to the driver so DATE columns bind and scan
// without a registered codec.
func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}

func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		d.Time = v
		return nil
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}

var jsonNull = []byte("null")

// Optional tracks whether a JSON field appeared in the payload at all,
// separately from whether it was null. The zero value means the field was
// omitted; Set with a nil Value means an explicit null. Update payloads use
// it so an omitted field is left untouched while a null clears the column.
type Optional[T any] struct {
	Set   bool
	Value *T
}

func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.Set = true
	if bytes.Equal(b, jsonNull) {
		o.Value = nil
		return nil
	}
	v := new(T)
	if err := json.Unmarshal(b, v); err != nil {
		return err
	}
	o.Value = v
	return nil
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || o.Value == nil {
		return jsonNull, nil
	}
	return json.Marshal(*o.Value)
}

// put copies a present Optional into an update map, mapping explicit null to
// a SQL NULL.
func put[T any](updates map[string]any, col string, o Optional[T]) {
	if !o.Set {
		return
	}
	if o.Value == nil {
		updates[col] = nil
		return
	}
	updates[col] = *o.Value
}

// putRequired is put for NOT NULL columns: an explicit null is rejected.
func putRequired[T any](updates map[string]any, col string, o Optional[T]) error {
	if !o.Set {
		return nil
	}
	if o.Value == nil {
		return fmt.Errorf("%s cannot be null", col)
	}
	updates[col] = *o.Value
	return nil
}
