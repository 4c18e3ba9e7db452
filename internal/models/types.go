package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// StringList persiste []string como JSON en una columna de texto.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New("StringList: unsupported column type")
	}

	if len(raw) == 0 {
		*l = StringList{}
		return nil
	}

	// JSON corrupto guardado a mano no debe tumbar la lectura completa
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		*l = StringList{}
		return nil
	}
	*l = out
	return nil
}
