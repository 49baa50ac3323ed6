package hours

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// breaksColumn JSONB колонка operating_hours.breaks
type breaksColumn []domain.Break

func (b breaksColumn) Value() (driver.Value, error) {
	if b == nil {
		return "[]", nil
	}
	data, err := json.Marshal([]domain.Break(b))
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (b *breaksColumn) Scan(src interface{}) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		*b = breaksColumn{}
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("breaks: unsupported type %T", src)
	}

	var breaks []domain.Break
	if err := json.Unmarshal(data, &breaks); err != nil {
		return fmt.Errorf("breaks: %w", err)
	}
	for i := range breaks {
		if err := breaks[i].Start.Validate(); err != nil {
			return fmt.Errorf("breaks: %w", err)
		}
		if err := breaks[i].End.Validate(); err != nil {
			return fmt.Errorf("breaks: %w", err)
		}
	}
	*b = breaks
	return nil
}
