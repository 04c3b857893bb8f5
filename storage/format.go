package storage

import (
	"github.com/spf13/cast"

	"vehicle-wrangler/models"
)

// cellString renders a cell for file export; missing cells become ""
func cellString(v models.Value) string {
	switch v.Kind {
	case models.KindNumber:
		return cast.ToString(v.Num)
	case models.KindString:
		return v.Str
	default:
		return ""
	}
}

// cellAny converts a cell to a driver or spreadsheet value; missing is nil
func cellAny(v models.Value) interface{} {
	switch v.Kind {
	case models.KindNumber:
		return v.Num
	case models.KindString:
		if v.Str == "" {
			return nil
		}
		return v.Str
	default:
		return nil
	}
}
