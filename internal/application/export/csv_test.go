package export

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/resellhub/reseller-api/internal/domain/repository"
)

func TestCSV_DatasetVacioProduceCadenaVacia(t *testing.T) {
	rs := &repository.RowSet{Columns: []string{"id", "name"}, Rows: [][]any{}}
	assert.Equal(t, "", CSV(rs))
	assert.Equal(t, "", CSV(nil))
}

func TestCSV_CabeceraYFilas(t *testing.T) {
	rs := &repository.RowSet{
		Columns: []string{"id", "name", "qty"},
		Rows: [][]any{
			{"a1", "Widget", 3},
			{"a2", "Gadget", 0},
		},
	}
	want := "id,name,qty\na1,Widget,3\na2,Gadget,0"
	assert.Equal(t, want, CSV(rs))
}

// Solo los strings que contienen coma van entre comillas; una comilla doble
// embebida se deja tal cual (contrato heredado, sin escape).
func TestCSV_SoloStringsConComaLlevanComillas(t *testing.T) {
	rs := &repository.RowSet{
		Columns: []string{"name", "notes"},
		Rows: [][]any{
			{"Cable HDMI, 2m", `caja "B"`},
		},
	}
	want := "name,notes\n\"Cable HDMI, 2m\",caja \"B\""
	assert.Equal(t, want, CSV(rs))
}

func TestCSV_TiposDeCelda(t *testing.T) {
	loc := "A-3"
	ts := time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)
	rs := &repository.RowSet{
		Columns: []string{"nil", "ptr", "nilptr", "dec", "ts", "bool"},
		Rows: [][]any{
			{nil, &loc, (*string)(nil), decimal.RequireFromString("19.99"), ts, true},
		},
	}
	want := "nil,ptr,nilptr,dec,ts,bool\n,A-3,,19.99,2025-06-01T10:30:00Z,true"
	assert.Equal(t, want, CSV(rs))
}
