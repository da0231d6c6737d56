package models

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeFiches_RoundTrip(t *testing.T) {
	first := NewFiche("2", time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC))
	first.Nom = "Séminaire"
	first.Contenu = "libre"
	first.Data.GuaranteePayment = GuaranteeNoMinibarCheck
	first.Data.BaggageService = BaggageService{HasBaggageService: true, ArrivalTime: "09:30"}
	first.Data.Dinner = Dinner{Type: DinnerFirstNightOnly, Remarks: "*sans gluten*"}
	first.Data.Informations = Informations{
		HasInformations: true,
		Type:            ClientBusiness,
		CheckIn:         CheckInGroup,
		LinkedToEvent:   true,
		EventName:       "Salon",
		ManagerName:     "M. Martin",
		ManagerContact:  "Tel : 621 123 456",
		Message:         "ligne 1\nligne 2",
		DepartureTime:   "18:00",
	}
	second := NewFiche("1", time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC))

	in := []Fiche{first, second}
	data, err := FichesCodec{}.Encode(in)
	require.NoError(t, err)

	out, report, err := DecodeFiches(data)
	require.NoError(t, err)
	assert.Equal(t, in, out)
	assert.Empty(t, report.LegacyDinner)
	assert.Empty(t, report.Reset)
}

func TestDecodeFiches_BackfillsMissingLeaves(t *testing.T) {
	stored := `[{
		"id": "1",
		"nom": "A",
		"contenu": "",
		"dateCreation": "2024-01-02T03:04:05.678Z",
		"data": {
			"roomPayment": {"individual": true},
			"informations": {"hasInformations": true, "eventName": "Gala"}
		}
	}]`

	out, _, err := DecodeFiches([]byte(stored))
	require.NoError(t, err)
	require.Len(t, out, 1)

	want := DefaultFormData()
	want.RoomPayment.Individual = true
	want.Informations.HasInformations = true
	want.Informations.EventName = "Gala"
	assert.Equal(t, want, out[0].Data)
}

func TestDecodeFiches_MissingData(t *testing.T) {
	for _, stored := range []string{
		`[{"id":"1","nom":"","contenu":"","dateCreation":"2024-01-02T03:04:05Z"}]`,
		`[{"id":"1","nom":"","contenu":"","dateCreation":"2024-01-02T03:04:05Z","data":null}]`,
	} {
		out, _, err := DecodeFiches([]byte(stored))
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, DefaultFormData(), out[0].Data)
	}
}

func TestDecodeFiches_LegacyDinner(t *testing.T) {
	tests := []struct {
		name   string
		dinner string
		want   Dinner
	}{
		{name: "every night", dinner: `"yes"`, want: Dinner{Type: DinnerEveryNight}},
		{name: "first night", dinner: `"only-first-day"`, want: Dinner{Type: DinnerFirstNightOnly}},
		{name: "unknown scalar becomes null plan", dinner: `"no"`, want: Dinner{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stored := `[{"id":"7","nom":"","contenu":"","dateCreation":"2024-01-02T03:04:05Z",` +
				`"data":{"dinner":` + tt.dinner + `,"roomPayment":{"individual":true,"onInvoice":false}}}]`

			out, report, err := DecodeFiches([]byte(stored))
			require.NoError(t, err)
			require.Len(t, out, 1)
			assert.Equal(t, tt.want, out[0].Data.Dinner)
			assert.True(t, out[0].Data.RoomPayment.Individual)
			assert.Equal(t, []string{"7"}, report.LegacyDinner)

			// После повторной записи форма уже новая
			encoded, err := json.Marshal(out)
			require.NoError(t, err)
			again, report, err := DecodeFiches(encoded)
			require.NoError(t, err)
			assert.Equal(t, out, again)
			assert.Empty(t, report.LegacyDinner)
		})
	}
}

func TestDecodeFiches_ResetsInvalidValues(t *testing.T) {
	stored := `[{"id":"1","nom":"","contenu":"","dateCreation":"2024-01-02T03:04:05Z","data":{
		"guaranteePayment": "maybe",
		"baggageService": {"hasBaggageService": true, "arrivalTime": "25:00", "departureTime": "10:15"},
		"informations": {"type": "vip", "checkIn": "group", "arrivalTime": ""}
	}}]`

	out, report, err := DecodeFiches([]byte(stored))
	require.NoError(t, err)
	require.Len(t, out, 1)

	d := out[0].Data
	assert.Equal(t, GuaranteeMode(""), d.GuaranteePayment)
	assert.Equal(t, TimeOfDay(""), d.BaggageService.ArrivalTime)
	assert.Equal(t, TimeOfDay("10:15"), d.BaggageService.DepartureTime)
	assert.Equal(t, ClientType(""), d.Informations.Type)
	assert.Equal(t, CheckInGroup, d.Informations.CheckIn)
	assert.ElementsMatch(t,
		[]string{"guaranteePayment", "baggageService.arrivalTime", "informations.type"},
		report.Reset["1"])
}

func TestDecodeFiches_Errors(t *testing.T) {
	tests := []struct {
		name   string
		stored string
	}{
		{name: "syntax error", stored: `[{"id":"1",`},
		{name: "not an array", stored: `{"id":"1"}`},
		{name: "data not an object", stored: `[{"id":"1","data":"oops"}]`},
		{name: "wrong leaf type", stored: `[{"id":"1","data":{"roomPayment":{"individual":"yes"}}}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := DecodeFiches([]byte(tt.stored))
			assert.Error(t, err)
			assert.Nil(t, out)
		})
	}
}

func TestFichesCodec(t *testing.T) {
	var logs bytes.Buffer
	codec := FichesCodec{Logger: slog.New(slog.NewTextHandler(&logs, nil))}

	data, err := codec.Encode(nil)
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(data))

	out, err := codec.Decode([]byte(`[{"id":"1","nom":"","contenu":"","dateCreation":"2024-01-02T03:04:05Z","data":{"dinner":"yes","guaranteePayment":"x"}}]`))
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Contains(t, logs.String(), "upgraded legacy dinner field")
	assert.Contains(t, logs.String(), "reset invalid checklist values")
}
