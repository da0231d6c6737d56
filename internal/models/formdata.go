package models

import (
	"encoding/json"

	"github.com/iudanet/fiches/internal/validation"
)

// GuaranteeMode режим гарантии оплаты экстра-услуг. Пустое значение = null.
type GuaranteeMode string

const (
	GuaranteeAsk            GuaranteeMode = "ask"              // Запросить гарантию у гида / ответственного
	GuaranteeIndividual     GuaranteeMode = "individual"       // Индивидуальная гарантия
	GuaranteeNo             GuaranteeMode = "no"               // Не запрашивать, экстра оплачивает компания
	GuaranteeNoMinibarCheck GuaranteeMode = "no-minibar-check" // Не запрашивать, но проверить минибар до отъезда
)

// DinnerPlan план ужинов группы. Пустое значение = null.
type DinnerPlan string

const (
	DinnerEveryNight     DinnerPlan = "yes"            // Каждый вечер
	DinnerFirstNightOnly DinnerPlan = "only-first-day" // Только в первый вечер
)

// ClientType тип клиента. Пустое значение = null.
type ClientType string

const (
	ClientBusiness ClientType = "business"
	ClientTourist  ClientType = "tourist"
)

// CheckInMode способ заселения / выселения. Пустое значение = null.
type CheckInMode string

const (
	CheckInGroup      CheckInMode = "group"
	CheckInIndividual CheckInMode = "individual"
)

// TimeOfDay время суток в формате HH:MM. Пустое значение = null.
type TimeOfDay string

// Valid reports whether g is null or one of the known guarantee modes
func (g GuaranteeMode) Valid() bool {
	switch g {
	case "", GuaranteeAsk, GuaranteeIndividual, GuaranteeNo, GuaranteeNoMinibarCheck:
		return true
	}
	return false
}

// Valid reports whether d is null or one of the known dinner plans
func (d DinnerPlan) Valid() bool {
	switch d {
	case "", DinnerEveryNight, DinnerFirstNightOnly:
		return true
	}
	return false
}

// Valid reports whether c is null or one of the known client types
func (c ClientType) Valid() bool {
	switch c {
	case "", ClientBusiness, ClientTourist:
		return true
	}
	return false
}

// Valid reports whether c is null or one of the known check-in modes
func (c CheckInMode) Valid() bool {
	switch c {
	case "", CheckInGroup, CheckInIndividual:
		return true
	}
	return false
}

// Valid reports whether t is null or a well-formed HH:MM time
func (t TimeOfDay) Valid() bool {
	return t == "" || validation.ValidateTimeOfDay(string(t)) == nil
}

func (g GuaranteeMode) MarshalJSON() ([]byte, error) { return nullableString(string(g)) }
func (d DinnerPlan) MarshalJSON() ([]byte, error)    { return nullableString(string(d)) }
func (c ClientType) MarshalJSON() ([]byte, error)    { return nullableString(string(c)) }
func (c CheckInMode) MarshalJSON() ([]byte, error)   { return nullableString(string(c)) }
func (t TimeOfDay) MarshalJSON() ([]byte, error)     { return nullableString(string(t)) }

// PaymentFlags кто оплачивает: сам гость и/или по счёту компании
type PaymentFlags struct {
	Individual bool `json:"individual"` // Individual индивидуальная оплата
	OnInvoice  bool `json:"onInvoice"`  // OnInvoice оплата по счёту
}

// BaggageService сервис доставки багажа
type BaggageService struct {
	ArrivalTime       TimeOfDay `json:"arrivalTime"`       // ArrivalTime ожидаемое прибытие
	DepartureTime     TimeOfDay `json:"departureTime"`     // DepartureTime время выноса багажа при отъезде
	HasBaggageService bool      `json:"hasBaggageService"` // HasBaggageService нужен ли сервис
}

// Dinner ужины группы
type Dinner struct {
	Type    DinnerPlan `json:"type"`    // Type план ужинов
	Remarks string     `json:"remarks"` // Remarks замечания (поддерживает разметку *жирный* _курсив_)
}

// Informations блок информации о пребывании
type Informations struct {
	ArrivalTime     TimeOfDay   `json:"arrivalTime"`
	DepartureTime   TimeOfDay   `json:"departureTime"`
	Type            ClientType  `json:"type"`
	CheckIn         CheckInMode `json:"checkIn"`
	EventName       string      `json:"eventName"`
	ManagerName     string      `json:"managerName"`
	ManagerContact  string      `json:"managerContact"`
	Message         string      `json:"message"`
	HasInformations bool        `json:"hasInformations"`
	LinkedToEvent   bool        `json:"linkedToEvent"`
}

// FormData содержимое чек-листа фиши.
// Все поля являются значениями, поэтому копия FormData независима от оригинала.
type FormData struct {
	GuaranteePayment GuaranteeMode  `json:"guaranteePayment"`
	Informations     Informations   `json:"informations"`
	BaggageService   BaggageService `json:"baggageService"`
	Dinner           Dinner         `json:"dinner"`
	RoomPayment      PaymentFlags   `json:"roomPayment"`
	ExtraPayment     PaymentFlags   `json:"extraPayment"`
}

// DefaultFormData returns the empty checklist: every flag false, every tag
// and time null, every text empty.
func DefaultFormData() FormData {
	return FormData{}
}

// normalize resets tags and times outside their closed sets to null and
// reports the dotted paths it reset.
func (d *FormData) normalize() []string {
	var reset []string

	check := func(path string, valid bool, clear func()) {
		if !valid {
			clear()
			reset = append(reset, path)
		}
	}

	check("guaranteePayment", d.GuaranteePayment.Valid(), func() { d.GuaranteePayment = "" })
	check("baggageService.arrivalTime", d.BaggageService.ArrivalTime.Valid(), func() { d.BaggageService.ArrivalTime = "" })
	check("baggageService.departureTime", d.BaggageService.DepartureTime.Valid(), func() { d.BaggageService.DepartureTime = "" })
	check("dinner.type", d.Dinner.Type.Valid(), func() { d.Dinner.Type = "" })
	check("informations.arrivalTime", d.Informations.ArrivalTime.Valid(), func() { d.Informations.ArrivalTime = "" })
	check("informations.departureTime", d.Informations.DepartureTime.Valid(), func() { d.Informations.DepartureTime = "" })
	check("informations.type", d.Informations.Type.Valid(), func() { d.Informations.Type = "" })
	check("informations.checkIn", d.Informations.CheckIn.Valid(), func() { d.Informations.CheckIn = "" })

	return reset
}

func nullableString(s string) ([]byte, error) {
	if s == "" {
		return []byte("null"), nil
	}
	return json.Marshal(s)
}
