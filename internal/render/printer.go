package render

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/iudanet/fiches/internal/models"
)

// labelWidth is the width of the row title column
const labelWidth = 18

const unknownTime = "Inconnu"

var guaranteeLabels = map[models.GuaranteeMode]string{
	models.GuaranteeAsk:            "Demander la garantie au guide / responsable",
	models.GuaranteeIndividual:     "Individuelle",
	models.GuaranteeNo:             "Ne pas demander, les extras seront pris en charge par la société",
	models.GuaranteeNoMinibarCheck: "Ne pas demander, mais le check minibar doit être fait avant départ",
}

var dinnerLabels = map[models.DinnerPlan]string{
	models.DinnerEveryNight:     "Tous les soirs",
	models.DinnerFirstNightOnly: "Uniquement le premier soir",
}

var clientLabels = map[models.ClientType]string{
	models.ClientBusiness: "Business",
	models.ClientTourist:  "Loisir",
}

var checkInLabels = map[models.CheckInMode]string{
	models.CheckInGroup:      "En groupe",
	models.CheckInIndividual: "Individuel",
}

var baggageInstructions = []string{
	"Penser à faire signer la décharge",
	"Contrôler les horaires du service bagage pour le départ",
	"S'il y a un changement d'horaire, envoyer un mail au service technique (ajouter Yvonne et Madame Micoud en CC)",
}

// Printer renders the print view of a fiche: only checked options are
// shown, and sections with nothing checked are left out.
type Printer struct {
	styler Styler
}

// NewPrinter creates a printer. A nil styler means PlainStyler.
func NewPrinter(styler Styler) *Printer {
	if styler == nil {
		styler = PlainStyler{}
	}
	return &Printer{styler: styler}
}

type row struct {
	label string
	lines []string
}

// Render writes the print view of f to w
func (p *Printer) Render(w io.Writer, f models.Fiche) error {
	var b strings.Builder

	title := f.DisplayName()
	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat("=", utf8.RuneCountInString(title)) + "\n")

	for _, r := range p.rows(f.Data) {
		b.WriteString("\n")
		writeRow(&b, r)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func (p *Printer) rows(d models.FormData) []row {
	rows := []row{p.roomRow(d.RoomPayment)}

	if d.ExtraPayment.Individual || d.ExtraPayment.OnInvoice {
		rows = append(rows, row{label: "Extras :", lines: checked(
			d.ExtraPayment.Individual, "Paiement individuel",
			d.ExtraPayment.OnInvoice, "Extras prises en charge",
		)})
	}

	guarantee := row{label: "Garantie :"}
	if label, ok := guaranteeLabels[d.GuaranteePayment]; ok {
		guarantee.lines = []string{label}
	}
	rows = append(rows, guarantee)

	if d.BaggageService.HasBaggageService {
		rows = append(rows, p.baggageRow(d.BaggageService))
	}
	if d.Dinner.Type != "" || d.Dinner.Remarks != "" {
		rows = append(rows, p.dinnerRow(d.Dinner))
	}
	if d.Informations.HasInformations {
		rows = append(rows, p.informationsRow(d.Informations))
	}

	return rows
}

func (p *Printer) roomRow(rp models.PaymentFlags) row {
	r := row{label: "Chambres :", lines: checked(
		rp.Individual, "Paiement individuel",
		rp.OnInvoice, "Chambres prises en charge",
	)}
	if rp.Individual && rp.OnInvoice {
		r.lines[0] += " → " + p.styler.Italic("Voir remarques")
	}
	return r
}

func (p *Printer) baggageRow(bs models.BaggageService) row {
	lines := []string{
		"Arrivée prévue : " + p.timeValue(bs.ArrivalTime),
		"Heure du service bagage au départ : " + p.timeValue(bs.DepartureTime),
		"",
		"Instructions :",
	}
	for _, instruction := range baggageInstructions {
		lines = append(lines, "  - "+instruction)
	}
	return row{label: "Service bagage :", lines: lines}
}

func (p *Printer) dinnerRow(d models.Dinner) row {
	var lines []string
	if label, ok := dinnerLabels[d.Type]; ok {
		lines = append(lines, label)
	}
	if d.Remarks != "" {
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, p.remarks(d.Remarks)...)
	}
	return row{label: "Dîner :", lines: lines}
}

func (p *Printer) informationsRow(info models.Informations) row {
	var lines []string

	if label, ok := clientLabels[info.Type]; ok {
		lines = append(lines, "Type de client : "+p.styler.Bold(label))
	}
	if info.LinkedToEvent && info.EventName != "" {
		lines = append(lines, "Lié à un événement : "+p.styler.Bold(info.EventName))
	}
	lines = append(lines,
		"Arrivée prévue : "+p.timeValue(info.ArrivalTime),
		"Heure du départ : "+p.timeValue(info.DepartureTime),
	)
	if label, ok := checkInLabels[info.CheckIn]; ok {
		lines = append(lines, "Check-in / Check-out : "+p.styler.Bold(label))
	}
	if info.ManagerName != "" {
		lines = append(lines, "Responsable sur place : "+p.styler.Bold(info.ManagerName))
	}
	if info.ManagerContact != "" {
		lines = append(lines, "Personne de contact :")
		lines = append(lines, indent(RenderMarkup(info.ManagerContact, p.styler))...)
	}
	if info.Message != "" {
		lines = append(lines, "")
		lines = append(lines, p.remarks(info.Message)...)
	}

	return row{label: "Informations :", lines: lines}
}

func (p *Printer) remarks(text string) []string {
	return append([]string{"Remarques :"}, indent(RenderMarkup(text, p.styler))...)
}

func (p *Printer) timeValue(t models.TimeOfDay) string {
	if pretty := PrettifyTime(t); pretty != "" {
		return p.styler.Bold(pretty)
	}
	return p.styler.Bold(unknownTime)
}

// checked returns the labels whose flag is set, joined on one line
func checked(pairs ...any) []string {
	var labels []string
	for i := 0; i+1 < len(pairs); i += 2 {
		if on, _ := pairs[i].(bool); on {
			labels = append(labels, pairs[i+1].(string))
		}
	}
	if len(labels) == 0 {
		return nil
	}
	return []string{strings.Join(labels, ", ")}
}

func indent(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = "  " + line
		}
	}
	return lines
}

func writeRow(b *strings.Builder, r row) {
	if len(r.lines) == 0 {
		b.WriteString(r.label + "\n")
		return
	}

	pad := strings.Repeat(" ", labelWidth)
	for i, line := range r.lines {
		if line == "" {
			b.WriteString("\n")
			continue
		}
		prefix := pad
		if i == 0 {
			prefix = r.label + strings.Repeat(" ", max(1, labelWidth-utf8.RuneCountInString(r.label)))
		}
		b.WriteString(prefix + line + "\n")
	}
}
