package notification

import (
	"bytes"
	"fmt"
	"html/template"
	"strconv"
	"time"

	"github.com/radoraza-hash/hair-style-it/internal/timezone"
)

var frenchWeekdays = [...]string{"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"}

var frenchMonths = [...]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

// FrenchLongDate renders 2026-10-19 as "lundi 19 octobre 2026".
func FrenchLongDate(day string) string {
	t, err := timezone.ParseDay(day)
	if err != nil {
		return day
	}
	return fmt.Sprintf("%s %d %s %d",
		frenchWeekdays[t.Weekday()], t.Day(), frenchMonths[t.Month()-time.January], t.Year())
}

func euros(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "€"
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

var confirmationTmpl = template.Must(template.New("confirmation").Funcs(template.FuncMap{
	"euros":     euros,
	"longDate":  FrenchLongDate,
	"orDefault": orDefault,
}).Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h1 style="color: #333;">Nouvelle réservation reçue</h1>
  <div style="background-color: #fff3cd; padding: 15px; border-radius: 8px; margin: 20px 0; border-left: 4px solid #ffc107;">
    <p style="margin: 0; font-size: 16px;"><strong>Email du client :</strong> {{orDefault .CustomerEmail "Non fourni"}}</p>
  </div>
  <div style="background-color: #f5f5f5; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h2 style="color: #666; font-size: 18px; margin-top: 0;">Détails de la réservation</h2>
    <p><strong>Client :</strong> {{orDefault .CustomerName "Non fourni"}}</p>
    <p><strong>Email :</strong> {{orDefault .CustomerEmail "Non fourni"}}</p>
    <p><strong>Date :</strong> {{longDate .BookingDate}}</p>
    <p><strong>Heure :</strong> {{.BookingTime}}</p>
    <p><strong>Service :</strong> {{.ServiceName}}</p>
    {{- if .Options}}
    <p><strong>Options :</strong></p>
    <ul>{{range .Options}}<li>{{.Name}} (+{{euros .Price}})</li>{{end}}</ul>
    {{- end}}
    <p><strong>Coiffeur :</strong> {{.BarberName}}</p>
    <p><strong>Prix total :</strong> {{euros .TotalPrice}}</p>
  </div>
  <p style="font-size: 14px; color: #666; background-color: #e3f2fd; padding: 15px; border-radius: 8px;">
    <strong>Action requise :</strong> Transférez cet email à <strong>{{orDefault .CustomerEmail "l'adresse du client"}}</strong> pour confirmer sa réservation.
  </p>
  <p style="margin-top: 30px; font-size: 14px; color: #999;">Cet email contient une nouvelle réservation<br>Système de réservation automatique</p>
</div>`))

func Subject(c Confirmation) string {
	return "Nouvelle réservation - " + orDefault(c.CustomerName, "Client")
}

func RenderHTML(c Confirmation) (string, error) {
	var buf bytes.Buffer
	if err := confirmationTmpl.Execute(&buf, c); err != nil {
		return "", fmt.Errorf("render confirmation: %w", err)
	}
	return buf.String(), nil
}
