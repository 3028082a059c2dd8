package notification

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"laundrybook/models"
)

// confirmationData is everything the confirmation templates need.
type confirmationData struct {
	Draft            models.BookingDraft
	TotalPrice       string
	BookingReference string
}

// renderText builds the plain-text confirmation body.
func renderText(d models.BookingDraft, total float64, reference string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Booking Confirmation\nReference: %s\n\n", reference)

	fmt.Fprintf(&b, "Customer: %s %s (%s)\n", d.FirstName, d.LastName, d.ContactType)
	if d.ContactType == models.ContactTypeCompany {
		fmt.Fprintf(&b, "Company: %s (tax no. %s)\n", d.CompanyName, d.TaxNumber)
	}
	fmt.Fprintf(&b, "Phone: %s\nEmail: %s\n\n", d.Phone, d.Email)

	fmt.Fprintf(&b, "Address (%s): %s\n", d.AddressType, d.SelectedAddress)
	if d.Postcode != "" {
		fmt.Fprintf(&b, "Postcode: %s\n", d.Postcode)
	}
	if d.AddressType == models.AddressTypeHotel {
		fmt.Fprintf(&b, "Hotel: %s, room %s\n", d.HotelName, d.RoomNumber)
	} else if d.AddressDetails != "" {
		fmt.Fprintf(&b, "Details: %s\n", d.AddressDetails)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "Collection: %s %s (%s)\n", d.CollectionDay, d.CollectionTime, d.CollectionInstruction)
	fmt.Fprintf(&b, "Delivery: %s %s (%s)\n", d.DeliveryDay, d.DeliveryTime, d.DeliveryInstruction)
	if d.DriverNote != "" {
		fmt.Fprintf(&b, "Driver note: %s\n", d.DriverNote)
	}
	fmt.Fprintf(&b, "Frequency: %s\n\nServices:\n", d.Frequency)

	for _, s := range d.SelectedServices {
		fmt.Fprintf(&b, "  - %s: £%.2f\n", s.Name, s.UnitPrice)
	}
	fmt.Fprintf(&b, "\nTotal: £%.2f\n", total)
	return b.String()
}

var confirmationHTML = template.Must(template.New("confirmation").Parse(`<html>
<body style="font-family: sans-serif; color: #222;">
  <h1>Booking Confirmation</h1>
  <p><strong>Reference:</strong> {{.BookingReference}}</p>

  <h2>Customer</h2>
  <p>{{.Draft.FirstName}} {{.Draft.LastName}} ({{.Draft.ContactType}})<br>
  {{- if eq .Draft.ContactType "company"}}
  {{.Draft.CompanyName}}, tax no. {{.Draft.TaxNumber}}<br>
  {{- end}}
  {{.Draft.Phone}}<br>{{.Draft.Email}}</p>

  <h2>Address</h2>
  <p>{{.Draft.SelectedAddress}}{{if .Draft.Postcode}} ({{.Draft.Postcode}}){{end}}<br>
  {{- if eq .Draft.AddressType "hotel"}}
  {{.Draft.HotelName}}, room {{.Draft.RoomNumber}}
  {{- else}}
  {{.Draft.AddressDetails}}
  {{- end}}</p>

  <h2>Schedule</h2>
  <p>Collection: {{.Draft.CollectionDay}} {{.Draft.CollectionTime}} ({{.Draft.CollectionInstruction}})<br>
  Delivery: {{.Draft.DeliveryDay}} {{.Draft.DeliveryTime}} ({{.Draft.DeliveryInstruction}})<br>
  {{- if .Draft.DriverNote}}
  Driver note: {{.Draft.DriverNote}}<br>
  {{- end}}
  Frequency: {{.Draft.Frequency}}</p>

  <h2>Services</h2>
  <table cellpadding="4">
    {{- range .Draft.SelectedServices}}
    <tr><td>{{.Name}}</td><td align="right">&pound;{{printf "%.2f" .UnitPrice}}</td></tr>
    {{- end}}
    <tr><td><strong>Total</strong></td><td align="right"><strong>&pound;{{.TotalPrice}}</strong></td></tr>
  </table>
</body>
</html>`))

// renderHTML builds the HTML confirmation body.
func renderHTML(d models.BookingDraft, total float64, reference string) (string, error) {
	var buf bytes.Buffer
	err := confirmationHTML.Execute(&buf, confirmationData{
		Draft:            d,
		TotalPrice:       fmt.Sprintf("%.2f", total),
		BookingReference: reference,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render confirmation email: %w", err)
	}
	return buf.String(), nil
}
