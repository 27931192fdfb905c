package mailer

import (
	"bytes"
	"html/template"
)

// NotificationData carries everything a notification email needs. Templates
// are pure: same data in, same HTML out.
type NotificationData struct {
	UserName     string
	VendorName   string
	BusinessName string
	ListingName  string
	Category     string
	EventType    string
	EventDate    string
	ScheduledAt  string
	Requirements string
	Decision     string
	Message      string
	DashboardURL string
}

var quoteRequestedTmpl = template.Must(template.New("quoteRequested").Parse(`<!DOCTYPE html>
<html>
<body style="font-family:Arial,sans-serif;color:#333;">
  <h2>New Quote Request</h2>
  <p>Namaste {{.VendorName}},</p>
  <p><b>{{.UserName}}</b> has requested a quote from <b>{{.BusinessName}}</b>{{if .ListingName}} for <b>{{.ListingName}}</b>{{end}}.</p>
  <ul>
    <li>Event: {{.EventType}}</li>
    {{if .EventDate}}<li>Date: {{.EventDate}}</li>{{end}}
    <li>Requirements: {{.Requirements}}</li>
  </ul>
  <p><a href="{{.DashboardURL}}">Respond from your vendor dashboard</a></p>
  <p>— Team Shubharambh</p>
</body>
</html>`))

var quoteRespondedTmpl = template.Must(template.New("quoteResponded").Parse(`<!DOCTYPE html>
<html>
<body style="font-family:Arial,sans-serif;color:#333;">
  <h2>Your Quote Request Was {{if eq .Decision "accepted"}}Accepted{{else}}Declined{{end}}</h2>
  <p>Namaste {{.UserName}},</p>
  <p><b>{{.BusinessName}}</b> has {{.Decision}} your quote request{{if .ListingName}} for <b>{{.ListingName}}</b>{{end}}.</p>
  {{if .Message}}<blockquote>{{.Message}}</blockquote>{{end}}
  <p><a href="{{.DashboardURL}}">View it on your dashboard</a></p>
  <p>— Team Shubharambh</p>
</body>
</html>`))

var appointmentRequestedTmpl = template.Must(template.New("appointmentRequested").Parse(`<!DOCTYPE html>
<html>
<body style="font-family:Arial,sans-serif;color:#333;">
  <h2>New Appointment Request</h2>
  <p>Namaste {{.VendorName}},</p>
  <p><b>{{.UserName}}</b> has requested a meeting{{if .ListingName}} regarding <b>{{.ListingName}}</b>{{end}}.</p>
  <ul>
    <li>When: {{.ScheduledAt}}</li>
    {{if .EventType}}<li>Event: {{.EventType}}</li>{{end}}
  </ul>
  <p><a href="{{.DashboardURL}}">Confirm or decline from your dashboard</a></p>
  <p>— Team Shubharambh</p>
</body>
</html>`))

var appointmentDecidedTmpl = template.Must(template.New("appointmentDecided").Parse(`<!DOCTYPE html>
<html>
<body style="font-family:Arial,sans-serif;color:#333;">
  <h2>Appointment {{if eq .Decision "confirmed"}}Confirmed{{else}}Declined{{end}}</h2>
  <p>Namaste {{.UserName}},</p>
  <p><b>{{.BusinessName}}</b> has {{.Decision}} your appointment{{if .ListingName}} for <b>{{.ListingName}}</b>{{end}} ({{.ScheduledAt}}).</p>
  {{if .Message}}<blockquote>{{.Message}}</blockquote>{{end}}
  <p><a href="{{.DashboardURL}}">View it on your dashboard</a></p>
  <p>— Team Shubharambh</p>
</body>
</html>`))

var vendorModeratedTmpl = template.Must(template.New("vendorModerated").Parse(`<!DOCTYPE html>
<html>
<body style="font-family:Arial,sans-serif;color:#333;">
  <h2>Your Vendor Profile Was {{if eq .Decision "approved"}}Approved{{else}}Not Approved{{end}}</h2>
  <p>Namaste {{.VendorName}},</p>
  {{if eq .Decision "approved"}}
  <p><b>{{.BusinessName}}</b> is now live on Shubharambh. Your listings are visible to couples planning their events.</p>
  {{else}}
  <p>We could not approve <b>{{.BusinessName}}</b> at this time.</p>
  {{if .Message}}<blockquote>{{.Message}}</blockquote>{{end}}
  {{end}}
  <p><a href="{{.DashboardURL}}">Go to your vendor dashboard</a></p>
  <p>— Team Shubharambh</p>
</body>
</html>`))

func render(t *template.Template, data NotificationData) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func QuoteRequestedBody(data NotificationData) (string, error) {
	return render(quoteRequestedTmpl, data)
}

func QuoteRespondedBody(data NotificationData) (string, error) {
	return render(quoteRespondedTmpl, data)
}

func AppointmentRequestedBody(data NotificationData) (string, error) {
	return render(appointmentRequestedTmpl, data)
}

func AppointmentDecidedBody(data NotificationData) (string, error) {
	return render(appointmentDecidedTmpl, data)
}

func VendorModeratedBody(data NotificationData) (string, error) {
	return render(vendorModeratedTmpl, data)
}
