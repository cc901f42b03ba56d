package mail

import (
	"html/template"
	"strings"
	texttemplate "text/template"
	"time"

	"mechgenz/backend/internal/models"
)

type attachmentInfo struct {
	Name    string
	SizeMB  float64
	Missing bool
}

type notificationData struct {
	Name          string
	Email         string
	Phone         string
	Message       string
	SubmittedAt   string
	Attachments   []attachmentInfo
	AdminPanelURL string
}

type replyData struct {
	ToName          string
	ReplyMessage    string
	OriginalMessage string
}

const notificationHTML = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>New Contact Form Submission - MECHGENZ</title></head>
<body style="margin:0;padding:0;font-family:Arial,sans-serif;line-height:1.6;color:#333;background-color:#f5f5f5;">
<div style="max-width:600px;margin:0 auto;background-color:#ffffff;">
  <div style="background:linear-gradient(135deg,#ff5722 0%,#ff7043 100%);padding:30px 20px;text-align:center;">
    <h1 style="color:white;margin:0;font-size:28px;">NEW INQUIRY</h1>
    <p style="color:rgba(255,255,255,0.9);margin:5px 0 0 0;letter-spacing:1px;">MECHGENZ CONTACT FORM</p>
  </div>
  <div style="padding:30px;">
    <div style="background-color:#f8f9fa;padding:20px;border-left:4px solid #ff5722;margin-bottom:25px;">
      <h2 style="color:#ff5722;margin-top:0;">Contact Information</h2>
      <table style="width:100%;border-collapse:collapse;">
        <tr><td style="padding:8px 0;font-weight:bold;color:#555;width:100px;">Name:</td><td style="padding:8px 0;">{{.Name}}</td></tr>
        <tr><td style="padding:8px 0;font-weight:bold;color:#555;">Email:</td><td style="padding:8px 0;"><a href="mailto:{{.Email}}" style="color:#ff5722;text-decoration:none;">{{.Email}}</a></td></tr>
        <tr><td style="padding:8px 0;font-weight:bold;color:#555;">Phone:</td><td style="padding:8px 0;">{{.Phone}}</td></tr>
        <tr><td style="padding:8px 0;font-weight:bold;color:#555;">Time:</td><td style="padding:8px 0;">{{.SubmittedAt}}</td></tr>
      </table>
    </div>
    <div style="background-color:#fff;padding:20px;border:1px solid #e0e0e0;border-radius:8px;margin-bottom:25px;">
      <h3 style="color:#ff5722;margin-top:0;">Message</h3>
      <p style="margin:0;white-space:pre-line;">{{.Message}}</p>
    </div>
    <div style="background-color:#fff;padding:20px;border:1px solid #e0e0e0;border-radius:8px;margin-bottom:25px;">
      {{if .Attachments}}<h3 style="color:#ff5722;margin-top:0;">Attached Files</h3>
      <ul style="margin:10px 0;padding-left:20px;">
        {{range .Attachments}}<li><strong>{{.Name}}</strong>{{if .Missing}} (File not found){{else}} ({{printf "%.2f" .SizeMB}} MB){{end}}</li>
        {{end}}
      </ul>{{else}}<p style="color:#666;font-style:italic;">No files attached</p>{{end}}
    </div>
    <div style="text-align:center;margin:30px 0;">
      <a href="{{.AdminPanelURL}}" style="display:inline-block;background-color:#ff5722;color:white;padding:12px 25px;text-decoration:none;border-radius:5px;font-weight:bold;">View in Admin Panel</a>
    </div>
  </div>
  <div style="background-color:#2c3e50;color:white;padding:20px;text-align:center;">
    <p style="margin:0;font-size:14px;">This is an automated notification from your MECHGENZ website contact form.</p>
    <p style="margin:5px 0 0 0;font-size:12px;color:#bdc3c7;">&copy; 2024 MECHGENZ W.L.L. All Rights Reserved.</p>
  </div>
</div>
</body>
</html>`

const notificationText = `NEW CONTACT FORM SUBMISSION - MECHGENZ

CONTACT INFORMATION:
Name: {{.Name}}
Email: {{.Email}}
Phone: {{.Phone}}
Submitted: {{.SubmittedAt}}

MESSAGE:
{{.Message}}

ATTACHMENTS: {{len .Attachments}} file(s) attached

View in Admin Panel: {{.AdminPanelURL}}
Reply directly to: {{.Email}}

---
This is an automated notification from your MECHGENZ website contact form.
`

const replyHTML = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Reply from MECHGENZ</title></head>
<body style="margin:0;padding:0;font-family:Arial,sans-serif;line-height:1.6;color:#333;">
<div style="max-width:600px;margin:0 auto;background-color:#ffffff;">
  <div style="background:linear-gradient(135deg,#ff5722 0%,#ff7043 100%);padding:30px 20px;text-align:center;">
    <h1 style="color:white;margin:0;font-size:28px;">MECHGENZ</h1>
    <p style="color:rgba(255,255,255,0.9);margin:5px 0 0 0;letter-spacing:2px;">TRADING CONTRACTING AND SERVICES</p>
  </div>
  <div style="padding:40px 30px;">
    <h2 style="color:#ff5722;margin-bottom:20px;">Dear {{.ToName}},</h2>
    <p>Thank you for contacting MECHGENZ Trading Contracting &amp; Services. We have received your inquiry and are pleased to respond.</p>
    <div style="background-color:#f8f9fa;padding:20px;border-left:4px solid #ff5722;margin:20px 0;">
      <h3 style="color:#ff5722;margin-top:0;">Our Response:</h3>
      <p style="margin-bottom:0;white-space:pre-line;">{{.ReplyMessage}}</p>
    </div>
    <div style="background-color:#f1f3f4;padding:15px;border-radius:5px;margin:20px 0;">
      <h4 style="color:#666;margin-top:0;font-size:14px;">Your Original Message:</h4>
      <p style="margin-bottom:0;font-style:italic;color:#666;white-space:pre-line;">{{.OriginalMessage}}</p>
    </div>
    <p>If you have any additional questions or need further assistance, please don't hesitate to contact us.</p>
    <p style="margin-top:30px;">Best regards,<br><strong>MECHGENZ Team</strong></p>
  </div>
  <div style="background-color:#2c3e50;color:white;padding:30px 20px;text-align:center;">
    <h3 style="color:#ff5722;margin-bottom:15px;">Contact Information</h3>
    <p style="margin:5px 0;"><strong>Address:</strong> Buzwair Complex, 4th Floor, Rawdat Al Khail St, Doha Qatar</p>
    <p style="margin:5px 0;"><strong>P.O. Box:</strong> 22911</p>
    <p style="margin:5px 0;"><strong>Phone:</strong> +974 30401080</p>
    <p style="margin:5px 0;"><strong>Email:</strong> info@mechgenz.com</p>
    <p style="margin:5px 0;"><strong>Website:</strong> www.mechgenz.com</p>
    <div style="border-top:1px solid #34495e;padding-top:20px;margin-top:20px;">
      <p style="margin:0;font-size:12px;color:#bdc3c7;">&copy; 2024 MECHGENZ W.L.L. All Rights Reserved.</p>
    </div>
  </div>
</div>
</body>
</html>`

const replyText = `Dear {{.ToName}},

Thank you for contacting MECHGENZ Trading Contracting & Services.

Our Response:
{{.ReplyMessage}}

Your Original Message:
{{.OriginalMessage}}

Best regards,
MECHGENZ Team

Contact Information:
Address: Buzwair Complex, 4th Floor, Rawdat Al Khail St, Doha Qatar
P.O. Box: 22911
Phone: +974 30401080
Email: info@mechgenz.com
Website: www.mechgenz.com
`

var (
	notificationHTMLTmpl = template.Must(template.New("notification").Parse(notificationHTML))
	notificationTextTmpl = texttemplate.Must(texttemplate.New("notification").Parse(notificationText))
	replyHTMLTmpl        = template.Must(template.New("reply").Parse(replyHTML))
	replyTextTmpl        = texttemplate.Must(texttemplate.New("reply").Parse(replyText))
)

func renderNotification(submission models.Submission, attachments []attachmentInfo, adminPanelURL string) (html, text string, err error) {
	submittedAt := submission.SubmittedAt
	if submittedAt.IsZero() {
		submittedAt = time.Now()
	}
	data := notificationData{
		Name:          submission.Name,
		Email:         submission.Email,
		Phone:         submission.Phone,
		Message:       submission.Message,
		SubmittedAt:   submittedAt.UTC().Format("January 2, 2006 at 3:04 PM UTC"),
		Attachments:   attachments,
		AdminPanelURL: adminPanelURL,
	}

	var htmlBuf, textBuf strings.Builder
	if err := notificationHTMLTmpl.Execute(&htmlBuf, data); err != nil {
		return "", "", err
	}
	if err := notificationTextTmpl.Execute(&textBuf, data); err != nil {
		return "", "", err
	}
	return htmlBuf.String(), textBuf.String(), nil
}

func renderReply(input ReplyInput) (html, text string, err error) {
	data := replyData{
		ToName:          input.ToName,
		ReplyMessage:    input.ReplyMessage,
		OriginalMessage: input.OriginalMessage,
	}

	var htmlBuf, textBuf strings.Builder
	if err := replyHTMLTmpl.Execute(&htmlBuf, data); err != nil {
		return "", "", err
	}
	if err := replyTextTmpl.Execute(&textBuf, data); err != nil {
		return "", "", err
	}
	return htmlBuf.String(), textBuf.String(), nil
}
