package mailer

import (
	"bytes"
	"html/template"
	"time"
)

var otpTmpl = template.Must(template.New("otp").Parse(`<!DOCTYPE html>
<html lang="en">
<body style="margin: 0; font-family: 'Rubik', sans-serif; background: #f4f7ff; font-size: 14px;">
  <div style="width: 100%; background: #f4f7ff; padding-bottom: 20px; color: #434343;">
    <header style="padding: 32px; text-align: right;">
      <span style="font-size: 16px;">{{.Date}}</span>
    </header>
    <main>
      <div style="margin: 26px; padding: 26px; background: #ffffff; border-radius: 30px; text-align: center;">
        <h1 style="margin: 0; font-size: 30px; font-weight: bold; color: #1f1f1f;">Your OTP</h1>
        <p style="margin-top: 17px; font-size: 18px; font-weight: 500;">Hey {{.FirstName}} {{.LastName}},</p>
        <p style="margin-top: 17px; font-weight: 500; font-size: 16px;">
          Thank you for choosing Tea of Assam! Please use the following OTP (One-Time Password).
          This OTP is valid for the next <span style="font-weight: 600; color: #1f1f1f;">{{.TTLMinutes}} minutes</span>.
          For your security, please do not share this code with anyone, including Tea of Assam employees.
        </p>
        <p style="margin-top: 60px; font-size: 40px; font-weight: 600; letter-spacing: 25px; color: #ba3d4f;">{{.Code}}</p>
      </div>
      <p style="max-width: 400px; margin: 0 auto; text-align: center; font-weight: 500; color: #8c8c8c;">
        Need help? Ask at <a href="mailto:teaofassam@gmail.com" style="color: #499fb6;">teaofassam@gmail.com</a>
      </p>
    </main>
    <footer style="margin: 20px auto; text-align: center;">
      <p style="margin: 0; font-size: 16px; font-weight: 600; color: #434343;">Tea Of Assam</p>
    </footer>
  </div>
</body>
</html>`))

// OTPBody renders the one-time-password e-mail.
func OTPBody(firstName, lastName, code string, ttl time.Duration) (string, error) {
	var buf bytes.Buffer
	err := otpTmpl.Execute(&buf, map[string]any{
		"FirstName":  firstName,
		"LastName":   lastName,
		"Code":       code,
		"TTLMinutes": int(ttl.Minutes()),
		"Date":       time.Now().Format("02 Jan, 2006"),
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
