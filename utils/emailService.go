package utils

import (
	"context"
	"fmt"
	"html"
	"time"

	"barmaja/i18n"
	"barmaja/logging"
	"barmaja/models"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Mailer delivers one HTML email.
type Mailer interface {
	Send(ctx context.Context, toName, toEmail, subject, htmlBody string) error
}

type SendGridMailer struct {
	client *sendgrid.Client
	from   *mail.Email
}

func NewSendGridMailer(apiKey, fromEmail, fromName string) *SendGridMailer {
	return &SendGridMailer{
		client: sendgrid.NewSendClient(apiKey),
		from:   mail.NewEmail(fromName, fromEmail),
	}
}

func (m *SendGridMailer) Send(ctx context.Context, toName, toEmail, subject, htmlBody string) error {
	message := mail.NewSingleEmail(m.from, subject, mail.NewEmail(toName, toEmail), "", htmlBody)
	resp, err := m.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sendgrid: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid: status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}

// LogMailer only logs. Used when no SendGrid key is configured.
type LogMailer struct{}

func (LogMailer) Send(_ context.Context, _, toEmail, subject, _ string) error {
	logging.Info().Str("to", toEmail).Str("subject", subject).Msg("email not sent, no mail provider configured")
	return nil
}

// Notifier renders and sends the platform's transactional emails.
type Notifier struct {
	Mailer Mailer
}

func NewNotifier(m Mailer) *Notifier {
	if m == nil {
		m = LogMailer{}
	}
	return &Notifier{Mailer: m}
}

func getEmailTemplate(lang, title, bodyContent string) string {
	dir := "ltr"
	if i18n.IsRTL(lang) {
		dir = "rtl"
	}
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html lang="%s" dir="%s">
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; }
			.header { background-color: #1E3A5F; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1E3A5F; line-height: 1.6; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; margin: 20px 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header"><h1>BARMAJA ACADEMY</h1></div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">&copy; %d Barmaja Academy</div>
		</div>
	</body>
	</html>
	`, lang, dir, html.EscapeString(title), bodyContent, time.Now().Year())
}

// SendWelcomeEmail greets a newly registered user.
func (n *Notifier) SendWelcomeEmail(ctx context.Context, user *models.User) error {
	lang := user.PreferredLanguage
	subject := i18n.Pick(lang, "Welcome to Barmaja Academy", "مرحباً بك في أكاديمية برمجة")
	body := fmt.Sprintf(i18n.Pick(lang,
		`<p>Dear %s,</p><p>Your account has been created. Browse our courses and start learning today.</p>`,
		`<p>عزيزي %s،</p><p>تم إنشاء حسابك. تصفح دوراتنا وابدأ التعلم اليوم.</p>`,
	), html.EscapeString(user.Name))
	return n.Mailer.Send(ctx, user.Name, user.Email, subject, getEmailTemplate(lang, subject, body))
}

// SendEnrollmentEmail confirms a completed enrollment.
func (n *Notifier) SendEnrollmentEmail(ctx context.Context, user *models.User, course *models.Course, enrollment *models.Enrollment) error {
	lang := user.PreferredLanguage
	title := i18n.Pick(lang, course.TitleEn, course.TitleAr)
	subject := i18n.Pick(lang, "Enrollment confirmed: ", "تم تأكيد التسجيل: ") + title

	amount := i18n.Pick(lang, "Free", "مجانية")
	if enrollment.AmountPaidCents > 0 {
		amount = fmt.Sprintf("%.2f %s", float64(enrollment.AmountPaidCents)/100, enrollment.Currency)
	}
	body := fmt.Sprintf(i18n.Pick(lang,
		`<p>Dear %s,</p><p>You are now enrolled in <strong>%s</strong>.</p><div class="info-box">Amount paid: %s</div>`,
		`<p>عزيزي %s،</p><p>أنت الآن مسجل في <strong>%s</strong>.</p><div class="info-box">المبلغ المدفوع: %s</div>`,
	), html.EscapeString(user.Name), html.EscapeString(title), amount)

	return n.Mailer.Send(ctx, user.Name, user.Email, subject, getEmailTemplate(lang, subject, body))
}

// Go runs send in the background with a bounded timeout, logging failures.
func Go(what string, send func(ctx context.Context) error) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				logging.LogPanicValue(nil, r, "panic while sending "+what)
			}
		}()
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := send(ctx); err != nil {
			logging.Error().Err(err).Str("email", what).Msg("failed to send email")
		}
	}()
}
