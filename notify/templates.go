package notify

import (
	"fmt"
	"time"

	"github.com/iatac-in/membership-payments/models"
)

// ManagerAlertBody builds the operator notification for a verified payment.
func ManagerAlertBody(rec *models.TransactionRecord) string {
	return fmt.Sprintf(`
	<div style="font-family: Arial, sans-serif; padding: 20px; border: 1px solid #eee; border-radius: 8px;">
		<h2 style="color: #007bff;">New Membership Payment Received</h2>
		<p><strong>Customer Name:</strong> %s</p>
		<p><strong>Service:</strong> %s</p>
		<p><strong>Amount Paid:</strong> INR %.2f</p>
		<p><strong>Mobile:</strong> %s</p>
		<p><strong>Email:</strong> %s</p>
		<p><strong>Transaction ID:</strong> %s</p>
		<p><strong>Date/Time:</strong> %s</p>
		<hr>
		<p style="font-size: 0.9em; color: #666;">Sent from IATAC Payment System</p>
	</div>`,
		rec.Name, rec.Service, rec.Amount, rec.Phone, rec.Email, rec.PaymentID, rec.Date)
}

// CustomerConfirmationBody builds the payment confirmation sent to the payer.
func CustomerConfirmationBody(rec *models.TransactionRecord) string {
	return fmt.Sprintf(`
	<div style="font-family: Arial, sans-serif; padding: 20px; border: 1px solid #eee; border-radius: 8px;">
		<h2 style="color: #28a745;">Payment Successful!</h2>
		<p>Dear %s,</p>
		<p>Your payment for <strong>%s</strong> has been successfully received.</p>
		<p><strong>Amount:</strong> INR %.2f</p>
		<p><strong>Transaction ID:</strong> %s</p>
		<p>You can download your official receipt from the website or save this email for your records.</p>
		<br>
		<p>Best Regards,<br><strong>Team IATAC</strong></p>
	</div>`,
		rec.Name, rec.Service, rec.Amount, rec.PaymentID)
}

// ContactEnquiryBody builds the notification for a contact form submission.
func ContactEnquiryBody(name, mobile, email, message string, now time.Time) string {
	return fmt.Sprintf(`
	<div style="font-family: Arial, sans-serif; padding: 25px; border: 1px solid #e1e1e1; border-radius: 12px; max-width: 600px; color: #333;">
		<h2 style="color: #007bff; margin-top: 0; border-bottom: 2px solid #007bff; padding-bottom: 10px;">New Website Enquiry</h2>
		<p style="margin-top: 20px;">You have received a new message from the <strong>iatac.in</strong> website.</p>
		<table style="width: 100%%; border-collapse: collapse; margin-top: 20px;">
			<tr>
				<td style="padding: 10px; border: 1px solid #eee; background: #f9f9f9; font-weight: bold; width: 30%%;">Name</td>
				<td style="padding: 10px; border: 1px solid #eee;">%s</td>
			</tr>
			<tr>
				<td style="padding: 10px; border: 1px solid #eee; background: #f9f9f9; font-weight: bold;">Mobile</td>
				<td style="padding: 10px; border: 1px solid #eee;">%s</td>
			</tr>
			<tr>
				<td style="padding: 10px; border: 1px solid #eee; background: #f9f9f9; font-weight: bold;">Email</td>
				<td style="padding: 10px; border: 1px solid #eee;">%s</td>
			</tr>
		</table>
		<div style="margin-top: 20px; padding: 15px; background: #f4f7f6; border-radius: 8px; border-left: 4px solid #007bff;">
			<h4 style="margin: 0 0 10px 0; color: #007bff;">Message:</h4>
			<p style="margin: 0; line-height: 1.6;">%s</p>
		</div>
		<div style="margin-top: 25px; font-size: 0.85rem; color: #888; text-align: center; border-top: 1px solid #eee; padding-top: 15px;">
			Sent from IATAC Contact Form | %s
		</div>
	</div>`,
		name, mobile, email, message, now.Format("02-Jan-2006 03:04 PM"))
}
