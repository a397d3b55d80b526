package mailer

import (
	"fmt"
	"strings"

	"github.com/rubayatk-tech/meat-donation-service/internal/domain"
)

// ConfirmationSubject is the fixed subject line of the thank-you email.
const ConfirmationSubject = "Thank You for Your Meat Donation!"

const confirmationBody = `Dear %s,

Thank you for your generous donation of %s. Your contribution will be distributed via Masjid Ibrahim's local recipient pairing system.

JazakAllah Khair for your support!

— The Meat Donation Service Team
`

// Confirmation composes the fixed-template plaintext thank-you message.
func Confirmation(donorName, animalType string, weightLbs *float64) (subject, body string) {
	name := donorName
	if name == "" {
		name = "Donor"
	}
	desc := "meat"
	if animalType != "" {
		desc = strings.ToLower(animalType) + " meat"
	}
	if weight := domain.FormatWeight(weightLbs); weight != "" {
		desc = weight + " of " + desc
	}
	return ConfirmationSubject, fmt.Sprintf(confirmationBody, name, desc)
}
