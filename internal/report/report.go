// Package report renders the full donation table as downloadable documents.
package report

import (
	"github.com/rubayatk-tech/meat-donation-service/internal/domain"
)

// PDFFilename is the fixed attachment name of the PDF export.
const PDFFilename = "donations.pdf"

// XLSXFilename is the fixed attachment name of the XLSX export.
const XLSXFilename = "donations.xlsx"

// Header holds the fixed column titles of every export.
var Header = []string{"Name", "Phone", "Email", "Animal", "Meat(lbs)", "City", "Delivery Type"}

// BuildRows converts donations into table rows in store order, header first.
// Weight cells carry the stored value with the unit suffix appended, blank
// when no weight was recorded.
func BuildRows(donations []domain.Donation) [][]string {
	rows := make([][]string, 0, len(donations)+1)
	rows = append(rows, Header)
	for _, d := range donations {
		rows = append(rows, []string{
			d.Name,
			d.Phone,
			d.Email,
			d.AnimalType,
			domain.FormatWeight(d.WeightLbs),
			d.City,
			d.DeliveryType,
		})
	}
	return rows
}
