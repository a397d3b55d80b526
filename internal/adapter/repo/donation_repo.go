package repo

import (
	"context"
	"database/sql"

	"github.com/rubayatk-tech/meat-donation-service/internal/domain"
)

// DonationRepositorySQLite implements domain.DonationRepository over SQLite.
type DonationRepositorySQLite struct {
	db *sql.DB
}

// NewDonationRepository creates a new donation repo.
func NewDonationRepository(db *sql.DB) *DonationRepositorySQLite {
	return &DonationRepositorySQLite{db: db}
}

// Create inserts a new donation record and assigns its identifier.
func (r *DonationRepositorySQLite) Create(ctx context.Context, donation *domain.Donation) error {
	res, err := r.db.ExecContext(ctx, `
INSERT INTO donations (name, phone, email, animal_type, weight_lbs, city, delivery_type, submitted_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?);
`, donation.Name, donation.Phone, donation.Email, donation.AnimalType,
		donation.WeightLbs, donation.City, donation.DeliveryType, donation.SubmittedAt)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	donation.ID = id
	return nil
}

// ListAll returns every donation in insertion order.
func (r *DonationRepositorySQLite) ListAll(ctx context.Context) ([]domain.Donation, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, name, phone, email, animal_type, weight_lbs, city, delivery_type, submitted_at
FROM donations
ORDER BY id;
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Donation
	for rows.Next() {
		var donation domain.Donation
		var name, email, animalType, city sql.NullString
		var weight sql.NullFloat64
		if err := rows.Scan(&donation.ID, &name, &donation.Phone, &email,
			&animalType, &weight, &city, &donation.DeliveryType, &donation.SubmittedAt); err != nil {
			return nil, err
		}
		donation.Name = name.String
		donation.Email = email.String
		donation.AnimalType = animalType.String
		donation.City = city.String
		if weight.Valid {
			v := weight.Float64
			donation.WeightLbs = &v
		}
		items = append(items, donation)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
