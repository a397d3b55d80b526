// Package stats computes the dashboard aggregates over the full record set.
package stats

import "github.com/rubayatk-tech/meat-donation-service/internal/domain"

// CategoryTotal is the summed weight donated for one animal category.
type CategoryTotal struct {
	Animal   string
	TotalLbs float64
}

// Summary holds the dashboard aggregates.
type Summary struct {
	TotalLbs    float64
	TotalDonors int
	ByAnimal    []CategoryTotal
}

// Summarize walks every donation in storage order. Donations without a
// recorded weight count toward the donor total but contribute nothing to the
// weight sums, in the totals and in the per-category breakdown alike.
func Summarize(donations []domain.Donation) Summary {
	s := Summary{TotalDonors: len(donations)}

	index := map[string]int{}
	for _, d := range donations {
		if d.WeightLbs == nil {
			// Still ensure the category shows up in the breakdown.
			if _, ok := index[d.Animal()]; !ok {
				index[d.Animal()] = len(s.ByAnimal)
				s.ByAnimal = append(s.ByAnimal, CategoryTotal{Animal: d.Animal()})
			}
			continue
		}
		s.TotalLbs += *d.WeightLbs

		i, ok := index[d.Animal()]
		if !ok {
			i = len(s.ByAnimal)
			index[d.Animal()] = i
			s.ByAnimal = append(s.ByAnimal, CategoryTotal{Animal: d.Animal()})
		}
		s.ByAnimal[i].TotalLbs += *d.WeightLbs
	}
	return s
}
