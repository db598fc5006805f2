package query

import "country-explorer/core/country"

// ContinentCount is the number of records sharing one exact continent label.
type ContinentCount struct {
	Continent string `json:"continent"`
	Count     int    `json:"count"`
}

// Stats aggregates a record list.
type Stats struct {
	Count          int              `json:"count"`
	MostPopulous   country.Record   `json:"most_populous"`
	LeastPopulous  country.Record   `json:"least_populous"`
	MeanPopulation float64          `json:"mean_population"`
	MeanArea       float64          `json:"mean_area"`
	ByContinent    []ContinentCount `json:"by_continent"`
}

// Statistics returns nil for an empty list. Ties for most and least populous go
// to the first record encountered. Continents are counted by their exact label,
// in order of first appearance.
func Statistics(records []country.Record) *Stats {
	if len(records) == 0 {
		return nil
	}

	most, least := records[0], records[0]
	var popSum, areaSum float64
	position := map[string]int{}
	byContinent := []ContinentCount{}

	for _, r := range records {
		if r.Population > most.Population {
			most = r
		}
		if r.Population < least.Population {
			least = r
		}
		popSum += float64(r.Population)
		areaSum += float64(r.Area)

		if i, ok := position[r.Continent]; ok {
			byContinent[i].Count++
			continue
		}
		position[r.Continent] = len(byContinent)
		byContinent = append(byContinent, ContinentCount{Continent: r.Continent, Count: 1})
	}

	n := float64(len(records))
	return &Stats{
		Count:          len(records),
		MostPopulous:   most,
		LeastPopulous:  least,
		MeanPopulation: popSum / n,
		MeanArea:       areaSum / n,
		ByContinent:    byContinent,
	}
}
