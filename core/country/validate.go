package country

import (
	"strconv"
	"strings"

	"country-explorer/core/utils"
)

// Validate turns a raw record into a canonical Record.
// The rules run in a fixed order: required text fields, population, area,
// then ranges. row is reported in the returned error and may be 0.
func Validate(raw Raw, row int) (Record, error) {
	name := strings.TrimSpace(utils.ToString(raw[FieldName]))
	continent := strings.TrimSpace(utils.ToString(raw[FieldContinent]))
	if name == "" {
		return Record{}, rowError(row, FieldName, "", "required field empty")
	}
	if continent == "" {
		return Record{}, rowError(row, FieldContinent, "", "required field empty")
	}

	population, err := utils.ToInt64(raw[FieldPopulation])
	if err != nil {
		return Record{}, integerError(row, FieldPopulation, raw[FieldPopulation])
	}

	area, err := utils.ToRoundedInt64(raw[FieldArea])
	if err != nil {
		return Record{}, integerError(row, FieldArea, raw[FieldArea])
	}

	if population < 0 {
		return Record{}, rowError(row, FieldPopulation, utils.ToString(raw[FieldPopulation]), "out of range (must be >= 0)")
	}
	if area <= 0 {
		return Record{}, rowError(row, FieldArea, utils.ToString(raw[FieldArea]), "out of range (must be > 0)")
	}

	return Record{
		Name:       name,
		Population: population,
		Area:       area,
		Continent:  continent,
	}, nil
}

func integerError(row int, field string, value any) *Error {
	text := utils.ToString(value)
	return rowError(row, field, text, "must be an integer (value="+strconv.Quote(text)+")")
}

func rowError(row int, field, value, msg string) *Error {
	return &Error{
		Kind:    KindRowValidation,
		Row:     row,
		Field:   field,
		Value:   value,
		Message: msg,
	}
}
