// Package seed loads the reference food database from CSV exports.
package seed

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"TrackFit-Backend/entities"
	"TrackFit-Backend/pkg/food"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

var ErrMissingColumns = errors.New("required columns not found in CSV header")

type Result struct {
	Success int
	Failed  int
	Skipped int
}

func (r Result) String() string {
	return fmt.Sprintf("%d successful, %d failed, %d skipped", r.Success, r.Failed, r.Skipped)
}

// ImportFoods reads rows with the columns name_he, name_en, calories,
// protein, fat, carbs and image_url. Values that do not parse as numbers are
// stored as 0.
func ImportFoods(ctx context.Context, repo food.FoodRepository, r io.Reader) (Result, error) {
	header, rows, err := readCSV(r)
	if err != nil {
		return Result{}, err
	}
	col := columnIndex(header)

	var res Result
	for i, row := range rows {
		f := &entities.Food{
			NameHe:   col.get(row, "name_he"),
			NameEn:   col.get(row, "name_en"),
			Calories: parseNumber(col.get(row, "calories")),
			Protein:  parseNumber(col.get(row, "protein")),
			Fat:      parseNumber(col.get(row, "fat")),
			Carbs:    parseNumber(col.get(row, "carbs")),
		}
		if url := col.get(row, "image_url"); url != "" {
			f.ImageURL = &url
		}

		if err := repo.CreateFood(ctx, f); err != nil {
			log.Errorf("failed to insert food row %d (%s): %v", i+1, f.NameHe, err)
			res.Failed++
			continue
		}
		res.Success++
	}
	return res, nil
}

// ImportMeasurementUnits finds the food name, unit and grams columns by
// header substring, in English or Hebrew. Rows naming an unknown food are
// skipped.
func ImportMeasurementUnits(ctx context.Context, repo food.FoodRepository, r io.Reader) (Result, error) {
	header, rows, err := readCSV(r)
	if err != nil {
		return Result{}, err
	}

	nameCol := findColumn(header, "name", "שם")
	unitCol := findColumn(header, "unit", "יחידה")
	gramsCol := findColumn(header, "gram", "גרם")
	if nameCol < 0 || unitCol < 0 || gramsCol < 0 {
		return Result{}, fmt.Errorf("%w: name=%d unit=%d grams=%d", ErrMissingColumns, nameCol, unitCol, gramsCol)
	}

	ids, err := repo.GetFoodIDsByName(ctx)
	if err != nil {
		return Result{}, err
	}

	var res Result
	for i, row := range rows {
		foodName := field(row, nameCol)
		id, ok := ids[foodName]
		if !ok {
			log.Debugw("skipping unit for unknown food", "row", i+1, "food", foodName)
			res.Skipped++
			continue
		}

		grams := parseNumber(field(row, gramsCol))
		if grams <= 0 {
			log.Errorf("unit row %d for %s has no weight in grams", i+1, foodName)
			res.Failed++
			continue
		}

		unit := &entities.FoodMeasurementUnit{
			FoodID: uuid.MustParse(id),
			Unit:   field(row, unitCol),
			Grams:  grams,
		}
		if err := repo.CreateMeasurementUnit(ctx, unit); err != nil {
			log.Errorf("failed to insert unit row %d (%s / %s): %v", i+1, foodName, unit.Unit, err)
			res.Failed++
			continue
		}
		res.Success++
	}
	return res, nil
}

func readCSV(r io.Reader) ([]string, [][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("read csv: %w", io.ErrUnexpectedEOF)
	}

	header := records[0]
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	rows := make([][]string, 0, len(records)-1)
	for _, rec := range records[1:] {
		if isEmptyRow(rec) {
			continue
		}
		rows = append(rows, rec)
	}
	return header, rows, nil
}

type columns map[string]int

func columnIndex(header []string) columns {
	col := make(columns, len(header))
	for i, h := range header {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return col
}

func (c columns) get(row []string, name string) string {
	i, ok := c[name]
	if !ok {
		return ""
	}
	return field(row, i)
}

func findColumn(header []string, needles ...string) int {
	for i, h := range header {
		h = strings.ToLower(h)
		for _, n := range needles {
			if strings.Contains(h, n) {
				return i
			}
		}
	}
	return -1
}

func field(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func parseNumber(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func isEmptyRow(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
