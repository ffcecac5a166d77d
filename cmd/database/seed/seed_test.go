package seed_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"TrackFit-Backend/cmd/database/seed"
	"TrackFit-Backend/internal/testutil"
	"TrackFit-Backend/pkg/food"
)

const foodsCSV = `name_he,name_en,calories,protein,fat,carbs,image_url
אורז לבן,"Rice, white",130,2.7,0.3,28,
תפוח,Apple,52,0.3,0.2,14,https://img.test/apple.png
לחם,Bread,n/a,9,3.2,49,

`

func TestImportFoodsAndUnits(t *testing.T) {
	repo := food.NewFoodRepository(testutil.NewTestDB(t))
	ctx := context.Background()

	res, err := seed.ImportFoods(ctx, repo, strings.NewReader(foodsCSV))
	if err != nil {
		t.Fatalf("import foods: %v", err)
	}
	if res.Success != 3 || res.Failed != 0 {
		t.Fatalf("unexpected food import result: %s", res)
	}

	bread, err := repo.SearchFoods(ctx, "bread", 1)
	if err != nil || len(bread) != 1 {
		t.Fatalf("expected to find bread, got %v (%v)", bread, err)
	}
	if bread[0].Calories != 0 || bread[0].Carbs != 49 {
		t.Fatalf("expected unparsable calories to become 0, got %+v", bread[0])
	}

	unitsCSV := "food name,unit,grams\n" +
		"אורז לבן,cup,240\n" +
		"Apple,medium,182\n" +
		"Pizza,slice,107\n" +
		"תפוח,crate,0\n"
	res, err = seed.ImportMeasurementUnits(ctx, repo, strings.NewReader(unitsCSV))
	if err != nil {
		t.Fatalf("import units: %v", err)
	}
	if res.Success != 2 || res.Skipped != 1 || res.Failed != 1 {
		t.Fatalf("unexpected unit import result: %s", res)
	}

	rice, err := repo.SearchFoods(ctx, "rice", 1)
	if err != nil || len(rice) != 1 || len(rice[0].MeasurementUnits) != 1 || rice[0].MeasurementUnits[0].Grams != 240 {
		t.Fatalf("expected rice to have a 240 g cup, got %+v (%v)", rice, err)
	}
}

func TestImportMeasurementUnitsNeedsColumns(t *testing.T) {
	repo := food.NewFoodRepository(testutil.NewTestDB(t))

	_, err := seed.ImportMeasurementUnits(context.Background(), repo, strings.NewReader("food,weight\nApple,182\n"))
	if !errors.Is(err, seed.ErrMissingColumns) {
		t.Fatalf("expected ErrMissingColumns, got %v", err)
	}
}
